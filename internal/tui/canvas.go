package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
	"github.com/rjcampbel/DisneyMagic/internal/imaging"
	"github.com/rjcampbel/DisneyMagic/internal/tui/styles"
)

// Half-block rendering: each terminal cell shows two vertically stacked
// pixels, the upper as foreground and the lower as background.
const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

type cell struct {
	text  string // empty when the cell shows pixels
	style lipgloss.Style
	wide  bool // second column of a double-width rune
}

// Canvas is a terminal surface. Positions are in pixels: one pixel per column
// horizontally, two pixels per line vertically. Text snaps to the line that
// contains its pixel row and is drawn over any pixels there.
type Canvas struct {
	cols, lines int
	tile        domain.Size

	pixels []color.Color // cols × lines*2, nil is transparent
	cells  []cell        // cols × lines
	thumbs *ThumbCache
}

// NewCanvas creates a canvas covering size pixels. tile is the footprint of a
// text fallback tile.
func NewCanvas(size domain.Size, tile domain.Size, thumbs *ThumbCache) *Canvas {
	if thumbs == nil {
		thumbs = NewThumbCache(0)
	}
	cols := max(size.W, 1)
	lines := max((size.H+1)/2, 1)
	return &Canvas{
		cols:   cols,
		lines:  lines,
		tile:   tile,
		pixels: make([]color.Color, cols*lines*2),
		cells:  make([]cell, cols*lines),
		thumbs: thumbs,
	}
}

// Size returns the canvas size in columns and lines
func (c *Canvas) Size() (cols, lines int) { return c.cols, c.lines }

// Reset clears all pixels and text
func (c *Canvas) Reset() {
	clear(c.pixels)
	clear(c.cells)
}

func (c *Canvas) setPixel(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.lines*2 {
		return
	}
	c.pixels[y*c.cols+x] = col
}

func (c *Canvas) pixel(x, y int) color.Color {
	return c.pixels[y*c.cols+x]
}

// putText writes s starting at column x of line, clipped to the canvas.
// It returns the number of columns written.
func (c *Canvas) putText(x, line int, s string, style lipgloss.Style) int {
	if line < 0 || line >= c.lines {
		return 0
	}
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > c.cols {
			break
		}
		c.cells[line*c.cols+x] = cell{text: string(r), style: style}
		if w == 2 {
			c.cells[line*c.cols+x+1] = cell{wide: true}
		}
		x += w
	}
	return x - start
}

// DrawImage draws img scaled per axis with its top-left corner at pos
func (c *Canvas) DrawImage(img image.Image, pos domain.Point, scale domain.Scale) {
	size := imaging.ScaledSize(img.Bounds().Size(), scale)
	thumb := c.thumbs.Scaled(img, size)
	b := thumb.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			px := thumb.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if px.A == 0 {
				continue
			}
			c.setPixel(pos.X+x, pos.Y+y, px)
		}
	}
}

// DrawText draws text at pos in the style for role. Tile text is drawn as a
// filled box the size of a tile with the text wrapped inside it.
func (c *Canvas) DrawText(text string, pos domain.Point, role domain.TextRole) {
	line := pos.Y / 2
	switch role {
	case domain.TextRowTitle:
		c.putText(pos.X, line, runewidth.Truncate(text, c.cols-pos.X, "…"), styles.RowTitleStyle)
	case domain.TextStatus:
		c.putText(pos.X, line, runewidth.Truncate(text, c.cols-pos.X, "…"), styles.StatusStyle)
	case domain.TextTile:
		c.drawTextTile(text, pos)
	}
}

func (c *Canvas) drawTextTile(text string, pos domain.Point) {
	top := pos.Y / 2
	height := max((c.tile.H+1)/2, 1)
	width := c.tile.W

	blank := strings.Repeat(" ", width)
	for l := 0; l < height; l++ {
		c.putText(pos.X, top+l, blank, styles.TextTileStyle)
	}

	inner := max(width-2, 1)
	wrapped := wrapText(text, inner, height)
	first := top + (height-len(wrapped))/2
	for i, l := range wrapped {
		pad := (inner - runewidth.StringWidth(l)) / 2
		c.putText(pos.X+1+pad, first+i, l, styles.TextTileStyle)
	}
}

// wrapText breaks text on spaces into at most maxLines lines of width columns.
// Words longer than a line are truncated; overflow ends in an ellipsis.
func wrapText(text string, width, maxLines int) []string {
	var out []string
	var cur string
	for _, word := range strings.Fields(text) {
		word = runewidth.Truncate(word, width, "…")
		switch {
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width:
			cur += " " + word
		default:
			out = append(out, cur)
			cur = word
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	if len(out) > maxLines {
		out = out[:maxLines]
		last := out[maxLines-1]
		if runewidth.StringWidth(last)+1 > width {
			last = runewidth.Truncate(last, width-1, "")
		}
		out[maxLines-1] = last + "…"
	}
	return out
}

// DrawOutline draws a rounded border just outside the rectangle at pos/size
func (c *Canvas) DrawOutline(pos domain.Point, size domain.Size) {
	b := styles.OutlineBorder
	st := styles.OutlineStyle

	left, right := pos.X-1, pos.X+size.W
	top := pos.Y/2 - 1
	bottom := (pos.Y + size.H + 1) / 2

	c.putText(left, top, b.TopLeft, st)
	c.putText(right, top, b.TopRight, st)
	c.putText(left, bottom, b.BottomLeft, st)
	c.putText(right, bottom, b.BottomRight, st)
	for x := left + 1; x < right; x++ {
		c.putText(x, top, b.Top, st)
		c.putText(x, bottom, b.Bottom, st)
	}
	for l := top + 1; l < bottom; l++ {
		c.putText(left, l, b.Left, st)
		c.putText(right, l, b.Right, st)
	}
}

func hexColor(col color.Color) lipgloss.Color {
	r, g, b, _ := col.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// glyph returns the half-block for a pixel pair and the style that paints it
func glyph(top, bottom color.Color) (string, lipgloss.Style, bool) {
	switch {
	case top == nil && bottom == nil:
		return " ", lipgloss.Style{}, false
	case bottom == nil:
		return upperHalf, lipgloss.NewStyle().Foreground(hexColor(top)), true
	case top == nil:
		return lowerHalf, lipgloss.NewStyle().Foreground(hexColor(bottom)), true
	default:
		return upperHalf, lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom)), true
	}
}

func (c *Canvas) render(styled bool) string {
	var sb strings.Builder
	for l := 0; l < c.lines; l++ {
		if l > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.cols; x++ {
			ce := c.cells[l*c.cols+x]
			if ce.wide {
				continue
			}
			if ce.text != "" {
				if styled {
					sb.WriteString(ce.style.Render(ce.text))
				} else {
					sb.WriteString(ce.text)
				}
				continue
			}
			g, st, paint := glyph(c.pixel(x, 2*l), c.pixel(x, 2*l+1))
			if styled && paint {
				sb.WriteString(st.Render(g))
			} else {
				sb.WriteString(g)
			}
		}
	}
	return sb.String()
}

// String renders the canvas with colours, one string line per terminal line
func (c *Canvas) String() string { return c.render(true) }

// Plain renders the canvas without styling
func (c *Canvas) Plain() string { return c.render(false) }
