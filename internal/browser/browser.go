package browser

import (
	"fmt"
	"log/slog"

	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// Input is a navigation event already translated from the platform's key
// or window events
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputUp
	InputDown
	InputQuit
)

// String returns the input's name
func (i Input) String() string {
	switch i {
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputQuit:
		return "quit"
	default:
		return "none"
	}
}

// catalog adapts the node list to the cursor's Content interface
type catalog []*domain.CatalogNode

func (c catalog) NodeCount() int { return len(c) }

func (c catalog) ItemCount(node int) int {
	if node < 0 || node >= len(c) {
		return 0
	}
	return c[node].Len()
}

// Browser owns the built catalog and the cursor over it, applies inputs and
// draws the visible window
type Browser struct {
	nodes   catalog
	cursor  *GridCursor
	layout  Layout
	running bool
	logger  *slog.Logger
}

// New creates a browser over nodes. The node list is read-only afterwards.
func New(nodes []*domain.CatalogNode, cfg *config.Config, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	c := catalog(nodes)
	return &Browser{
		nodes:   c,
		cursor:  NewGridCursor(cfg.Grid, c),
		layout:  NewLayout(cfg),
		running: true,
		logger:  logger,
	}
}

// Nodes returns the catalog rows
func (b *Browser) Nodes() []*domain.CatalogNode { return b.nodes }

// Cursor returns the grid cursor
func (b *Browser) Cursor() *GridCursor { return b.cursor }

// Layout returns the layout used by Render
func (b *Browser) Layout() Layout { return b.layout }

// Running returns false once a quit input has been handled
func (b *Browser) Running() bool { return b.running }

// Handle applies one input
func (b *Browser) Handle(in Input) {
	if !b.running {
		return
	}
	switch in {
	case InputLeft:
		b.cursor.MoveLeft()
	case InputRight:
		b.cursor.MoveRight()
	case InputUp:
		b.cursor.MoveUp()
	case InputDown:
		b.cursor.MoveDown()
	case InputQuit:
		b.running = false
		b.logger.Info("browser closed")
		return
	default:
		return
	}
	b.logger.Debug("cursor moved", "input", in.String(), "node", b.cursor.Node(), "item", b.cursor.Item())
}

// Reveal moves the cursor onto item of node
func (b *Browser) Reveal(node, item int) bool {
	return b.cursor.Reveal(node, item)
}

// Selected returns the node and item under the cursor. item is nil when the
// cursor sits past the end of a short row; both are nil for an empty catalog.
func (b *Browser) Selected() (*domain.CatalogNode, *domain.CatalogItem) {
	n := b.cursor.Node()
	if n >= len(b.nodes) {
		return nil, nil
	}
	node := b.nodes[n]
	return node, node.Item(b.cursor.Item())
}

// Status describes the selection for the status line
func (b *Browser) Status() string {
	node, item := b.Selected()
	if node == nil {
		return "no collections"
	}
	if item == nil {
		return fmt.Sprintf("%s  (row %d/%d)", node.Title(), b.cursor.Node()+1, len(b.nodes))
	}
	return fmt.Sprintf("%s › %s  (item %d/%d, row %d/%d)",
		node.Title(), item.Title(),
		b.cursor.Item()+1, node.Len(),
		b.cursor.Node()+1, len(b.nodes))
}

// Render draws the visible window: for each visible row its title, then up to
// Columns tiles. The tile under the cursor is enhanced and outlined; every
// other visible tile is reset to its base scale.
func (b *Browser) Render(s domain.Surface) {
	win := b.cursor.VisibleWindow()

	for r := 0; r < b.cursor.Rows(); r++ {
		n := win.RowOffset + r
		if n >= len(b.nodes) {
			break
		}
		node := b.nodes[n]
		s.DrawText(node.Title(), b.layout.TitlePos(r), domain.TextRowTitle)

		for c := 0; c < b.cursor.Columns(); c++ {
			item := node.Item(win.ColOffsets[r] + c)
			if item == nil {
				break
			}
			pos := b.layout.TilePos(r, c)
			if r == win.Row && c == win.Col {
				item.Enhance(b.layout.Factor)
			} else {
				item.ResetScale()
			}
			item.Draw(s, pos)
			if item.IsSelected() {
				s.DrawOutline(pos, b.layout.Enhanced)
			}
		}
	}

	s.DrawText(b.Status(), b.layout.StatusPos(), domain.TextStatus)
}
