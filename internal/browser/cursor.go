package browser

import "github.com/rjcampbel/DisneyMagic/internal/config"

// Content is the shape of the catalog as the cursor sees it
type Content interface {
	NodeCount() int
	ItemCount(node int) int
}

// Window is a snapshot of the cursor's visible region
type Window struct {
	RowOffset  int   // first visible node
	ColOffsets []int // first visible item, per visible row slot
	Row        int   // cursor row within the visible grid
	Col        int   // cursor column within the visible grid
}

// GridCursor tracks the selection over a fixed rows×columns viewport. The
// position is kept as a flat index into the viewport; the row offset scrolls
// the node list and each visible row slot scrolls its items independently.
// Moves past the edge of the catalog are silent no-ops.
type GridCursor struct {
	rows, cols int
	content    Content

	index      int
	rowOffset  int
	colOffsets []int
}

// NewGridCursor creates a cursor at (0,0) with all offsets zero
func NewGridCursor(grid config.GridConfig, content Content) *GridCursor {
	rows, cols := max(grid.Rows, 1), max(grid.Columns, 1)
	return &GridCursor{
		rows:       rows,
		cols:       cols,
		content:    content,
		colOffsets: make([]int, rows),
	}
}

// Row returns the cursor row within the visible grid
func (c *GridCursor) Row() int { return c.index / c.cols }

// Col returns the cursor column within the visible grid
func (c *GridCursor) Col() int { return c.index % c.cols }

// Rows returns the number of visible row slots
func (c *GridCursor) Rows() int { return c.rows }

// Columns returns the number of visible columns
func (c *GridCursor) Columns() int { return c.cols }

// VisibleWindow returns a copy of the current window
func (c *GridCursor) VisibleWindow() Window {
	offsets := make([]int, len(c.colOffsets))
	copy(offsets, c.colOffsets)
	return Window{
		RowOffset:  c.rowOffset,
		ColOffsets: offsets,
		Row:        c.Row(),
		Col:        c.Col(),
	}
}

// Node returns the catalog node index under the cursor
func (c *GridCursor) Node() int { return c.rowOffset + c.Row() }

// Item returns the item index under the cursor within its node
func (c *GridCursor) Item() int { return c.colOffsets[c.Row()] + c.Col() }

func (c *GridCursor) itemCount(row int) int {
	node := c.rowOffset + row
	if node >= c.content.NodeCount() {
		return 0
	}
	return c.content.ItemCount(node)
}

// MoveLeft moves one column left, sliding the row's window when at column 0
func (c *GridCursor) MoveLeft() {
	row := c.Row()
	switch {
	case c.Col() > 0:
		c.index--
	case c.colOffsets[row] > 0:
		c.colOffsets[row]--
	}
}

// MoveRight moves one column right, sliding the row's window when at the
// last column and more items follow
func (c *GridCursor) MoveRight() {
	row, col := c.Row(), c.Col()
	count := c.itemCount(row)
	switch {
	case col < c.cols-1:
		if c.colOffsets[row]+col+1 < count {
			c.index++
		}
	case c.colOffsets[row]+c.cols < count:
		c.colOffsets[row]++
	}
}

// MoveUp moves one row up, scrolling the node list when at the top row
func (c *GridCursor) MoveUp() {
	switch {
	case c.Row() > 0:
		c.index -= c.cols
	case c.rowOffset > 0:
		c.rowOffset--
	}
}

// MoveDown moves one row down, scrolling the node list when at the last
// visible row and more nodes follow
func (c *GridCursor) MoveDown() {
	row := c.Row()
	total := c.content.NodeCount()
	switch {
	case row < c.rows-1:
		if c.rowOffset+row+1 < total {
			c.index += c.cols
		}
	case c.rowOffset+c.rows < total:
		c.rowOffset++
	}
}

// Reveal puts the cursor on item of node, scrolling only along the axes where
// the target is outside the window. Out of range targets are ignored.
func (c *GridCursor) Reveal(node, item int) bool {
	total := c.content.NodeCount()
	if node < 0 || node >= total {
		return false
	}
	count := c.content.ItemCount(node)
	if item < 0 || item >= count {
		return false
	}

	if node < c.rowOffset || node >= c.rowOffset+c.rows {
		c.rowOffset = min(node, max(0, total-c.rows))
	}
	row := node - c.rowOffset
	if off := c.colOffsets[row]; item < off || item >= off+c.cols {
		c.colOffsets[row] = min(item, max(0, count-c.cols))
	}
	col := item - c.colOffsets[row]
	c.index = row*c.cols + col
	return true
}
