package browser

import (
	"math/rand"
	"testing"

	"github.com/rjcampbel/DisneyMagic/internal/config"
)

// counts is a Content where counts[i] is the item count of node i
type counts []int

func (c counts) NodeCount() int         { return len(c) }
func (c counts) ItemCount(node int) int { return c[node] }

func uniform(nodes, items int) counts {
	c := make(counts, nodes)
	for i := range c {
		c[i] = items
	}
	return c
}

func grid(rows, cols int) config.GridConfig {
	return config.GridConfig{Rows: rows, Columns: cols}
}

func repeat(n int, move func()) {
	for i := 0; i < n; i++ {
		move()
	}
}

func TestMoveRightSlidesWindow(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))

	repeat(3, c.MoveRight)
	if c.index != 3 || c.colOffsets[0] != 0 {
		t.Fatalf("after 3 rights: index %d offset %d, want 3/0", c.index, c.colOffsets[0])
	}

	c.MoveRight()
	if c.index != 3 || c.colOffsets[0] != 1 {
		t.Fatalf("after 4 rights: index %d offset %d, want 3/1", c.index, c.colOffsets[0])
	}

	repeat(3, c.MoveRight)
	win := c.VisibleWindow()
	if win.ColOffsets[0] != 4 || win.Col != 3 || win.Row != 0 {
		t.Fatalf("after 7 rights: %+v, want offset 4 at (0,3)", win)
	}
	if c.Item() != 7 {
		t.Errorf("selected item = %d, want 7", c.Item())
	}

	// other row slots are untouched
	for r := 1; r < 4; r++ {
		if win.ColOffsets[r] != 0 {
			t.Errorf("row %d offset = %d, want 0", r, win.ColOffsets[r])
		}
	}
}

func TestMoveRightStopsAtLastItem(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))
	repeat(20, c.MoveRight)
	if c.colOffsets[0] != 6 || c.Col() != 3 || c.Item() != 9 {
		t.Errorf("offset %d col %d item %d, want 6/3/9", c.colOffsets[0], c.Col(), c.Item())
	}

	short := NewGridCursor(grid(4, 4), counts{2, 10})
	repeat(5, short.MoveRight)
	if short.Col() != 1 || short.colOffsets[0] != 0 {
		t.Errorf("short row: col %d offset %d, want 1/0", short.Col(), short.colOffsets[0])
	}
}

func TestMoveDownScrollsRows(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))
	repeat(3, c.MoveDown)
	if c.Row() != 3 || c.rowOffset != 0 {
		t.Fatalf("row %d offset %d, want 3/0", c.Row(), c.rowOffset)
	}
	c.MoveDown()
	if c.Row() != 3 || c.rowOffset != 1 {
		t.Errorf("row %d offset %d, want 3/1", c.Row(), c.rowOffset)
	}

	exact := NewGridCursor(grid(4, 4), uniform(4, 10))
	repeat(3, exact.MoveDown)
	exact.MoveDown()
	if exact.Row() != 3 || exact.rowOffset != 0 {
		t.Errorf("row %d offset %d, want no-op at 3/0", exact.Row(), exact.rowOffset)
	}
}

func TestMoveDownFewNodes(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(2, 3))
	repeat(5, c.MoveDown)
	if c.Row() != 1 || c.rowOffset != 0 {
		t.Errorf("row %d offset %d, want 1/0", c.Row(), c.rowOffset)
	}
}

func TestBoundaryNoOps(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))

	c.MoveLeft()
	c.MoveUp()
	if c.index != 0 || c.rowOffset != 0 || c.colOffsets[0] != 0 {
		t.Errorf("moves at origin changed state: index %d row offset %d col offset %d",
			c.index, c.rowOffset, c.colOffsets[0])
	}

	empty := NewGridCursor(grid(4, 4), counts{})
	empty.MoveRight()
	empty.MoveDown()
	if empty.index != 0 || empty.rowOffset != 0 {
		t.Errorf("empty catalog moved: index %d offset %d", empty.index, empty.rowOffset)
	}
}

func TestMoveLeftSlidesBack(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))
	repeat(5, c.MoveRight) // col 3, offset 2
	repeat(3, c.MoveLeft)  // col 0, offset 2
	if c.Col() != 0 || c.colOffsets[0] != 2 {
		t.Fatalf("col %d offset %d, want 0/2", c.Col(), c.colOffsets[0])
	}
	c.MoveLeft()
	if c.Col() != 0 || c.colOffsets[0] != 1 {
		t.Errorf("col %d offset %d, want 0/1", c.Col(), c.colOffsets[0])
	}
}

func TestMoveUpScrollsBack(t *testing.T) {
	c := NewGridCursor(grid(4, 4), uniform(6, 10))
	repeat(5, c.MoveDown) // row 3, offset 2
	repeat(3, c.MoveUp)   // row 0, offset 2
	c.MoveUp()
	if c.Row() != 0 || c.rowOffset != 1 {
		t.Errorf("row %d offset %d, want 0/1", c.Row(), c.rowOffset)
	}
}

func TestReveal(t *testing.T) {
	tests := []struct {
		name       string
		node, item int
		rowOffset  int
		colOffset  int
		row, col   int
	}{
		{"visible", 1, 2, 0, 0, 1, 2},
		{"far right", 0, 9, 0, 6, 0, 3},
		{"middle", 2, 5, 0, 5, 2, 0},
		{"last node", 5, 0, 2, 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGridCursor(grid(4, 4), uniform(6, 10))
			if !c.Reveal(tt.node, tt.item) {
				t.Fatal("Reveal returned false")
			}
			if c.rowOffset != tt.rowOffset || c.colOffsets[c.Row()] != tt.colOffset {
				t.Errorf("offsets %d/%d, want %d/%d", c.rowOffset, c.colOffsets[c.Row()], tt.rowOffset, tt.colOffset)
			}
			if c.Row() != tt.row || c.Col() != tt.col {
				t.Errorf("cursor (%d,%d), want (%d,%d)", c.Row(), c.Col(), tt.row, tt.col)
			}
			if c.Node() != tt.node || c.Item() != tt.item {
				t.Errorf("selected %d/%d, want %d/%d", c.Node(), c.Item(), tt.node, tt.item)
			}
		})
	}

	c := NewGridCursor(grid(4, 4), uniform(6, 10))
	if c.Reveal(6, 0) || c.Reveal(0, 10) || c.Reveal(-1, 0) {
		t.Error("out of range reveal should fail")
	}
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	content := counts{10, 0, 3, 7, 1, 12, 4}
	c := NewGridCursor(grid(3, 4), content)
	moves := []func(){c.MoveLeft, c.MoveRight, c.MoveUp, c.MoveDown}

	for step := 0; step < 5000; step++ {
		moves[rng.Intn(len(moves))]()

		if c.index < 0 || c.index >= 3*4 {
			t.Fatalf("step %d: index %d out of range", step, c.index)
		}
		if c.rowOffset < 0 || c.rowOffset+c.Row() >= len(content) {
			t.Fatalf("step %d: cursor row %d+%d beyond %d nodes", step, c.rowOffset, c.Row(), len(content))
		}
		for r, off := range c.colOffsets {
			if off < 0 {
				t.Fatalf("step %d: row %d negative offset %d", step, r, off)
			}
		}
	}
}
