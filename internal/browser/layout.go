package browser

import (
	"math"

	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// Surface units: a terminal column is one unit wide and a line is two units
// tall, so vertical spacing is kept even to stay line-aligned.
const (
	titleHeight = 2 // one line for the row title
	linePad     = 2 // one blank line above and below a tile row for the outline
	colGap      = 3 // outline on both sides plus one column of space
)

// Layout holds every position the browser draws at. It is computed once
// from the configuration and never changes.
type Layout struct {
	Origin   domain.Point
	Tile     domain.Size // footprint of an unselected tile
	Enhanced domain.Size // footprint of the selected tile
	Factor   domain.Scale
	ColPitch int
	RowPitch int
	Rows     int
	Columns  int
}

// NewLayout derives a layout from the grid and tile configuration
func NewLayout(cfg *config.Config) Layout {
	tile := domain.Size{W: cfg.Tile.Width, H: cfg.Tile.Height}
	factor := cfg.Tile.EnhanceFactor
	enhanced := domain.Size{
		W: int(math.Ceil(float64(tile.W) * factor)),
		H: int(math.Ceil(float64(tile.H) * factor)),
	}
	tileRows := enhanced.H + enhanced.H%2

	return Layout{
		Origin:   domain.Point{X: 1, Y: 0},
		Tile:     tile,
		Enhanced: enhanced,
		Factor:   domain.Uniform(factor),
		ColPitch: enhanced.W + colGap,
		RowPitch: titleHeight + linePad + tileRows + linePad,
		Rows:     cfg.Grid.Rows,
		Columns:  cfg.Grid.Columns,
	}
}

// TitlePos returns where the title of visible row slot row is drawn
func (l Layout) TitlePos(row int) domain.Point {
	return domain.Point{X: l.Origin.X, Y: l.Origin.Y + row*l.RowPitch}
}

// TilePos returns the top-left corner of the tile at (row, col)
func (l Layout) TilePos(row, col int) domain.Point {
	return domain.Point{
		X: l.Origin.X + col*l.ColPitch,
		Y: l.TitlePos(row).Y + titleHeight + linePad,
	}
}

// StatusPos returns where the status line is drawn, below the last row slot
func (l Layout) StatusPos() domain.Point {
	return domain.Point{X: l.Origin.X, Y: l.Origin.Y + l.Rows*l.RowPitch}
}

// Extent returns the surface size needed to draw the whole grid and status line
func (l Layout) Extent() domain.Size {
	return domain.Size{
		W: l.Origin.X + l.Columns*l.ColPitch,
		H: l.StatusPos().Y + titleHeight,
	}
}
