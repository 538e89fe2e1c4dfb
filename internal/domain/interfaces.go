package domain

import (
	"context"
	"image"
)

// TextRole tells a Surface what a piece of text is so it can style it
type TextRole int

const (
	TextRowTitle TextRole = iota // collection title above a row of tiles
	TextTile                     // fallback text for a tile without an image
	TextStatus                   // status line below the grid
)

// Surface is the rendering collaborator. Catalog data never holds on to a
// Surface; it is passed to each Draw call.
type Surface interface {
	// DrawImage draws img with its top-left corner at pos, scaled per axis
	DrawImage(img image.Image, pos Point, scale Scale)

	// DrawText draws a string starting at pos
	DrawText(text string, pos Point, role TextRole)

	// DrawOutline draws a highlight rectangle with its top-left corner at pos
	DrawOutline(pos Point, size Size)
}

// Fetcher retrieves the raw bytes behind a URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// CatalogRepository reads the remote catalog
type CatalogRepository interface {
	// GetHome returns the collections of the home document in source order
	GetHome(ctx context.Context) ([]CollectionDescriptor, error)

	// GetSet returns the items of a referenced set
	GetSet(ctx context.Context, refID string) ([]ItemDescriptor, error)
}
