package domain

import (
	"image"
)

// ItemKind distinguishes the catalog entry types a tile can represent
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindSeries
	KindVideo
	KindCollection
)

// Source type tags as they appear in the catalog JSON
const (
	TypeSeries     = "DmcSeries"
	TypeVideo      = "DmcVideo"
	TypeCollection = "StandardCollection"
	TypeSetRef     = "SetRef"
)

// String returns a short lowercase name for the kind
func (k ItemKind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindVideo:
		return "video"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// NodeState is the build-time resolution state of a CatalogNode
type NodeState int

const (
	StateUnresolved NodeState = iota
	StateResolvingReference
	StateResolved       // reference fetched and parsed
	StateResolvedDirect // items embedded in the home document
	StateResolvedEmpty  // reference resolution failed
)

// String returns a display name for the state
func (s NodeState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolvingReference:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateResolvedDirect:
		return "direct"
	case StateResolvedEmpty:
		return "empty"
	default:
		return "invalid"
	}
}

// IsTerminal reports whether no further transition can happen
func (s NodeState) IsTerminal() bool {
	return s == StateResolved || s == StateResolvedDirect || s == StateResolvedEmpty
}

// ItemDescriptor is a tile as described by the catalog, before any image is fetched
type ItemDescriptor struct {
	Type     string   // raw type tag from the JSON
	Kind     ItemKind // resolved kind (KindUnknown for unrecognized tags)
	Title    string
	ImageURL string // empty when the item has no usable image path
}

// CollectionDescriptor is one container of the home document
type CollectionDescriptor struct {
	Type  string // raw set type; TypeSetRef marks a reference
	Title string
	RefID string           // only set for references
	Items []ItemDescriptor // only set for embedded collections
	Err   error            // set when the container could not be decoded
}

// IsReference returns true if the collection's items live in a separate document
func (c CollectionDescriptor) IsReference() bool {
	return c.Type == TypeSetRef
}

// Scale is a per-axis scale factor
type Scale struct {
	X float64
	Y float64
}

// Mul returns s multiplied per axis by f
func (s Scale) Mul(f Scale) Scale {
	return Scale{X: s.X * f.X, Y: s.Y * f.Y}
}

// Uniform returns a Scale with the same factor on both axes
func Uniform(f float64) Scale {
	return Scale{X: f, Y: f}
}

// Point is a position on a Surface
type Point struct {
	X int
	Y int
}

// Size is an extent on a Surface
type Size struct {
	W int
	H int
}

// CatalogItem is one tile: a title plus either a decoded image or a text fallback.
// Title and visual never change after construction; only the scale and the
// selection flag are touched per frame.
type CatalogItem struct {
	title    string
	kind     ItemKind
	imageURL string
	visual   image.Image

	baseScale Scale
	scale     Scale
	selected  bool
}

// NewCatalogItem creates an item. A nil visual puts the item in text fallback
// for its whole lifetime. desiredW/desiredH are the on-screen footprint the
// image is normalized to.
func NewCatalogItem(title string, kind ItemKind, imageURL string, visual image.Image, desiredW, desiredH float64) *CatalogItem {
	item := &CatalogItem{
		title:    title,
		kind:     kind,
		imageURL: imageURL,
		visual:   visual,
	}
	if visual != nil {
		b := visual.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			item.baseScale = Scale{
				X: desiredW / float64(b.Dx()),
				Y: desiredH / float64(b.Dy()),
			}
		} else {
			item.visual = nil
		}
	}
	item.scale = item.baseScale
	return item
}

// Title returns the item's display title
func (i *CatalogItem) Title() string { return i.title }

// Kind returns the item's kind
func (i *CatalogItem) Kind() ItemKind { return i.kind }

// ImageURL returns the source image URL (may be empty)
func (i *CatalogItem) ImageURL() string { return i.imageURL }

// HasVisual returns true if the item renders as an image
func (i *CatalogItem) HasVisual() bool { return i.visual != nil }

// BaseScale returns the normalizing scale computed at construction
func (i *CatalogItem) BaseScale() Scale { return i.baseScale }

// Scale returns the scale the next Draw will use
func (i *CatalogItem) Scale() Scale { return i.scale }

// IsSelected returns the selection flag set by the last Enhance/ResetScale
func (i *CatalogItem) IsSelected() bool { return i.selected }

// Enhance scales the item to base × factor and marks it selected
func (i *CatalogItem) Enhance(factor Scale) {
	i.scale = i.baseScale.Mul(factor)
	i.selected = true
}

// ResetScale restores the base scale and clears the selection flag
func (i *CatalogItem) ResetScale() {
	i.scale = i.baseScale
	i.selected = false
}

// Draw renders the item at pos: the scaled image if present, the title otherwise
func (i *CatalogItem) Draw(s Surface, pos Point) {
	if i.visual != nil {
		s.DrawImage(i.visual, pos, i.scale)
		return
	}
	s.DrawText(i.title, pos, TextTile)
}

// CatalogNode is one titled row of the catalog
type CatalogNode struct {
	title string
	refID string
	state NodeState
	items []*CatalogItem
}

// NewCatalogNode creates a node in a terminal state. The items slice is owned
// by the node afterwards.
func NewCatalogNode(title, refID string, state NodeState, items []*CatalogItem) *CatalogNode {
	return &CatalogNode{
		title: title,
		refID: refID,
		state: state,
		items: items,
	}
}

// Title returns the row title
func (n *CatalogNode) Title() string { return n.title }

// RefID returns the reference id for SetRef rows, empty otherwise
func (n *CatalogNode) RefID() string { return n.refID }

// State returns the resolution state the node ended in
func (n *CatalogNode) State() NodeState { return n.state }

// Len returns the number of items
func (n *CatalogNode) Len() int { return len(n.items) }

// Item returns the item at index, or nil when out of range
func (n *CatalogNode) Item(index int) *CatalogItem {
	if index < 0 || index >= len(n.items) {
		return nil
	}
	return n.items[index]
}
