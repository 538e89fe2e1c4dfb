package catalogapi

import "encoding/json"

// HomeResponse is the root of the home document. Containers stay raw so one
// malformed container cannot fail the whole document.
type HomeResponse struct {
	Data struct {
		StandardCollection struct {
			Containers []json.RawMessage `json:"containers"`
		} `json:"StandardCollection"`
	} `json:"data"`
}

// SetResponse is the root of a referenced set document. Data holds a single
// entry whose key names the set type (CuratedSet, PersonalizedCuratedSet, ...).
type SetResponse struct {
	Data map[string]json.RawMessage `json:"data"`
}

// Container wraps one collection of the home document
type Container struct {
	Set Set `json:"set"`
}

// Set is a collection: either embedded items or a reference (type SetRef).
// Items are decoded one at a time by MapItems.
type Set struct {
	Type  string            `json:"type"`
	RefID string            `json:"refId,omitempty"`
	SetID string            `json:"setId,omitempty"`
	Text  Text              `json:"text"`
	Items []json.RawMessage `json:"items"`
}

// Item is one entry of a set
type Item struct {
	Type      string `json:"type"`
	ContentID string `json:"contentId,omitempty"`
	Text      Text   `json:"text"`
	Image     Image  `json:"image"`
}

// Text holds localized strings keyed by usage
type Text struct {
	Title TitleText `json:"title"`
}

// TitleText holds title variants keyed by length ("full", "slug", ...)
type TitleText struct {
	Full map[string]Localized `json:"full"` // keyed by source entity: set, series, program, collection
}

// Localized holds a string per language; only "default" is used
type Localized struct {
	Default LocalizedContent `json:"default"`
}

// LocalizedContent is a single localized string
type LocalizedContent struct {
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// Image holds image variants keyed by purpose ("tile", "hero_collection", ...)
type Image struct {
	Tile map[string]map[string]ImageVariant `json:"tile"` // aspect ratio -> source entity -> variant
}

// ImageVariant holds an image per language; only "default" is used
type ImageVariant struct {
	Default ImageRef `json:"default"`
}

// ImageRef points at a rendered image
type ImageRef struct {
	URL          string `json:"url"`
	MasterID     string `json:"masterId,omitempty"`
	MasterWidth  int    `json:"masterWidth,omitempty"`
	MasterHeight int    `json:"masterHeight,omitempty"`
}
