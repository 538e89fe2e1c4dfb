package catalogapi

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// itemKeys are the path fragments an item type selects
type itemKeys struct {
	kind  domain.ItemKind
	title string // key under text.title.full
	image string // key under image.tile.<aspect>
}

// itemTypes maps every known item type tag to its path fragments
var itemTypes = map[string]itemKeys{
	domain.TypeSeries:     {kind: domain.KindSeries, title: "series", image: "series"},
	domain.TypeVideo:      {kind: domain.KindVideo, title: "program", image: "program"},
	domain.TypeCollection: {kind: domain.KindCollection, title: "collection", image: "default"},
}

// setTitleKey is the key under text.title.full that holds a collection title
const setTitleKey = "set"

// MapItem converts an item DTO to a descriptor.
// Known types read title and image from their fixed paths; a missing title is
// an error, a missing image leaves ImageURL empty. Unknown types become
// KindUnknown with the first available title and no image.
func MapItem(it Item, aspect string) (domain.ItemDescriptor, error) {
	desc := domain.ItemDescriptor{Type: it.Type}

	keys, ok := itemTypes[it.Type]
	if !ok {
		title := firstTitle(it.Text)
		if title == "" {
			return desc, fmt.Errorf("%w %q: no title", domain.ErrUnknownItemType, it.Type)
		}
		desc.Kind = domain.KindUnknown
		desc.Title = title
		return desc, nil
	}

	desc.Kind = keys.kind
	desc.Title = titleFor(it.Text, keys.title)
	if desc.Title == "" {
		return desc, fmt.Errorf("%w: text.title.full.%s.default.content", domain.ErrMissingField, keys.title)
	}
	desc.ImageURL = imageFor(it.Image, aspect, keys.image)
	return desc, nil
}

// MapItems decodes and converts raw items in order. Items that cannot be
// decoded or mapped are left out and reported in the returned error slice.
func MapItems(items []json.RawMessage, aspect string) ([]domain.ItemDescriptor, []error) {
	descs := make([]domain.ItemDescriptor, 0, len(items))
	var errs []error
	for i, raw := range items {
		var it Item
		if err := json.Unmarshal(raw, &it); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w: %v", i, domain.ErrMalformed, err))
			continue
		}
		desc, err := MapItem(it, aspect)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		descs = append(descs, desc)
	}
	return descs, errs
}

// MapCollection converts a home container set to a descriptor. Reference
// sets carry only their ref id; embedded sets carry their mapped items.
func MapCollection(set Set, aspect string) (domain.CollectionDescriptor, []error) {
	coll := domain.CollectionDescriptor{
		Type:  set.Type,
		Title: titleFor(set.Text, setTitleKey),
	}
	if coll.IsReference() {
		coll.RefID = set.RefID
		return coll, nil
	}
	var errs []error
	coll.Items, errs = MapItems(set.Items, aspect)
	return coll, errs
}

// MapContainer decodes one raw home container. A container that does not
// decode yields a descriptor with Err set and whatever title could be read.
func MapContainer(raw json.RawMessage, aspect string) (domain.CollectionDescriptor, []error) {
	var c Container
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.CollectionDescriptor{
			Title: salvageTitle(raw),
			Err:   fmt.Errorf("%w: %v", domain.ErrMalformed, err),
		}, nil
	}
	return MapCollection(c.Set, aspect)
}

// salvageTitle reads just the set title from a container that failed to decode
func salvageTitle(raw json.RawMessage) string {
	var c struct {
		Set struct {
			Text json.RawMessage `json:"text"`
		} `json:"set"`
	}
	if json.Unmarshal(raw, &c) != nil || len(c.Set.Text) == 0 {
		return ""
	}
	var t Text
	if json.Unmarshal(c.Set.Text, &t) != nil {
		return ""
	}
	return titleFor(t, setTitleKey)
}

func titleFor(t Text, key string) string {
	if t.Title.Full == nil {
		return ""
	}
	return t.Title.Full[key].Default.Content
}

// firstTitle returns the first non-empty title in key order
func firstTitle(t Text) string {
	keys := make([]string, 0, len(t.Title.Full))
	for k := range t.Title.Full {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if c := t.Title.Full[k].Default.Content; c != "" {
			return c
		}
	}
	return ""
}

func imageFor(img Image, aspect, key string) string {
	variants, ok := img.Tile[aspect]
	if !ok {
		return ""
	}
	return variants[key].Default.URL
}
