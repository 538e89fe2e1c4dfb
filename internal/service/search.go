package service

import (
	"strings"
	"unicode"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
	"github.com/sahilm/fuzzy"
)

// SearchHit locates a tile matching a find query
type SearchHit struct {
	Node           int // row index in the catalog
	Item           int // item index within the row
	Title          string
	MatchedIndexes []int // byte offsets into Title
	Score          int   // higher is better
}

type searchEntry struct {
	node, item int
	title      string
	offsets    []int // byte in lowercase title -> byte in title
}

// SearchIndex implements sahilm/fuzzy.Source over every tile title
type SearchIndex struct {
	entries     []searchEntry
	lowerTitles []string // Pre-computed lowercase titles
}

// lowerWithOffsets lowercases s rune by rune and records, for every byte of
// the result, the byte offset of the rune it came from in s.
func lowerWithOffsets(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s))
	for i, r := range s {
		lr := unicode.ToLower(r)
		n, _ := b.WriteRune(lr)
		for k := 0; k < n; k++ {
			offsets = append(offsets, i)
		}
	}
	return b.String(), offsets
}

// NewSearchIndex indexes all item titles of the catalog in row order
func NewSearchIndex(nodes []*domain.CatalogNode) *SearchIndex {
	idx := &SearchIndex{}
	for n, node := range nodes {
		for i := 0; i < node.Len(); i++ {
			title := node.Item(i).Title()
			lower, offsets := lowerWithOffsets(title)
			idx.entries = append(idx.entries, searchEntry{node: n, item: i, title: title, offsets: offsets})
			idx.lowerTitles = append(idx.lowerTitles, lower)
		}
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *SearchIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of indexed tiles (implements fuzzy.Source)
func (idx *SearchIndex) Len() int { return len(idx.entries) }

// Find returns up to limit hits, best first. limit <= 0 means no limit.
func (idx *SearchIndex) Find(query string, limit int) []SearchHit {
	query, _ = lowerWithOffsets(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, idx)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	hits := make([]SearchHit, len(matches))
	for i, m := range matches {
		e := idx.entries[m.Index]
		hits[i] = SearchHit{
			Node:           e.node,
			Item:           e.item,
			Title:          e.title,
			MatchedIndexes: e.titleOffsets(m.MatchedIndexes),
			Score:          m.Score,
		}
	}
	return hits
}

// titleOffsets maps match offsets in the lowercase title back onto the title
func (e searchEntry) titleOffsets(lowered []int) []int {
	out := make([]int, 0, len(lowered))
	for _, off := range lowered {
		if off >= 0 && off < len(e.offsets) {
			out = append(out, e.offsets[off])
		}
	}
	return out
}
