package service

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// NodeMatch is a row kept by FilterNodes
type NodeMatch struct {
	Index        int // row index in the catalog
	Node         *domain.CatalogNode
	TitleMatched bool
	Items        []int // indexes of matching items
}

// FilterNodes keeps rows whose title, or any of whose item titles, fuzzy
// matches query (case and accent insensitive). An empty query keeps every row
// with all of its items.
func FilterNodes(nodes []*domain.CatalogNode, query string) []NodeMatch {
	query = strings.TrimSpace(query)
	var out []NodeMatch
	for n, node := range nodes {
		m := NodeMatch{Index: n, Node: node}
		if query == "" {
			m.TitleMatched = true
			for i := 0; i < node.Len(); i++ {
				m.Items = append(m.Items, i)
			}
			out = append(out, m)
			continue
		}

		m.TitleMatched = fuzzy.MatchNormalizedFold(query, node.Title())
		for i := 0; i < node.Len(); i++ {
			if fuzzy.MatchNormalizedFold(query, node.Item(i).Title()) {
				m.Items = append(m.Items, i)
			}
		}
		if m.TitleMatched || len(m.Items) > 0 {
			out = append(out, m)
		}
	}
	return out
}
