package decode

import (
	"github.com/valyala/fastjson"

	"github.com/vadiminshakov/igsession/internal/domain"
)

// RootNavigation decodes the root /marketnavigation listing: nodes are
// typed, markets pass through raw. The asymmetry with NodeNavigation is
// upstream behavior and is preserved exactly.
func RootNavigation(v *fastjson.Value) (*domain.RootNavigation, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}
	items, err := o.array("nodes")
	if err != nil {
		return nil, err
	}

	nav := &domain.RootNavigation{Nodes: make([]domain.NodeSummary, 0, len(items))}
	for _, it := range items {
		var n domain.NodeSummary
		if n.ID, err = it.str("id"); err != nil {
			return nil, err
		}
		if n.Name, err = it.str("name"); err != nil {
			return nil, err
		}
		nav.Nodes = append(nav.Nodes, n)
	}

	if nav.Markets, err = o.raw("markets"); err != nil {
		return nil, err
	}
	return nav, nil
}

// NodeNavigation decodes a node-scoped listing: nodes pass through raw,
// markets are fully typed.
func NodeNavigation(v *fastjson.Value) (*domain.NodeNavigation, error) {
	o, err := root(v)
	if err != nil {
		return nil, err
	}

	nav := &domain.NodeNavigation{}
	if nav.Nodes, err = o.raw("nodes"); err != nil {
		return nil, err
	}

	items, err := o.array("markets")
	if err != nil {
		return nil, err
	}
	nav.Markets = make([]domain.Market, 0, len(items))
	for _, it := range items {
		m, err := market(it)
		if err != nil {
			return nil, err
		}
		nav.Markets = append(nav.Markets, m)
	}
	return nav, nil
}
