package domain

import "encoding/json"

// NodeSummary is one hierarchy node of the market navigation tree.
type NodeSummary struct {
	ID   string
	Name string
}

// RootNavigation is the shape of the root /marketnavigation listing:
// typed node summaries next to the raw, undecoded market entries. The
// asymmetry with NodeNavigation mirrors the upstream API and is kept
// bit-for-bit in the output.
type RootNavigation struct {
	Nodes   []NodeSummary
	Markets []json.RawMessage
}

// NodeNavigation is the shape of a node-scoped listing: raw node
// entries next to fully decoded markets.
type NodeNavigation struct {
	Nodes   []json.RawMessage
	Markets []Market
}
