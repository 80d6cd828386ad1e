package entity

// NodeKind distinguishes the two filterable element kinds.
type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeHeader
)

// String returns a short name for logs.
func (k NodeKind) String() string {
	if k == NodeHeader {
		return "header"
	}
	return "item"
}

// Node is one filterable element in document order.
// Language is only meaningful for items; empty means the item shows under any language.
type Node struct {
	Kind     NodeKind
	Language string
}

// Group is a header and the run of items that follows it.
// Header is -1 for the items that precede the first header.
type Group struct {
	Header int
	Items  []int
}

// ItemVisible reports whether an item tagged with itemLang shows under current.
func ItemVisible(itemLang, current string) bool {
	return itemLang == "" || itemLang == current
}

// GroupNodes scans nodes once in document order and associates each item with
// the closest preceding header. Indices refer to positions in nodes.
func GroupNodes(nodes []Node) []Group {
	groups := make([]Group, 0, 4)
	current := Group{Header: -1}
	for i, n := range nodes {
		if n.Kind == NodeHeader {
			if current.Header >= 0 || len(current.Items) > 0 {
				groups = append(groups, current)
			}
			current = Group{Header: i}
			continue
		}
		current.Items = append(current.Items, i)
	}
	if current.Header >= 0 || len(current.Items) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// DeriveVisibility returns the visibility of every node for the given language.
// A header is visible iff at least one item in its run is visible; an empty run hides it.
func DeriveVisibility(nodes []Node, lang string) []bool {
	visible := make([]bool, len(nodes))
	for _, g := range GroupNodes(nodes) {
		shown := false
		for _, idx := range g.Items {
			visible[idx] = ItemVisible(nodes[idx].Language, lang)
			shown = shown || visible[idx]
		}
		if g.Header >= 0 {
			visible[g.Header] = shown
		}
	}
	return visible
}

// FilterResult summarizes one filter application.
type FilterResult struct {
	Language       string `json:"language"`
	Items          int    `json:"items"`
	VisibleItems   int    `json:"visible_items"`
	Headers        int    `json:"headers"`
	VisibleHeaders int    `json:"visible_headers"`
}

// Summarize counts visible nodes by kind.
func Summarize(nodes []Node, visible []bool, lang string) FilterResult {
	res := FilterResult{Language: lang}
	for i, n := range nodes {
		switch n.Kind {
		case NodeHeader:
			res.Headers++
			if visible[i] {
				res.VisibleHeaders++
			}
		default:
			res.Items++
			if visible[i] {
				res.VisibleItems++
			}
		}
	}
	return res
}
