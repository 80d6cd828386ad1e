package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(lang string) Node { return Node{Kind: NodeItem, Language: lang} }
func header() Node          { return Node{Kind: NodeHeader} }

func TestItemVisible(t *testing.T) {
	assert.True(t, ItemVisible("", "ko"))
	assert.True(t, ItemVisible("ko", "ko"))
	assert.False(t, ItemVisible("en", "ko"))
}

func TestDeriveVisibility_ItemsOnly(t *testing.T) {
	nodes := []Node{item("en"), item("ko"), item("")}

	assert.Equal(t, []bool{false, true, true}, DeriveVisibility(nodes, "ko"))
}

func TestDeriveVisibility_HeadersFollowTheirRun(t *testing.T) {
	nodes := []Node{header(), item("en"), header(), item("ko")}

	got := DeriveVisibility(nodes, "ko")

	assert.Equal(t, []bool{false, false, true, true}, got)
}

func TestDeriveVisibility_EmptyRunHidesHeader(t *testing.T) {
	nodes := []Node{header(), header(), item(""), header()}

	got := DeriveVisibility(nodes, "en")

	assert.Equal(t, []bool{false, true, true, false}, got)
}

func TestDeriveVisibility_UntaggedItemKeepsHeaderVisible(t *testing.T) {
	nodes := []Node{header(), item("ko"), item(""), item("en")}

	got := DeriveVisibility(nodes, "fr")

	assert.Equal(t, []bool{true, false, true, false}, got)
}

func TestDeriveVisibility_HeaderLaw(t *testing.T) {
	nodes := []Node{
		item("en"),
		header(), item("en"), item("ko"),
		header(), item("ja"),
		header(),
		header(), item(""), item("en"),
	}
	for _, lang := range []string{"en", "ko", "ja", "fr"} {
		visible := DeriveVisibility(nodes, lang)
		for _, g := range GroupNodes(nodes) {
			if g.Header < 0 {
				continue
			}
			want := false
			for _, idx := range g.Items {
				want = want || visible[idx]
			}
			assert.Equal(t, want, visible[g.Header], "lang %s header %d", lang, g.Header)
		}
		for i, n := range nodes {
			if n.Kind == NodeItem {
				assert.Equal(t, ItemVisible(n.Language, lang), visible[i])
			}
		}
	}
}

func TestDeriveVisibility_Idempotent(t *testing.T) {
	nodes := []Node{header(), item("en"), item("ko")}

	first := DeriveVisibility(nodes, "ko")
	second := DeriveVisibility(nodes, "ko")

	assert.Equal(t, first, second)
}

func TestGroupNodes(t *testing.T) {
	nodes := []Node{item("en"), header(), item("ko"), item(""), header()}

	groups := GroupNodes(nodes)

	assert.Equal(t, []Group{
		{Header: -1, Items: []int{0}},
		{Header: 1, Items: []int{2, 3}},
		{Header: 4},
	}, groups)
}

func TestGroupNodes_Empty(t *testing.T) {
	assert.Empty(t, GroupNodes(nil))
}

func TestSummarize(t *testing.T) {
	nodes := []Node{header(), item("en"), header(), item("ko")}
	visible := DeriveVisibility(nodes, "ko")

	res := Summarize(nodes, visible, "ko")

	assert.Equal(t, FilterResult{Language: "ko", Items: 2, VisibleItems: 1, Headers: 2, VisibleHeaders: 1}, res)
}
