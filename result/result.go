// Package result holds the categorized result set produced for one request.
package result

import (
	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/icon"
)

// Attribute is a short labelled value shown on a card, e.g. a view count.
type Attribute struct {
	Icon  icon.Icon `json:"icon,omitempty"`
	Value string    `json:"value"`
}

// Record is one formatted item of a group.
type Record struct {
	// Type is the content kind of the item, "video" or "show".
	Type     string      `json:"type"`
	ID       string      `json:"id"`
	URI      string      `json:"uri"`
	Title    string      `json:"title"`
	Art      string      `json:"art,omitempty"`
	Subtitle string      `json:"subtitle,omitempty"`
	Emblem   icon.Icon   `json:"emblem,omitempty"`
	Attrs    []Attribute `json:"attributes,omitempty"`
}

// Group is a named, ordered list of records.
type Group struct {
	Key     string    `json:"key"`
	Title   string    `json:"title"`
	Icon    icon.Icon `json:"icon,omitempty"`
	Kind    Kind      `json:"kind"`
	Records []Record  `json:"records"`
}

// Hints returns the rendering hints of the group's kind.
func (g *Group) Hints() Hints {
	return g.Kind.Hints()
}

// Len returns the number of records in the group.
func (g *Group) Len() int {
	return len(g.Records)
}

// Set is the ordered list of groups answering one request.
type Set []*Group

// Add appends a group. Empty groups are kept so that every registered section is reported.
func (s *Set) Add(g *Group) {
	*s = append(*s, g)
}

// Len returns the total number of records across all groups.
func (s Set) Len() int {
	return lo.SumBy(s, func(g *Group) int { return g.Len() })
}

// Find returns the group registered under key.
func (s Set) Find(key string) (*Group, bool) {
	return lo.Find(s, func(g *Group) bool { return g.Key == key })
}

// Keys returns the group keys in order.
func (s Set) Keys() []string {
	return lo.Map(s, func(g *Group, _ int) string { return g.Key })
}
