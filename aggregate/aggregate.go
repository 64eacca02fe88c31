// Package aggregate resolves topical tags sent by aggregating callers
// to one concrete content kind and category.
package aggregate

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vscope-cli/vscope/catalog"
)

// Target is the resolved feed: a content kind and a category label.
type Target struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
}

// Mapper applies the tag rules. Each Resolve call draws from the Rand it was built with.
type Mapper struct {
	catalog *catalog.Catalog
	rng     catalog.Rand
}

// New returns a mapper drawing random categories from c.
func New(c *catalog.Catalog, rng catalog.Rand) *Mapper {
	return &Mapper{catalog: c, rng: rng}
}

// Tags lists every tag the mapper understands, in rule order.
func Tags() []string {
	return lo.FlatMap(rules, func(r rule, _ int) []string { return r.tags })
}

// Resolve returns the target of the first rule matched by any of tags,
// or None when the tags are unsupported.
// Tags are compared case-insensitively; duplicates and order do not matter.
func (m *Mapper) Resolve(tags []string) (mo.Option[Target], error) {
	set := lo.Keyify(lo.Map(tags, func(t string, _ int) string {
		return strings.ToLower(strings.TrimSpace(t))
	}))

	r, ok := lo.Find(rules, func(r rule) bool {
		return lo.SomeBy(r.tags, func(t string) bool {
			_, hit := set[t]
			return hit
		})
	})
	if !ok {
		return mo.None[Target](), nil
	}

	target, err := r.resolve(m.catalog, m.rng)
	if err != nil {
		return mo.None[Target](), err
	}
	return mo.Some(target), nil
}
