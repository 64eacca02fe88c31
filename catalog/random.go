package catalog

import (
	"fmt"

	"github.com/vscope-cli/vscope/source"
)

// Rand is the source of randomness for every random choice the application makes.
// *math/rand/v2.Rand satisfies it; tests supply deterministic implementations.
type Rand interface {
	// IntN returns a uniform value in [0, n). n is always positive.
	IntN(n int) int
}

// PickRandom returns a uniformly chosen category of kind.
func (c *Catalog) PickRandom(kind string, rng Rand) (source.Category, error) {
	list := c.categories[kind]
	if len(list) == 0 {
		return source.Category{}, fmt.Errorf("%w: no %q categories", ErrEmptyCatalog, kind)
	}
	return list[rng.IntN(len(list))], nil
}
