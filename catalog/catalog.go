// Package catalog holds the ordered category lists per content kind and the
// department index derived from them.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/source"
	"github.com/vscope-cli/vscope/where"
	"golang.org/x/exp/slices"
)

//go:embed category.json
var builtin []byte

var (
	// ErrEmptyCatalog means a random pick was requested from a kind without categories.
	// It points at a broken catalog file, not at a bad request.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrDuplicateTerm means a category term appears twice within one kind.
	ErrDuplicateTerm = errors.New("duplicate category term")
)

// Kinds lists the content kinds in display order.
var Kinds = []string{constant.KindVideo, constant.KindShow}

// Catalog is immutable once built and safe for concurrent readers.
type Catalog struct {
	categories map[string][]source.Category
	index      *Index
}

// Parse builds a catalog from a JSON object mapping each kind to its ordered category list.
// Kinds other than video and show are ignored.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string][]source.Category
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{categories: make(map[string][]source.Category, len(Kinds))}
	for _, kind := range Kinds {
		list := raw[kind]
		seen := make(map[string]struct{}, len(list))
		for _, cat := range list {
			if cat.Term == "" {
				return nil, fmt.Errorf("%s category %q has an empty term", kind, cat.Label)
			}
			if _, dup := seen[cat.Term]; dup {
				return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTerm, kind, cat.Term)
			}
			seen[cat.Term] = struct{}{}
		}
		c.categories[kind] = list
	}

	c.index = newIndex(c)
	return c, nil
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return lo.Must(Parse(builtin))
}

// Open reads a catalog file from the active filesystem.
func Open(path string) (*Catalog, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// FromConfig loads the catalog named by catalog.path, then the user override
// file, falling back to the builtin catalog.
func FromConfig() (*Catalog, error) {
	if path := viper.GetString(key.CatalogPath); path != "" {
		log.Infof("loading catalog from %s", path)
		return Open(path)
	}

	path := where.Catalog()
	if exists, _ := filesystem.API().Exists(path); exists {
		log.Infof("loading catalog override from %s", path)
		return Open(path)
	}

	return Builtin(), nil
}

// Load returns the categories of kind in definition order; unknown kinds yield an empty list.
func (c *Catalog) Load(kind string) []source.Category {
	return slices.Clone(c.categories[kind])
}

// Len returns the number of categories of kind.
func (c *Catalog) Len(kind string) int {
	return len(c.categories[kind])
}

// Index returns the department index derived from this catalog.
func (c *Catalog) Index() *Index {
	return c.index
}
