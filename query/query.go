// Package query remembers keyword searches and suggests them back.
package query

import (
	"cmp"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher = gache.New[map[string]*record](&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	})

	mu          sync.Mutex
	suggestions = make(map[string][]string)
)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember adds weight to the rank of q. Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(suggestions)
	return cacher.Set(records)
}

// Forget removes q from the history.
func Forget(q string) error {
	mu.Lock()
	defer mu.Unlock()

	records := load()
	delete(records, sanitize(q))

	clear(suggestions)
	return cacher.Set(records)
}

// Suggest returns the best match for q, if any.
func Suggest(q string) mo.Option[string] {
	if s := SuggestMany(q); len(s) > 0 {
		return mo.Some(s[0])
	}
	return mo.None[string]()
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
// It returns nothing when search.show_query_suggestions is off.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := suggestions[q]; ok {
		return slices.Clone(cached)
	}

	matches := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})
	slices.SortFunc(matches, func(a, b *record) int {
		if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
			return c
		}
		return strings.Compare(a.Query, b.Query)
	})

	result := lo.Map(matches, func(r *record, _ int) string { return r.Query })
	suggestions[q] = result
	return slices.Clone(result)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
