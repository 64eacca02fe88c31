package catalog

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/source"
	"github.com/vscope-cli/vscope/where"
)

func init() {
	filesystem.SetMemMapFs()
}

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) IntN(n int) int { return min(int(f), n-1) }

const small = `{
  "video": [
    {"term": "music", "label": "音乐", "lang": "zh_CN"},
    {"term": "game", "label": "游戏", "lang": "zh_CN"}
  ],
  "show": [
    {"term": "tv", "label": "电视剧", "lang": "zh_CN"}
  ],
  "playlist": [
    {"term": "x", "label": "专辑", "lang": "zh_CN"}
  ]
}`

func TestParse(t *testing.T) {
	Convey("Given a catalog document", t, func() {
		c, err := Parse([]byte(small))
		So(err, ShouldBeNil)

		Convey("Load keeps definition order", func() {
			labels := lo.Map(c.Load("video"), func(cat source.Category, _ int) string { return cat.Label })
			So(labels, ShouldResemble, []string{"音乐", "游戏"})
		})

		Convey("Unknown kinds load empty", func() {
			So(c.Load("playlist"), ShouldBeEmpty)
			So(c.Load("nope"), ShouldBeEmpty)
		})

		Convey("Load returns a copy", func() {
			list := c.Load("video")
			list[0].Label = "changed"
			So(c.Load("video")[0].Label, ShouldEqual, "音乐")
		})

		Convey("Duplicate terms are rejected", func() {
			_, err := Parse([]byte(`{"video":[{"term":"a","label":"A"},{"term":"a","label":"B"}]}`))
			So(errors.Is(err, ErrDuplicateTerm), ShouldBeTrue)
		})

		Convey("Empty terms are rejected", func() {
			_, err := Parse([]byte(`{"show":[{"term":"","label":"A"}]}`))
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed JSON is rejected", func() {
			_, err := Parse([]byte(`{`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPickRandom(t *testing.T) {
	Convey("Given a catalog", t, func() {
		c := lo.Must(Parse([]byte(small)))

		Convey("A pick is drawn from the kind's list", func() {
			cat, err := c.PickRandom("video", fixedRand(1))
			So(err, ShouldBeNil)
			So(cat.Label, ShouldEqual, "游戏")
		})

		Convey("Seeded randomness is reproducible", func() {
			a, _ := c.PickRandom("video", rand.New(rand.NewPCG(7, 7)))
			b, _ := c.PickRandom("video", rand.New(rand.NewPCG(7, 7)))
			So(a, ShouldResemble, b)
		})

		Convey("An empty kind fails fast", func() {
			_, err := c.PickRandom("playlist", fixedRand(0))
			So(errors.Is(err, ErrEmptyCatalog), ShouldBeTrue)
		})
	})
}

func TestBuiltin(t *testing.T) {
	Convey("The builtin catalog", t, func() {
		c := Builtin()

		Convey("Has both kinds", func() {
			So(c.Len("video"), ShouldBeGreaterThan, 0)
			So(c.Len("show"), ShouldBeGreaterThan, 0)
		})

		Convey("Generates unique, type-prefixed department ids", func() {
			ids := c.Index().IDs()
			So(len(lo.Uniq(ids)), ShouldEqual, len(ids))
			So(len(ids), ShouldEqual, c.Len("video")+c.Len("show"))
			for _, id := range ids {
				So(strings.HasPrefix(id, "video_") || strings.HasPrefix(id, "show_"), ShouldBeTrue)
				d, err := ParseDepartment(id)
				So(err, ShouldBeNil)
				So(d.ID(), ShouldEqual, id)
			}
		})

		Convey("Resolves the variety department used by browse requests", func() {
			label, ok := c.Index().Label("video_综艺")
			So(ok, ShouldBeTrue)
			So(label, ShouldEqual, "综艺")
		})

		Convey("Tolerates concurrent readers", func() {
			var wg sync.WaitGroup
			for i := range 16 {
				wg.Add(1)
				go func(seed uint64) {
					defer wg.Done()
					rng := rand.New(rand.NewPCG(seed, seed))
					for range 100 {
						_, _ = c.PickRandom("show", rng)
						_, _ = c.Index().Label("show_电视剧")
						_ = c.Load("video")
					}
				}(uint64(i))
			}
			wg.Wait()
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given catalog configuration", t, func() {
		Convey("An explicit path wins", func() {
			So(filesystem.API().WriteFile("/catalogs/small.json", []byte(small), 0o644), ShouldBeNil)
			viper.Set(key.CatalogPath, "/catalogs/small.json")
			defer viper.Set(key.CatalogPath, "")

			c, err := FromConfig()
			So(err, ShouldBeNil)
			So(c.Len("video"), ShouldEqual, 2)
		})

		Convey("A missing explicit path is an error", func() {
			viper.Set(key.CatalogPath, "/catalogs/missing.json")
			defer viper.Set(key.CatalogPath, "")

			_, err := FromConfig()
			So(err, ShouldNotBeNil)
		})

		Convey("The user override is used when present", func() {
			So(filesystem.API().WriteFile(where.Catalog(), []byte(small), 0o644), ShouldBeNil)
			defer filesystem.API().Remove(where.Catalog())

			c, err := FromConfig()
			So(err, ShouldBeNil)
			So(c.Len("show"), ShouldEqual, 1)
		})

		Convey("Otherwise the builtin catalog is used", func() {
			c, err := FromConfig()
			So(err, ShouldBeNil)
			So(c.Len("video"), ShouldEqual, Builtin().Len("video"))
		})
	})
}
