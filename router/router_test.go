package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/config"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/source"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) IntN(n int) int { return min(int(f), n-1) }

var settings = lo.Must(config.ResolveSettings(1, 20, 2))

func newRouter(client source.Client) *Router {
	return New(catalog.Builtin(), client, fixedRand(0))
}

func TestDispatch(t *testing.T) {
	Convey("Given a router over a recording client", t, func() {
		client := &fakeClient{items: 12}
		r := newRouter(client)
		c := catalog.Builtin()

		search := func(req Request) *Reply {
			req.Settings = settings
			reply, err := r.Search(context.Background(), req)
			So(err, ShouldBeNil)
			So(reply.Cancelled, ShouldBeFalse)
			return reply
		}

		Convey("An empty request renders the index", func() {
			reply := search(Request{})

			So(settings.IndexTop, ShouldEqual, "电视剧")
			So(client.recorded(), ShouldResemble, []call{
				{"show", "电视剧", "", "week", "", 10},
				{"show", c.Load("show")[0].Label, "", "today", "", 24},
				{"video", c.Load("video")[0].Label, "", "today", constant.DefaultOrderBy, 24},
			})

			So(reply.Groups.Keys(), ShouldResemble, []string{KeyShowCarousel, KeyShowSection, KeyVideoSection})
			So(reply.Groups[0].Title, ShouldEqual, "本周电视剧节目TOP10")
			So(reply.Groups[0].Kind, ShouldEqual, result.TopIndex)
			So(reply.Groups[1].Kind, ShouldEqual, result.RandomSection)
			So(reply.Groups[2].Title, ShouldEqual, "今日"+c.Load("video")[0].Label+"视频推荐")
		})

		Convey("A video department is browsed with API defaults", func() {
			reply := search(Request{Department: "video_综艺"})

			So(client.recorded(), ShouldResemble, []call{
				{"video", "综艺", "", "today", constant.DefaultOrderBy, constant.DefaultCount},
			})

			top, _ := reply.Groups.Find(KeyVideoCarousel)
			rest, _ := reply.Groups.Find(KeyVideoGrid)
			So(top.Kind, ShouldEqual, result.BrowseTop)
			So(top.Len(), ShouldEqual, 10)
			So(rest.Len(), ShouldEqual, 2)
			So(rest.Records[0].ID, ShouldEqual, "v10")
		})

		Convey("A show department falls back to 综艺 when unresolved", func() {
			search(Request{Department: "show"})
			search(Request{Department: "show_电影"})

			So(client.recorded(), ShouldResemble, []call{
				{"show", "综艺", "", "today", "", constant.DefaultCount},
				{"show", "电影", "", "today", "", constant.DefaultCount},
			})
		})

		Convey("A query without department searches all videos", func() {
			reply := search(Request{Query: "猫"})

			So(client.recorded(), ShouldResemble, []call{
				{"video", "", "猫", "history", "view-count", 20},
			})
			So(reply.Groups.Keys(), ShouldResemble, []string{KeyVideoResults})
			So(reply.Groups[0].Kind, ShouldEqual, result.KeywordSearch)
		})

		Convey("A query with department is scoped to its category", func() {
			search(Request{Query: "猫", Department: "video_搞笑"})
			search(Request{Query: "猫", Department: "show_动漫"})
			search(Request{Query: "猫", Department: "show_nope"})

			So(client.recorded(), ShouldResemble, []call{
				{"video", "搞笑", "猫", "history", "view-count", 20},
				{"show", "动漫", "猫", "history", "", 20},
				{"show", "综艺", "猫", "history", "", 20},
			})
		})

		Convey("Unknown department kinds are rejected before any fetch", func() {
			_, err := r.Search(context.Background(), Request{Query: "x", Department: "playlist_x", Settings: settings})
			So(errors.Is(err, catalog.ErrUnknownDepartment), ShouldBeTrue)
			So(client.recorded(), ShouldBeEmpty)
		})
	})
}

func TestAggregated(t *testing.T) {
	Convey("Given aggregated requests", t, func() {
		client := &fakeClient{items: 3}
		r := newRouter(client)

		Convey("Matched tags fetch the themed feed", func() {
			reply, err := r.Search(context.Background(), Request{Aggregated: true, Keywords: []string{"music"}, Settings: settings})
			So(err, ShouldBeNil)
			So(client.recorded(), ShouldResemble, []call{
				{"video", "音乐", "", "today", constant.DefaultOrderBy, constant.DefaultCount},
			})
			So(reply.Groups[0].Key, ShouldEqual, KeyAggVideos)
			So(reply.Groups[0].Kind, ShouldEqual, result.AggregatedFeed)
		})

		Convey("Show targets fetch shows", func() {
			reply, err := r.Search(context.Background(), Request{Aggregated: true, Keywords: []string{"sports"}, Settings: settings})
			So(err, ShouldBeNil)
			So(client.recorded(), ShouldResemble, []call{
				{"show", "体育", "", "today", "", constant.DefaultCount},
			})
			So(reply.Groups[0].Title, ShouldEqual, "今日体育节目推荐")
		})

		Convey("Unsupported tags yield an empty set without fetching", func() {
			reply, err := r.Search(context.Background(), Request{Aggregated: true, Keywords: []string{"unknown-tag"}, Settings: settings})
			So(err, ShouldBeNil)
			So(reply.Groups, ShouldBeEmpty)
			So(client.recorded(), ShouldBeEmpty)
		})

		Convey("A query bypasses the tags", func() {
			_, err := r.Search(context.Background(), Request{Aggregated: true, Query: "猫", Keywords: []string{"sports"}, Settings: settings})
			So(err, ShouldBeNil)
			So(client.recorded(), ShouldResemble, []call{
				{"video", "", "猫", "history", "view-count", 20},
			})
		})
	})
}

func TestFailures(t *testing.T) {
	Convey("Upstream failures terminate the request", t, func() {
		client := &fakeClient{items: 3, fail: 2}
		reply, err := newRouter(client).Search(context.Background(), Request{Settings: settings})

		So(reply, ShouldBeNil)
		var upstream *source.UpstreamError
		So(errors.As(err, &upstream), ShouldBeTrue)
		So(client.recorded(), ShouldHaveLength, 2)
	})

	Convey("An empty catalog fails the index view", t, func() {
		empty := lo.Must(catalog.Parse([]byte(`{"video":[{"term":"a","label":"A"}]}`)))
		client := &fakeClient{items: 1}
		_, err := New(empty, client, fixedRand(0)).Search(context.Background(), Request{Settings: settings})

		So(errors.Is(err, catalog.ErrEmptyCatalog), ShouldBeTrue)
		So(client.recorded(), ShouldHaveLength, 1)
	})
}

func TestCancel(t *testing.T) {
	Convey("Given a router", t, func() {
		Convey("Cancelling before Run prevents any fetch", func() {
			client := &fakeClient{items: 3}
			q := newRouter(client).Query(context.Background(), Request{Settings: settings})
			q.Cancel()

			reply, err := q.Run()
			So(err, ShouldBeNil)
			So(reply.Cancelled, ShouldBeTrue)
			So(reply.Groups, ShouldBeEmpty)
			So(client.recorded(), ShouldBeEmpty)
		})

		Convey("Cancelling during a fetch aborts it and stops the pipeline", func() {
			client := &fakeClient{items: 3, block: true, started: make(chan struct{}, 1)}
			q := newRouter(client).Query(context.Background(), Request{Settings: settings})

			go func() {
				<-client.started
				q.Cancel()
			}()

			done := make(chan *Reply, 1)
			go func() {
				reply, err := q.Run()
				if err == nil {
					done <- reply
				}
				close(done)
			}()

			select {
			case reply := <-done:
				So(reply, ShouldNotBeNil)
				So(reply.Cancelled, ShouldBeTrue)
				So(reply.Groups, ShouldBeEmpty)
			case <-time.After(5 * time.Second):
				So("cancellation was not observed", ShouldBeEmpty)
			}
			So(client.recorded(), ShouldHaveLength, 1)
		})

		Convey("A query runs only once", func() {
			q := newRouter(&fakeClient{}).Query(context.Background(), Request{Aggregated: true, Settings: settings})
			_, err := q.Run()
			So(err, ShouldBeNil)
			_, err = q.Run()
			So(err, ShouldNotBeNil)
		})
	})
}
