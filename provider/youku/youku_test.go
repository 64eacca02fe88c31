package youku

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/source"
	"github.com/zalando/go-keyring"
)

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
}

// api is a scripted Youku API recording every request.
type api struct {
	mu       sync.Mutex
	requests []*url.URL
	status   int
	body     string
}

func (a *api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.requests = append(a.requests, r.URL)
	status, body := a.status, a.body
	a.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (a *api) last() *url.URL {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.requests[len(a.requests)-1]
}

func (a *api) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

func newTestClient(a *api, opts Options) (*Client, func()) {
	server := httptest.NewServer(a)
	opts.APIRoot = server.URL + "/v2/"
	opts.ClientID = "test-id"
	opts.HTTP = server.Client()
	return New(opts), server.Close
}

func TestFetchLists(t *testing.T) {
	Convey("Given a Youku API", t, func() {
		a := &api{}
		c, closeServer := newTestClient(a, Options{})
		defer closeServer()
		ctx := context.Background()

		Convey("Category videos use by_category", func() {
			a.body = `{"total":2,"videos":[
				{"id":"XMTA","title":"猫","link":"http://v.youku.com/XMTA","view_count":"12345","up_count":12,"down_count":"0"},
				{"id":"XMTB","title":"狗","view_count":5}
			]}`

			videos, err := c.FetchVideos(ctx, source.VideoQuery{Category: "搞笑", Period: "today", OrderBy: "relevance", Count: 50})
			So(err, ShouldBeNil)
			So(videos, ShouldHaveLength, 2)
			So(videos[0].Title, ShouldEqual, "猫")
			So(videos[0].UpCount, ShouldEqual, "12")
			So(videos[1].ViewCount, ShouldEqual, "5")

			u := a.last()
			So(u.Path, ShouldEqual, "/v2/videos/by_category.json")
			So(u.Query().Get("client_id"), ShouldEqual, "test-id")
			So(u.Query().Get("category"), ShouldEqual, "搞笑")
			So(u.Query().Get("period"), ShouldEqual, "today")
			So(u.Query().Get("count"), ShouldEqual, "50")
			So(u.Query().Has("keyword"), ShouldBeFalse)
		})

		Convey("Keyword videos use the search endpoint", func() {
			a.body = `{"videos":[]}`
			videos, err := c.FetchVideos(ctx, source.VideoQuery{Keyword: "猫", Period: "history", OrderBy: "view-count", Count: 20})
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)

			u := a.last()
			So(u.Path, ShouldEqual, "/v2/searches/video/by_keyword.json")
			So(u.Query().Get("keyword"), ShouldEqual, "猫")
			So(u.Query().Get("orderby"), ShouldEqual, "view-count")
			So(u.Query().Has("category"), ShouldBeFalse)
		})

		Convey("Shows keep the API order", func() {
			a.body = `{"shows":[{"id":"1","name":"a","score":8.5,"episode_updated":12},{"id":"2","name":"b"}]}`
			shows, err := c.FetchShows(ctx, source.ShowQuery{Category: "电视剧", Period: "week", Count: 10})
			So(err, ShouldBeNil)
			So(shows[0].Name, ShouldEqual, "a")
			So(shows[0].Score, ShouldEqual, "8.5")
			So(shows[0].EpisodeUpdated, ShouldEqual, "12")
			So(shows[1].Name, ShouldEqual, "b")
			So(a.last().Path, ShouldEqual, "/v2/shows/by_category.json")

			_, err = c.FetchShows(ctx, source.ShowQuery{Category: "综艺", Keyword: "x", Period: "history", Count: 20})
			So(err, ShouldBeNil)
			So(a.last().Path, ShouldEqual, "/v2/searches/show/by_keyword.json")
		})
	})
}

func TestFailures(t *testing.T) {
	Convey("Given a failing Youku API", t, func() {
		a := &api{}
		c, closeServer := newTestClient(a, Options{})
		defer closeServer()
		ctx := context.Background()

		Convey("Error payloads become upstream errors", func() {
			a.status = http.StatusBadRequest
			a.body = `{"error":{"code":1002,"type":"SystemException","description":"Invalid client_id"}}`

			_, err := c.FetchVideos(ctx, source.VideoQuery{})
			var upstream *source.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.Status, ShouldEqual, http.StatusBadRequest)
			So(upstream.Code, ShouldEqual, 1002)
			So(upstream.Message, ShouldEqual, "Invalid client_id")
			So(upstream.Op, ShouldEqual, "videos/by_category")
		})

		Convey("Error payloads with a success status are errors too", func() {
			a.body = `{"error":{"code":"120010223","description":"Video not found"}}`

			_, err := c.FetchVideoDetail(ctx, "missing")
			var upstream *source.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.Code, ShouldEqual, 120010223)
		})

		Convey("Non-success statuses without payload are errors", func() {
			a.status = http.StatusBadGateway
			a.body = `<html>bad gateway</html>`

			_, err := c.FetchShows(ctx, source.ShowQuery{})
			var upstream *source.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.Status, ShouldEqual, http.StatusBadGateway)
		})

		Convey("Malformed bodies are errors", func() {
			a.body = `{"videos":[{"id":{}}]}`

			_, err := c.FetchVideos(ctx, source.VideoQuery{})
			var upstream *source.UpstreamError
			So(errors.As(err, &upstream), ShouldBeTrue)
			So(upstream.Err, ShouldNotBeNil)
		})

		Convey("Cancelled contexts are returned as is", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := c.FetchVideos(cancelled, source.VideoQuery{})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(a.count(), ShouldEqual, 0)
		})
	})

	Convey("Given an API that never answers", t, func() {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		c := New(Options{APIRoot: server.URL, ClientID: "id", HTTP: server.Client()})
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(50*time.Millisecond, cancel)

		_, err := c.FetchShows(ctx, source.ShowQuery{})
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}

func TestDetails(t *testing.T) {
	Convey("Given a Youku API with the detail cache enabled", t, func() {
		a := &api{}
		c, closeServer := newTestClient(a, Options{DetailTTL: time.Hour, CacheDir: "/details/" + t.Name()})
		defer closeServer()
		ctx := context.Background()

		Convey("Video details decode flexible numbers and are cached", func() {
			a.body = `{"id":"XMTA","title":"猫","duration":"3725.5","view_count":"1234567","comment_count":3,"bigThumbnail":"big.jpg","thumbnail":"small.jpg"}`

			detail, err := c.FetchVideoDetail(ctx, "XMTA")
			So(err, ShouldBeNil)
			So(detail.Duration, ShouldEqual, 3725.5)
			So(detail.ViewCount, ShouldEqual, 1234567)
			So(detail.CommentCount, ShouldEqual, 3)
			So(detail.Screenshot(), ShouldEqual, "big.jpg")
			So(a.last().Query().Get("video_id"), ShouldEqual, "XMTA")

			again, err := c.FetchVideoDetail(ctx, "XMTA")
			So(err, ShouldBeNil)
			So(again.Title, ShouldEqual, "猫")
			So(a.count(), ShouldEqual, 1)
		})

		Convey("Show details decode flexible numbers", func() {
			a.body = `{"id":"s1","name":"剧","score":"9.2","episode_count":"40","episode_updated":"","view_count":99,"poster":"p.jpg"}`

			detail, err := c.FetchShowDetail(ctx, "s1")
			So(err, ShouldBeNil)
			So(detail.Score, ShouldEqual, 9.2)
			So(detail.EpisodeCount, ShouldEqual, 40)
			So(detail.EpisodeUpdated, ShouldEqual, 0)
			So(detail.Cover(), ShouldEqual, "p.jpg")
			So(a.last().Query().Get("show_id"), ShouldEqual, "s1")

			pruned, err := c.PruneDetails()
			So(err, ShouldBeNil)
			So(pruned, ShouldEqual, 0)
		})
	})
}

func TestFromConfig(t *testing.T) {
	Convey("FromConfig", t, func() {
		viper.Set(key.YoukuClientID, "")
		defer viper.Set(key.YoukuClientID, "")

		Convey("Fails without any client id", func() {
			_, err := FromConfig()
			So(errors.Is(err, ErrNoClientID), ShouldBeTrue)
		})

		Convey("Uses the configured client id", func() {
			viper.Set(key.YoukuClientID, "configured")
			c, err := FromConfig()
			So(err, ShouldBeNil)
			So(c.clientID, ShouldEqual, "configured")
		})

		Convey("Falls back to the keyring", func() {
			So(keyring.Set("vscope", "youku-client-id", "stored"), ShouldBeNil)
			defer keyring.Delete("vscope", "youku-client-id")

			c, err := FromConfig()
			So(err, ShouldBeNil)
			So(c.clientID, ShouldEqual, "stored")
		})
	})
}
