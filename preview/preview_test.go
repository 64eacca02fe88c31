package preview

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vscope-cli/vscope/source"
)

type detailClient struct {
	video *source.VideoDetail
	show  *source.ShowDetail
}

func (detailClient) Name() string { return "details" }

func (detailClient) FetchVideos(context.Context, source.VideoQuery) ([]source.Video, error) {
	return nil, nil
}

func (detailClient) FetchShows(context.Context, source.ShowQuery) ([]source.Show, error) {
	return nil, nil
}

func (d detailClient) FetchVideoDetail(_ context.Context, id string) (*source.VideoDetail, error) {
	if d.video == nil || d.video.ID != id {
		return nil, &source.UpstreamError{Op: "videos/show", Status: 404}
	}
	return d.video, nil
}

func (d detailClient) FetchShowDetail(_ context.Context, id string) (*source.ShowDetail, error) {
	if d.show == nil || d.show.ID != id {
		return nil, &source.UpstreamError{Op: "shows/show", Status: 404}
	}
	return d.show, nil
}

func TestVideo(t *testing.T) {
	Convey("Given a video detail", t, func() {
		detail := &source.VideoDetail{
			ID: "XMTA", Title: "猫", Link: "http://v.youku.com/XMTA", Duration: 3725,
			ViewCount: 12345678, CommentCount: 1200, FavoriteCount: 3, UpCount: 10, DownCount: 1,
			Thumbnail: "small.jpg",
		}
		v := Video(detail)

		So(v.Subtitle, ShouldEqual, "时长: 1:02:05")
		So(v.Description, ShouldEqual, "无")
		So(v.Art, ShouldEqual, "small.jpg")
		So(v.Info[3].Value, ShouldEqual, "1234万 (12,345,678)")
		So(v.Info[4].Value, ShouldEqual, "1,200 / 3")
		So(v.Action.URI, ShouldEqual, detail.Link)

		Convey("It renders as text", func() {
			var buf bytes.Buffer
			So(v.Render(&buf, 40), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "猫")
			So(buf.String(), ShouldContainSubstring, "播放")
			So(buf.String(), ShouldNotContainSubstring, "标签")
		})
	})
}

func TestShow(t *testing.T) {
	Convey("Given a show detail", t, func() {
		detail := &source.ShowDetail{
			ID: "s1", Name: "剧", Score: 9.24, EpisodeUpdated: 12, EpisodeCount: 40,
			ViewCount: 999, ViewWeekCount: 12, Link: "http://show", PlayLink: "http://play",
			Description: "很好看",
		}
		v := Show(detail)

		So(v.Subtitle, ShouldEqual, "评分: 9.2")
		So(v.Info[3].Value, ShouldEqual, "12 / 40")
		So(v.Info[4].Value, ShouldEqual, "12 / 999")
		So(v.Description, ShouldEqual, "很好看")
		So(v.Action.URI, ShouldEqual, "http://play")
	})
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		client := detailClient{video: &source.VideoDetail{ID: "v"}, show: &source.ShowDetail{ID: "s"}}
		ctx := context.Background()

		v, err := Fetch(ctx, client, "video", "v")
		So(err, ShouldBeNil)
		So(v.Kind, ShouldEqual, "video")

		s, err := Fetch(ctx, client, "show", "s")
		So(err, ShouldBeNil)
		So(s.Kind, ShouldEqual, "show")

		_, err = Fetch(ctx, client, "show", "missing")
		var upstream *source.UpstreamError
		So(errors.As(err, &upstream), ShouldBeTrue)

		_, err = Fetch(ctx, client, "playlist", "x")
		So(err, ShouldNotBeNil)
	})
}
