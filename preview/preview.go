// Package preview builds the detail view of a single video or show.
package preview

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/format"
	"github.com/vscope-cli/vscope/source"
)

const noDescription = "无"

// Field is one labelled row of the info table.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Action is what the user can do with the item.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

// View is the detail view of one item.
type View struct {
	Kind        string  `json:"kind"`
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Art         string  `json:"art,omitempty"`
	Info        []Field `json:"info"`
	Description string  `json:"description"`
	Action      Action  `json:"action"`
}

// Fetch loads the detail of id from client and builds its view.
func Fetch(ctx context.Context, client source.Client, kind, id string) (*View, error) {
	switch kind {
	case constant.KindVideo:
		detail, err := client.FetchVideoDetail(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch video %s: %w", id, err)
		}
		return Video(detail), nil
	case constant.KindShow:
		detail, err := client.FetchShowDetail(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetch show %s: %w", id, err)
		}
		return Show(detail), nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
}

// Video builds the view of a video detail.
func Video(d *source.VideoDetail) *View {
	return &View{
		Kind:     constant.KindVideo,
		ID:       d.ID,
		Title:    d.Title,
		Subtitle: "时长: " + format.Duration(d.Duration),
		Art:      d.Screenshot(),
		Info: []Field{
			{"类型", d.Category},
			{"标签", d.Tags},
			{"发布时间", d.Published},
			{"总播放数", count(d.ViewCount)},
			{"评论/收藏", pair(d.CommentCount, d.FavoriteCount)},
			{"顶/踩", pair(d.UpCount, d.DownCount)},
		},
		Description: format.Fallback(d.Description, noDescription),
		Action:      Action{ID: "play", Label: "播放", URI: d.Link},
	}
}

// Show builds the view of a show detail.
func Show(d *source.ShowDetail) *View {
	return &View{
		Kind:     constant.KindShow,
		ID:       d.ID,
		Title:    d.Name,
		Subtitle: fmt.Sprintf("评分: %.1f", d.Score),
		Art:      d.Cover(),
		Info: []Field{
			{"类型", d.Genre},
			{"地区", d.Area},
			{"上映", d.Released},
			{"更新至/总集数", fmt.Sprintf("%d / %d", d.EpisodeUpdated, d.EpisodeCount)},
			{"周播放/总播放", fmt.Sprintf("%s / %s", count(d.ViewWeekCount), count(d.ViewCount))},
			{"评论/收藏", pair(d.CommentCount, d.FavoriteCount)},
			{"顶/踩", pair(d.UpCount, d.DownCount)},
		},
		Description: format.Fallback(d.Description, noDescription),
		Action:      Action{ID: "play", Label: "分集播放", URI: d.Watch()},
	}
}

// count abbreviates n and keeps the exact figure alongside when they differ.
func count(n int64) string {
	short, err := format.CountInt(n)
	if err != nil {
		return "-"
	}

	full := humanize.Comma(n)
	if short == fmt.Sprint(n) {
		return short
	}
	return fmt.Sprintf("%s (%s)", short, full)
}

func pair(a, b int64) string {
	return humanize.Comma(a) + " / " + humanize.Comma(b)
}
