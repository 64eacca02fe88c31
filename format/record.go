package format

import (
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/source"
)

// Style selects the text and attributes a card carries.
type Style int

const (
	// Compact cards show the view count only.
	Compact Style = iota
	// Detailed video cards add votes; detailed show cards add episode progress.
	Detailed
	// Searched cards show the publish date below the title.
	Searched
	// Spotlight show cards carry the score and the source emblem.
	Spotlight
)

// Video builds the card of v.
func Video(v source.Video, style Style) result.Record {
	r := result.Record{
		Type:  constant.KindVideo,
		ID:    v.ID,
		URI:   v.Link,
		Title: v.Title,
		Art:   v.Thumbnail,
	}

	r.Attrs = appendCount(r.Attrs, icon.Views, v.ID, "view_count", v.ViewCount)
	switch style {
	case Detailed:
		r.Attrs = appendCount(r.Attrs, icon.Up, v.ID, "up_count", v.UpCount)
		r.Attrs = appendCount(r.Attrs, icon.Down, v.ID, "down_count", v.DownCount)
	case Searched:
		r.Subtitle = v.Published
	}

	return r
}

// Show builds the card of s.
func Show(s source.Show, style Style) result.Record {
	r := result.Record{
		Type:  constant.KindShow,
		ID:    s.ID,
		URI:   s.Link,
		Title: s.Name,
		Art:   s.Thumbnail,
	}

	switch style {
	case Detailed:
		if s.EpisodeUpdated != "" {
			r.Subtitle = "更新至" + s.EpisodeUpdated
		}
	case Searched:
		r.Subtitle = s.Published
	case Spotlight:
		r.Emblem = icon.Logo
		if s.Score != "" {
			r.Attrs = append(r.Attrs, result.Attribute{Icon: icon.Score, Value: s.Score})
		}
	}

	r.Attrs = appendCount(r.Attrs, icon.Views, s.ID, "view_count", s.ViewCount)
	return r
}

// Videos builds one card per video, keeping the input order.
func Videos(videos []source.Video, style Style) []result.Record {
	records := make([]result.Record, len(videos))
	for i, v := range videos {
		records[i] = Video(v, style)
	}
	return records
}

// Shows builds one card per show, keeping the input order.
func Shows(shows []source.Show, style Style) []result.Record {
	records := make([]result.Record, len(shows))
	for i, s := range shows {
		records[i] = Show(s, style)
	}
	return records
}

func appendCount(attrs []result.Attribute, ic icon.Icon, id, field, value string) []result.Attribute {
	text, err := Count(value)
	if err != nil {
		log.WithFields(map[string]any{"id": id, "field": field}).Warn(err)
		return attrs
	}
	return append(attrs, result.Attribute{Icon: ic, Value: text})
}
