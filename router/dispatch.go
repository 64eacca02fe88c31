package router

import (
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/format"
	"github.com/vscope-cli/vscope/icon"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/source"
)

// Group keys.
const (
	KeyShowSection   = "section2"
	KeyVideoSection  = "section3"
	KeyVideoCarousel = "video_carousel"
	KeyVideoGrid     = "video_grid"
	KeyShowCarousel  = "show_carousel"
	KeyShowGrid      = "show_grid"
	KeyVideoResults  = "video_query_result"
	KeyShowResults   = "show_query_result"
	KeyAggVideos     = "agg_video_grid"
	KeyAggShows      = "agg_show_grid"
)

const (
	titleBrowseTop = "今日播放TOP10"
	titleResults   = "搜索结果"
)

// home is the index view: the weekly top shows of the configured category
// followed by one random show section and one random video section.
func (p *pipeline) home() error {
	top := p.req.Settings.IndexTop
	shows, err := p.shows(source.ShowQuery{
		Category: top,
		Period:   constant.PeriodWeek,
		Count:    constant.IndexTopCount,
	})
	if err != nil {
		return err
	}
	p.groups.Add(&result.Group{
		Key:     KeyShowCarousel,
		Title:   "本周" + top + "节目TOP10",
		Kind:    result.TopIndex,
		Records: format.Shows(shows, format.Spotlight),
	})

	showCat, err := p.catalog.PickRandom(constant.KindShow, p.rng)
	if err != nil {
		return err
	}
	shows, err = p.shows(source.ShowQuery{
		Category: showCat.Label,
		Period:   constant.PeriodToday,
		Count:    constant.SectionCount,
	})
	if err != nil {
		return err
	}
	p.groups.Add(&result.Group{
		Key:     KeyShowSection,
		Title:   "今日" + showCat.Label + "节目推荐",
		Kind:    result.RandomSection,
		Records: format.Shows(shows, format.Detailed),
	})

	videoCat, err := p.catalog.PickRandom(constant.KindVideo, p.rng)
	if err != nil {
		return err
	}
	videos, err := p.videos(source.VideoQuery{
		Category: videoCat.Label,
		Period:   constant.PeriodToday,
		OrderBy:  constant.DefaultOrderBy,
		Count:    constant.SectionCount,
	})
	if err != nil {
		return err
	}
	p.groups.Add(&result.Group{
		Key:     KeyVideoSection,
		Title:   "今日" + videoCat.Label + "视频推荐",
		Kind:    result.RandomSection,
		Records: format.Videos(videos, format.Detailed),
	})

	return nil
}

// browse lists a department with API defaults, highlighting the leading items.
func (p *pipeline) browse(dept catalog.Department) error {
	label := p.label(dept)

	if dept.Kind == constant.KindVideo {
		videos, err := p.videos(source.VideoQuery{
			Category: label,
			Period:   constant.PeriodToday,
			OrderBy:  constant.DefaultOrderBy,
			Count:    constant.DefaultCount,
		})
		if err != nil {
			return err
		}

		top, rest := format.Rank(videos, format.TopN)
		p.groups.Add(&result.Group{Key: KeyVideoCarousel, Title: titleBrowseTop, Kind: result.BrowseTop, Records: format.Videos(top, format.Compact)})
		p.groups.Add(&result.Group{Key: KeyVideoGrid, Kind: result.BrowseRest, Records: format.Videos(rest, format.Compact)})
		return nil
	}

	shows, err := p.shows(source.ShowQuery{
		Category: showCategory(label),
		Period:   constant.PeriodToday,
		Count:    constant.DefaultCount,
	})
	if err != nil {
		return err
	}

	top, rest := format.Rank(shows, format.TopN)
	p.groups.Add(&result.Group{Key: KeyShowCarousel, Title: titleBrowseTop, Kind: result.BrowseTop, Records: format.Shows(top, format.Compact)})
	p.groups.Add(&result.Group{Key: KeyShowGrid, Kind: result.BrowseRest, Records: format.Shows(rest, format.Compact)})
	return nil
}

// search runs a keyword search, scoped to the department's category when one is set.
func (p *pipeline) search(dept catalog.Department) error {
	if dept.IsRoot() || dept.Kind == constant.KindVideo {
		return p.searchVideos(p.label(dept))
	}

	shows, err := p.shows(source.ShowQuery{
		Category: showCategory(p.label(dept)),
		Keyword:  p.req.Query,
		Period:   constant.PeriodHistory,
		Count:    p.req.Settings.ResultCount,
	})
	if err != nil {
		return err
	}

	p.groups.Add(&result.Group{
		Key:     KeyShowResults,
		Title:   titleResults,
		Icon:    icon.Search,
		Kind:    result.KeywordSearch,
		Records: format.Shows(shows, format.Searched),
	})
	return nil
}

func (p *pipeline) searchVideos(category string) error {
	videos, err := p.videos(source.VideoQuery{
		Category: category,
		Keyword:  p.req.Query,
		Period:   constant.PeriodHistory,
		OrderBy:  p.req.Settings.OrderBy,
		Count:    p.req.Settings.ResultCount,
	})
	if err != nil {
		return err
	}

	p.groups.Add(&result.Group{
		Key:     KeyVideoResults,
		Title:   titleResults,
		Icon:    icon.Search,
		Kind:    result.KeywordSearch,
		Records: format.Videos(videos, format.Searched),
	})
	return nil
}

// aggregated serves aggregating callers. A query bypasses the tags entirely.
func (p *pipeline) aggregated() error {
	if p.req.Query != "" {
		return p.searchVideos("")
	}

	resolved, err := p.mapper.Resolve(p.req.Keywords)
	if err != nil {
		return err
	}

	target, ok := resolved.Get()
	if !ok {
		log.WithFields(map[string]any{"keywords": p.req.Keywords}).Info("unsupported aggregation keywords")
		return nil
	}

	if target.Kind == constant.KindShow {
		shows, err := p.shows(source.ShowQuery{
			Category: target.Category,
			Period:   constant.PeriodToday,
			Count:    constant.DefaultCount,
		})
		if err != nil {
			return err
		}
		p.groups.Add(&result.Group{
			Key:     KeyAggShows,
			Title:   "今日" + target.Category + "节目推荐",
			Icon:    icon.Feed,
			Kind:    result.AggregatedFeed,
			Records: format.Shows(shows, format.Detailed),
		})
		return nil
	}

	videos, err := p.videos(source.VideoQuery{
		Category: target.Category,
		Period:   constant.PeriodToday,
		OrderBy:  constant.DefaultOrderBy,
		Count:    constant.DefaultCount,
	})
	if err != nil {
		return err
	}
	p.groups.Add(&result.Group{
		Key:     KeyAggVideos,
		Title:   "今日" + target.Category + "视频推荐",
		Icon:    icon.Feed,
		Kind:    result.AggregatedFeed,
		Records: format.Videos(videos, format.Detailed),
	})
	return nil
}

// showCategory falls back to the default show category, shows always need one.
func showCategory(label string) string {
	if label == "" {
		return constant.DefaultShowCategory
	}
	return label
}
