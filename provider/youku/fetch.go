package youku

import (
	"context"
	"net/url"
	"strconv"

	"github.com/samber/lo"
	"github.com/vscope-cli/vscope/internal/cache"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/source"
)

// FetchVideos lists videos of a category, or searches them when a keyword is set.
func (c *Client) FetchVideos(ctx context.Context, q source.VideoQuery) ([]source.Video, error) {
	op := "videos/by_category"
	params := url.Values{}
	if q.Keyword != "" {
		op = "searches/video/by_keyword"
		params.Set("keyword", q.Keyword)
	}
	setNonEmpty(params, "category", q.Category)
	setNonEmpty(params, "period", q.Period)
	setNonEmpty(params, "orderby", q.OrderBy)
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}

	var list videoList
	if err := c.get(ctx, op, params, &list); err != nil {
		return nil, err
	}

	return lo.Map(list.Videos, func(v videoDTO, _ int) source.Video { return v.toVideo() }), nil
}

// FetchShows lists shows of a category, or searches them when a keyword is set.
func (c *Client) FetchShows(ctx context.Context, q source.ShowQuery) ([]source.Show, error) {
	op := "shows/by_category"
	params := url.Values{}
	if q.Keyword != "" {
		op = "searches/show/by_keyword"
		params.Set("keyword", q.Keyword)
	}
	setNonEmpty(params, "category", q.Category)
	setNonEmpty(params, "period", q.Period)
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}

	var list showList
	if err := c.get(ctx, op, params, &list); err != nil {
		return nil, err
	}

	return lo.Map(list.Shows, func(s showDTO, _ int) source.Show { return s.toShow() }), nil
}

// FetchVideoDetail returns one video, served from the detail cache when enabled.
func (c *Client) FetchVideoDetail(ctx context.Context, id string) (*source.VideoDetail, error) {
	cacheKey := cache.Key(Name, "video", id)
	if c.videoDetails != nil {
		if cached, ok := c.videoDetails.Get(cacheKey).Get(); ok {
			return cached, nil
		}
	}

	var dto videoDetailDTO
	if err := c.get(ctx, "videos/show", url.Values{"video_id": {id}}, &dto); err != nil {
		return nil, err
	}

	detail := dto.toDetail()
	if c.videoDetails != nil {
		if err := c.videoDetails.Set(cacheKey, detail); err != nil {
			log.Warnf("caching video %s: %v", id, err)
		}
	}
	return detail, nil
}

// FetchShowDetail returns one show, served from the detail cache when enabled.
func (c *Client) FetchShowDetail(ctx context.Context, id string) (*source.ShowDetail, error) {
	cacheKey := cache.Key(Name, "show", id)
	if c.showDetails != nil {
		if cached, ok := c.showDetails.Get(cacheKey).Get(); ok {
			return cached, nil
		}
	}

	var dto showDetailDTO
	if err := c.get(ctx, "shows/show", url.Values{"show_id": {id}}, &dto); err != nil {
		return nil, err
	}

	detail := dto.toDetail()
	if c.showDetails != nil {
		if err := c.showDetails.Set(cacheKey, detail); err != nil {
			log.Warnf("caching show %s: %v", id, err)
		}
	}
	return detail, nil
}

// PruneDetails drops expired detail cache entries and returns how many were removed.
func (c *Client) PruneDetails() (int, error) {
	if c.videoDetails == nil {
		return 0, nil
	}

	videos, err := c.videoDetails.Prune()
	if err != nil {
		return videos, err
	}
	shows, err := c.showDetails.Prune()
	return videos + shows, err
}
