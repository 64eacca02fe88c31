package aggregate

import (
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/constant"
)

// rule maps tags to categories per kind. With two kinds the kind is drawn first,
// show on 0. A nil category list draws from the whole catalog of the kind.
type rule struct {
	tags  []string
	kinds []string
	video []string
	show  []string
}

var (
	videoOnly = []string{constant.KindVideo}
	anyKind   = []string{constant.KindShow, constant.KindVideo}
)

// First match wins.
var rules = []rule{
	{tags: []string{"videos", "video"}, kinds: anyKind},
	{tags: []string{"music"}, kinds: videoOnly, video: []string{"音乐"}},
	{tags: []string{"news"}, kinds: videoOnly, video: []string{"资讯", "娱乐", "体育资讯", "游戏资讯"}},
	{tags: []string{"gaming"}, kinds: videoOnly, video: []string{"游戏"}},
	{tags: []string{"kids"}, kinds: videoOnly, video: []string{"动漫", "亲子"}},
	{tags: []string{"educational"}, kinds: anyKind, video: []string{"教育"}, show: []string{"教育"}},
	{tags: []string{"finance"}, kinds: videoOnly, video: []string{"财经资讯"}},
	{tags: []string{"humor"}, kinds: videoOnly, video: []string{"搞笑"}},
	{tags: []string{"lifestyle"}, kinds: videoOnly, video: []string{"生活"}},
	{tags: []string{"movies"}, kinds: anyKind, video: []string{"电影", "微电影"}, show: []string{"电影"}},
	{tags: []string{"science"}, kinds: videoOnly, video: []string{"科技"}},
	{tags: []string{"shopping"}, kinds: videoOnly, video: []string{"时尚", "广告"}},
	{tags: []string{"sports"}, kinds: anyKind, video: []string{"体育"}, show: []string{"体育"}},
	{tags: []string{"travel"}, kinds: videoOnly, video: []string{"旅游"}},
	{tags: []string{"tv"}, kinds: anyKind, video: tvCategories, show: tvCategories},
	{tags: []string{"comics"}, kinds: videoOnly, video: []string{"动漫"}},
}

var tvCategories = []string{"电视剧", "网剧", "综艺", "纪录片"}

func (r rule) resolve(c *catalog.Catalog, rng catalog.Rand) (Target, error) {
	kind := pick(r.kinds, rng)

	categories := r.video
	if kind == constant.KindShow {
		categories = r.show
	}

	if categories == nil {
		cat, err := c.PickRandom(kind, rng)
		if err != nil {
			return Target{}, err
		}
		return Target{Kind: kind, Category: cat.Label}, nil
	}

	return Target{Kind: kind, Category: pick(categories, rng)}, nil
}

// pick draws only when there is a choice to make.
func pick(options []string, rng catalog.Rand) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[rng.IntN(len(options))]
}
