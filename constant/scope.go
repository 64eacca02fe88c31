package constant

// Content kinds understood by the catalog and the content API.
const (
	KindVideo = "video"
	KindShow  = "show"
)

// Periods accepted by the content API.
const (
	PeriodToday   = "today"
	PeriodWeek    = "week"
	PeriodHistory = "history"
)

// IndexTopCategories is the selectable list behind the scope.index_top setting.
var IndexTopCategories = []string{"综艺", "电视剧", "电影", "动漫", "体育"}

// OrderByOptions is the selectable list behind the scope.order_by setting.
var OrderByOptions = []string{"relevance", "published", "view-count"}

const (
	// DefaultShowCategory is used whenever a show request carries no resolvable category.
	DefaultShowCategory = "综艺"

	// DefaultOrderBy and DefaultCount are the API defaults used by plain browse requests.
	DefaultOrderBy = "relevance"
	DefaultCount   = 50

	// IndexTopCount is the size of the weekly top section on the index view.
	IndexTopCount = 10

	// SectionCount is the size of each randomized "today" section on the index view.
	SectionCount = 24

	// CarouselSize is how many leading items of a browse list are highlighted.
	CarouselSize = 10
)
