package result

import (
	"fmt"
	"strings"
)

// Kind is the closed set of result group kinds.
type Kind int

const (
	// TopIndex is the weekly top list of the configured default show category.
	TopIndex Kind = iota + 1
	// RandomSection is a supplementary index section of a random category.
	RandomSection
	// BrowseTop holds the first items of a category browse.
	BrowseTop
	// BrowseRest holds what follows BrowseTop.
	BrowseRest
	// KeywordSearch holds keyword search results.
	KeywordSearch
	// AggregatedFeed is the themed feed served to aggregating callers.
	AggregatedFeed
)

var kindNames = map[Kind]string{
	TopIndex:       "top-index",
	RandomSection:  "random-section",
	BrowseTop:      "browse-top",
	BrowseRest:     "browse-rest",
	KeywordSearch:  "keyword-search",
	AggregatedFeed: "aggregated-feed",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{TopIndex, RandomSection, BrowseTop, BrowseRest, KeywordSearch, AggregatedFeed}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown group kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown group kind %q", text)
}

// Layout is how a group arranges its cards.
type Layout string

const (
	Carousel Layout = "carousel"
	Grid     Layout = "grid"
)

// CardSize is the relative size of a card.
type CardSize string

const (
	Small  CardSize = "small"
	Medium CardSize = "medium"
)

// CardLayout places the card art relative to its text.
type CardLayout string

const (
	Vertical   CardLayout = "vertical"
	Horizontal CardLayout = "horizontal"
)

// Hints tell a renderer how a group wants to be presented.
type Hints struct {
	Layout     Layout     `json:"layout"`
	CardLayout CardLayout `json:"card_layout,omitempty"`
	CardSize   CardSize   `json:"card_size"`
	// Overlay draws the title over the art.
	Overlay bool `json:"overlay,omitempty"`
	// AspectRatio of the art, zero when the art keeps its own.
	AspectRatio float64 `json:"aspect_ratio,omitempty"`
}

var (
	carouselHints = Hints{Layout: Carousel, CardSize: Medium, Overlay: true, AspectRatio: 0.98}
	gridHints     = Hints{Layout: Grid, CardLayout: Vertical, CardSize: Small}
)

// Hints returns the rendering hints of k.
func (k Kind) Hints() Hints {
	switch k {
	case TopIndex, BrowseTop:
		return carouselHints
	case RandomSection, BrowseRest:
		return gridHints
	case KeywordSearch:
		return Hints{Layout: Grid, CardLayout: Horizontal, CardSize: Small}
	case AggregatedFeed:
		return Hints{Layout: Grid, CardLayout: Vertical, CardSize: Medium, AspectRatio: 1.5}
	default:
		return Hints{}
	}
}
