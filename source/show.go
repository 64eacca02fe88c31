package source

// Show is a series card as returned by list and search calls.
type Show struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Link           string `json:"link"`
	Thumbnail      string `json:"thumbnail"`
	EpisodeUpdated string `json:"episode_updated"`
	ViewCount      string `json:"view_count"`
	Score          string `json:"score"`
	Published      string `json:"published"`
}

func (s *Show) String() string {
	return s.Name
}

// ShowDetail is the full record of a single show. Fields noted as optional may be empty.
type ShowDetail struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Alias              string  `json:"alias"`
	Link               string  `json:"link"`
	PlayLink           string  `json:"play_link"`    // optional
	Poster             string  `json:"poster"`       // optional
	PosterLarge        string  `json:"poster_large"` // optional
	Thumbnail          string  `json:"thumbnail"`
	Genre              string  `json:"genre"`
	Area               string  `json:"area"`
	EpisodeCount       int     `json:"episode_count"`
	EpisodeUpdated     int     `json:"episode_updated"` // optional
	ViewCount          int64   `json:"view_count"`
	Score              float64 `json:"score"`
	Released           string  `json:"released"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Rank               int     `json:"rank"`
	ViewYesterdayCount int64   `json:"view_yesterday_count"`
	ViewWeekCount      int64   `json:"view_week_count"`
	CommentCount       int64   `json:"comment_count"`
	FavoriteCount      int64   `json:"favorite_count"`
	UpCount            int64   `json:"up_count"`
	DownCount          int64   `json:"down_count"`
}

// Cover returns the best available artwork, preferring posters over thumbnails.
func (d *ShowDetail) Cover() string {
	switch {
	case d.PosterLarge != "":
		return d.PosterLarge
	case d.Poster != "":
		return d.Poster
	default:
		return d.Thumbnail
	}
}

// Watch returns the link that starts playback.
func (d *ShowDetail) Watch() string {
	if d.PlayLink != "" {
		return d.PlayLink
	}
	return d.Link
}
