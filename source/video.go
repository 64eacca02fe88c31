package source

// Video is a video card as returned by list and search calls.
// Count fields are kept as the decimal strings the API sends.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	ViewCount   string `json:"view_count"`
	UpCount     string `json:"up_count"`
	DownCount   string `json:"down_count"`
	Published   string `json:"published"`
}

func (v *Video) String() string {
	return v.Title
}

// VideoDetail is the full record of a single video.
type VideoDetail struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Link          string  `json:"link"`
	Thumbnail     string  `json:"thumbnail"`
	BigThumbnail  string  `json:"bigThumbnail"`
	Duration      float64 `json:"duration"`
	Category      string  `json:"category"`
	Published     string  `json:"published"`
	Description   string  `json:"description"`
	Player        string  `json:"player"`
	Tags          string  `json:"tags"`
	ViewCount     int64   `json:"view_count"`
	FavoriteCount int64   `json:"favorite_count"`
	CommentCount  int64   `json:"comment_count"`
	UpCount       int64   `json:"up_count"`
	DownCount     int64   `json:"down_count"`
}

// Screenshot returns the best available still image.
func (d *VideoDetail) Screenshot() string {
	if d.BigThumbnail != "" {
		return d.BigThumbnail
	}
	return d.Thumbnail
}
