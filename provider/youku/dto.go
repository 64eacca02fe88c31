package youku

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vscope-cli/vscope/source"
)

type errorPayload struct {
	Error *struct {
		Code        integer `json:"code"`
		Type        string  `json:"type"`
		Description string  `json:"description"`
	} `json:"error"`
}

// text accepts a JSON string or number and keeps its literal form.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", data)
	}
	*t = text(n.String())
	return nil
}

// integer accepts a JSON number or a numeric string; empty strings decode to zero.
type integer int64

func (i *integer) UnmarshalJSON(data []byte) error {
	var t text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}

	s := strings.TrimSpace(string(t))
	if s == "" {
		*i = 0
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = integer(n)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("want integer, got %s", data)
	}
	*i = integer(f)
	return nil
}

// decimal accepts a JSON number or a numeric string; empty strings decode to zero.
type decimal float64

func (d *decimal) UnmarshalJSON(data []byte) error {
	var t text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}

	s := strings.TrimSpace(string(t))
	if s == "" {
		*d = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("want decimal, got %s", data)
	}
	*d = decimal(f)
	return nil
}

type videoDTO struct {
	ID          text   `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	ViewCount   text   `json:"view_count"`
	UpCount     text   `json:"up_count"`
	DownCount   text   `json:"down_count"`
	Published   string `json:"published"`
}

func (v *videoDTO) toVideo() source.Video {
	return source.Video{
		ID:          string(v.ID),
		Title:       v.Title,
		Link:        v.Link,
		Thumbnail:   v.Thumbnail,
		Description: v.Description,
		ViewCount:   string(v.ViewCount),
		UpCount:     string(v.UpCount),
		DownCount:   string(v.DownCount),
		Published:   v.Published,
	}
}

type videoList struct {
	Total  integer    `json:"total"`
	Videos []videoDTO `json:"videos"`
}

type showDTO struct {
	ID             text   `json:"id"`
	Name           string `json:"name"`
	Link           string `json:"link"`
	Thumbnail      string `json:"thumbnail"`
	EpisodeUpdated text   `json:"episode_updated"`
	ViewCount      text   `json:"view_count"`
	Score          text   `json:"score"`
	Published      string `json:"published"`
}

func (s *showDTO) toShow() source.Show {
	return source.Show{
		ID:             string(s.ID),
		Name:           s.Name,
		Link:           s.Link,
		Thumbnail:      s.Thumbnail,
		EpisodeUpdated: string(s.EpisodeUpdated),
		ViewCount:      string(s.ViewCount),
		Score:          string(s.Score),
		Published:      s.Published,
	}
}

type showList struct {
	Total integer   `json:"total"`
	Shows []showDTO `json:"shows"`
}

type videoDetailDTO struct {
	ID            text    `json:"id"`
	Title         string  `json:"title"`
	Link          string  `json:"link"`
	Thumbnail     string  `json:"thumbnail"`
	BigThumbnail  string  `json:"bigThumbnail"`
	Duration      decimal `json:"duration"`
	Category      string  `json:"category"`
	Published     string  `json:"published"`
	Description   string  `json:"description"`
	Player        string  `json:"player"`
	Tags          string  `json:"tags"`
	ViewCount     integer `json:"view_count"`
	FavoriteCount integer `json:"favorite_count"`
	CommentCount  integer `json:"comment_count"`
	UpCount       integer `json:"up_count"`
	DownCount     integer `json:"down_count"`
}

func (v *videoDetailDTO) toDetail() *source.VideoDetail {
	return &source.VideoDetail{
		ID:            string(v.ID),
		Title:         v.Title,
		Link:          v.Link,
		Thumbnail:     v.Thumbnail,
		BigThumbnail:  v.BigThumbnail,
		Duration:      float64(v.Duration),
		Category:      v.Category,
		Published:     v.Published,
		Description:   v.Description,
		Player:        v.Player,
		Tags:          v.Tags,
		ViewCount:     int64(v.ViewCount),
		FavoriteCount: int64(v.FavoriteCount),
		CommentCount:  int64(v.CommentCount),
		UpCount:       int64(v.UpCount),
		DownCount:     int64(v.DownCount),
	}
}

type showDetailDTO struct {
	ID                 text    `json:"id"`
	Name               string  `json:"name"`
	Alias              string  `json:"alias"`
	Link               string  `json:"link"`
	PlayLink           string  `json:"play_link"`
	Poster             string  `json:"poster"`
	PosterLarge        string  `json:"poster_large"`
	Thumbnail          string  `json:"thumbnail"`
	Genre              string  `json:"genre"`
	Area               string  `json:"area"`
	EpisodeCount       integer `json:"episode_count"`
	EpisodeUpdated     integer `json:"episode_updated"`
	ViewCount          integer `json:"view_count"`
	Score              decimal `json:"score"`
	Released           string  `json:"released"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	Rank               integer `json:"rank"`
	ViewYesterdayCount integer `json:"view_yesterday_count"`
	ViewWeekCount      integer `json:"view_week_count"`
	CommentCount       integer `json:"comment_count"`
	FavoriteCount      integer `json:"favorite_count"`
	UpCount            integer `json:"up_count"`
	DownCount          integer `json:"down_count"`
}

func (s *showDetailDTO) toDetail() *source.ShowDetail {
	return &source.ShowDetail{
		ID:                 string(s.ID),
		Name:               s.Name,
		Alias:              s.Alias,
		Link:               s.Link,
		PlayLink:           s.PlayLink,
		Poster:             s.Poster,
		PosterLarge:        s.PosterLarge,
		Thumbnail:          s.Thumbnail,
		Genre:              s.Genre,
		Area:               s.Area,
		EpisodeCount:       int(s.EpisodeCount),
		EpisodeUpdated:     int(s.EpisodeUpdated),
		ViewCount:          int64(s.ViewCount),
		Score:              float64(s.Score),
		Released:           s.Released,
		Category:           s.Category,
		Description:        s.Description,
		Rank:               int(s.Rank),
		ViewYesterdayCount: int64(s.ViewYesterdayCount),
		ViewWeekCount:      int64(s.ViewWeekCount),
		CommentCount:       int64(s.CommentCount),
		FavoriteCount:      int64(s.FavoriteCount),
		UpCount:            int64(s.UpCount),
		DownCount:          int64(s.DownCount),
	}
}
