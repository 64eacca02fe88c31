// Package source defines the content models and the contract of a remote content API.
package source

import "context"

// VideoQuery selects videos by category, or searches them when Keyword is set.
type VideoQuery struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
	Period   string `json:"period"`
	OrderBy  string `json:"orderby"`
	Count    int    `json:"count"`
}

// ShowQuery selects shows by category, or searches them when Keyword is set.
type ShowQuery struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
	Period   string `json:"period"`
	Count    int    `json:"count"`
}

// Client is a remote content API.
//
// Every call blocks until the response is decoded or ctx is done; a cancelled
// ctx aborts the request in flight and the call returns ctx.Err().
type Client interface {
	// Name returns the human readable name of the API.
	Name() string

	// FetchVideos returns videos in the order the API ranked them.
	FetchVideos(ctx context.Context, q VideoQuery) ([]Video, error)

	// FetchShows returns shows in the order the API ranked them.
	FetchShows(ctx context.Context, q ShowQuery) ([]Show, error)

	// FetchVideoDetail returns the full record of one video.
	FetchVideoDetail(ctx context.Context, id string) (*VideoDetail, error)

	// FetchShowDetail returns the full record of one show.
	FetchShowDetail(ctx context.Context, id string) (*ShowDetail, error)
}
