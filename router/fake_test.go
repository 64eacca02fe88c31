package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/vscope-cli/vscope/source"
)

// call is one recorded upstream fetch.
type call struct {
	Kind     string
	Category string
	Keyword  string
	Period   string
	OrderBy  string
	Count    int
}

// fakeClient records every fetch and answers with generated items.
type fakeClient struct {
	mu    sync.Mutex
	calls []call

	// items is the length of each returned list.
	items int
	// fail makes the n-th fetch (1-based) fail.
	fail int
	// block makes fetches wait for ctx to be done; started is signalled first.
	block   bool
	started chan struct{}
}

func (f *fakeClient) record(c call) (n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return len(f.calls)
}

func (f *fakeClient) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func (f *fakeClient) wait(ctx context.Context, n int) error {
	if f.fail == n {
		return &source.UpstreamError{Op: "fake", Status: 500}
	}
	if f.block {
		if f.started != nil {
			f.started <- struct{}{}
		}
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) FetchVideos(ctx context.Context, q source.VideoQuery) ([]source.Video, error) {
	n := f.record(call{"video", q.Category, q.Keyword, q.Period, q.OrderBy, q.Count})
	if err := f.wait(ctx, n); err != nil {
		return nil, err
	}

	videos := make([]source.Video, f.items)
	for i := range videos {
		videos[i] = source.Video{ID: fmt.Sprintf("v%d", i), Title: fmt.Sprintf("video %d", i), ViewCount: "12345", UpCount: "1", DownCount: "2"}
	}
	return videos, nil
}

func (f *fakeClient) FetchShows(ctx context.Context, q source.ShowQuery) ([]source.Show, error) {
	n := f.record(call{"show", q.Category, q.Keyword, q.Period, "", q.Count})
	if err := f.wait(ctx, n); err != nil {
		return nil, err
	}

	shows := make([]source.Show, f.items)
	for i := range shows {
		shows[i] = source.Show{ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("show %d", i), ViewCount: "1234", Score: "9.0", EpisodeUpdated: "3"}
	}
	return shows, nil
}

func (f *fakeClient) FetchVideoDetail(context.Context, string) (*source.VideoDetail, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeClient) FetchShowDetail(context.Context, string) (*source.ShowDetail, error) {
	return nil, fmt.Errorf("not implemented")
}
