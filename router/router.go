// Package router decides which upstream fetches answer a request and how
// their results are grouped.
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vscope-cli/vscope/aggregate"
	"github.com/vscope-cli/vscope/catalog"
	"github.com/vscope-cli/vscope/config"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/result"
	"github.com/vscope-cli/vscope/source"
)

// Request is one content-discovery request.
type Request struct {
	// Query is the free-text search string, empty when browsing.
	Query string `json:"query"`
	// Department selects "", "video", "show", "video_<term>" or "show_<term>".
	Department string `json:"department"`
	// Keywords are the topical tags of an aggregating caller.
	Keywords []string `json:"keywords,omitempty"`
	// Aggregated marks requests from aggregating callers.
	Aggregated bool `json:"aggregated"`

	Settings config.Settings `json:"settings"`
}

// Reply is the outcome of a request. A cancelled request carries no groups.
type Reply struct {
	Groups    result.Set `json:"groups"`
	Cancelled bool       `json:"cancelled"`
}

// Router is safe for concurrent use when its Rand is.
type Router struct {
	catalog *catalog.Catalog
	index   *catalog.Index
	client  source.Client
	mapper  *aggregate.Mapper
	rng     catalog.Rand
}

// New returns a router fetching from client. rng drives every random pick.
func New(c *catalog.Catalog, client source.Client, rng catalog.Rand) *Router {
	return &Router{
		catalog: c,
		index:   c.Index(),
		client:  client,
		mapper:  aggregate.New(c, rng),
		rng:     rng,
	}
}

// Search runs req to completion. See Query for cancellation.
func (r *Router) Search(ctx context.Context, req Request) (*Reply, error) {
	return r.Query(ctx, req).Run()
}

// Query prepares req for a cancellable run.
func (r *Router) Query(ctx context.Context, req Request) *Query {
	ctx, cancel := context.WithCancel(ctx)
	return &Query{router: r, req: req, ctx: ctx, cancel: cancel}
}

// Query is a single run of a request.
type Query struct {
	router *Router
	req    Request
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// Cancel aborts the query. It may be called from any goroutine, before or during Run.
// An in-flight fetch is aborted and no further fetch is issued.
func (q *Query) Cancel() {
	q.cancel()
}

// Run executes the query once; later calls return an error.
// Cancellation is reported through Reply.Cancelled with a nil error.
func (q *Query) Run() (reply *Reply, err error) {
	err = errors.New("query already ran")
	q.once.Do(func() {
		defer q.cancel()
		reply, err = q.run()
	})
	return reply, err
}

func (q *Query) run() (*Reply, error) {
	logger := log.WithFields(map[string]any{
		"query":      q.req.Query,
		"department": q.req.Department,
		"aggregated": q.req.Aggregated,
	})

	p := &pipeline{Router: q.router, ctx: q.ctx, req: q.req, groups: result.Set{}}
	err := p.dispatch()

	if errors.Is(q.ctx.Err(), context.Canceled) {
		logger.Info("request cancelled")
		return &Reply{Cancelled: true}, nil
	}

	if err != nil {
		logger.WithError(err).Error("request failed")
		return nil, err
	}

	logger.Infof("request answered with %d groups", len(p.groups))
	return &Reply{Groups: p.groups}, nil
}

// pipeline is the state of one run.
type pipeline struct {
	*Router
	ctx    context.Context
	req    Request
	groups result.Set
}

func (p *pipeline) dispatch() error {
	switch {
	case p.req.Aggregated:
		return p.aggregated()
	case p.req.Query == "" && p.req.Department == "":
		return p.home()
	}

	dept, err := catalog.ParseDepartment(p.req.Department)
	if err != nil {
		return err
	}

	if p.req.Query == "" {
		return p.browse(dept)
	}
	return p.search(dept)
}

func (p *pipeline) videos(q source.VideoQuery) ([]source.Video, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"category": q.Category,
		"keyword":  q.Keyword,
		"period":   q.Period,
		"orderby":  q.OrderBy,
		"count":    q.Count,
	}).Debug("fetching videos")

	videos, err := p.client.FetchVideos(p.ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch videos: %w", err)
	}
	return videos, nil
}

func (p *pipeline) shows(q source.ShowQuery) ([]source.Show, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"category": q.Category,
		"keyword":  q.Keyword,
		"period":   q.Period,
		"count":    q.Count,
	}).Debug("fetching shows")

	shows, err := p.client.FetchShows(p.ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch shows: %w", err)
	}
	return shows, nil
}

// label resolves a department to its category label, empty when unknown.
func (p *pipeline) label(dept catalog.Department) string {
	label, _ := p.index.Label(dept.ID())
	return label
}
