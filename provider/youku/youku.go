// Package youku implements source.Client over the Youku open API v2.
package youku

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/auth"
	"github.com/vscope-cli/vscope/constant"
	"github.com/vscope-cli/vscope/internal/cache"
	"github.com/vscope-cli/vscope/key"
	"github.com/vscope-cli/vscope/log"
	"github.com/vscope-cli/vscope/network"
	"github.com/vscope-cli/vscope/source"
	"github.com/vscope-cli/vscope/util"
	"github.com/vscope-cli/vscope/where"
	"golang.org/x/time/rate"
)

// Name is the provider name of this client.
const Name = "youku"

// DefaultAPIRoot is the public API root.
const DefaultAPIRoot = "https://openapi.youku.com/v2"

// ErrNoClientID means neither the configuration nor the keyring holds a client id.
var ErrNoClientID = errors.New("youku client id is not set, run \"vscope auth login\" or set " + key.YoukuClientID)

// maxBody caps the size of a decoded response.
const maxBody = 8 << 20

// Options configure a Client.
type Options struct {
	APIRoot  string
	ClientID string
	// RateLimit is the sustained number of requests per second, unlimited when not positive.
	RateLimit float64
	// HTTP defaults to network.Client.
	HTTP *http.Client
	// DetailTTL enables the detail cache when positive.
	DetailTTL time.Duration
	// CacheDir holds the detail cache files, defaults to where.Details().
	CacheDir string
}

// Client talks to the Youku open API. It is safe for concurrent use.
type Client struct {
	apiRoot  string
	clientID string
	http     *http.Client
	limiter  *rate.Limiter

	videoDetails *cache.Cache[*source.VideoDetail]
	showDetails  *cache.Cache[*source.ShowDetail]
}

// New returns a client for opts.
func New(opts Options) *Client {
	c := &Client{
		apiRoot:  strings.TrimRight(opts.APIRoot, "/"),
		clientID: opts.ClientID,
		http:     opts.HTTP,
		limiter:  rate.NewLimiter(rate.Inf, 0),
	}

	if c.apiRoot == "" {
		c.apiRoot = DefaultAPIRoot
	}

	if c.http == nil {
		c.http = network.Client
	}

	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(1, int(opts.RateLimit)))
	}

	if opts.DetailTTL > 0 {
		dir := opts.CacheDir
		if dir == "" {
			dir = where.Details()
		}
		c.videoDetails = cache.New[*source.VideoDetail](filepath.Join(dir, "videos.json"), opts.DetailTTL)
		c.showDetails = cache.New[*source.ShowDetail](filepath.Join(dir, "shows.json"), opts.DetailTTL)
	}

	return c
}

// FromConfig builds a client from the active configuration.
// The client id falls back to the system keyring.
func FromConfig() (*Client, error) {
	id := viper.GetString(key.YoukuClientID)
	if id == "" {
		stored, err := auth.ClientID()
		if err != nil {
			if errors.Is(err, auth.ErrNotFound) {
				return nil, ErrNoClientID
			}
			return nil, fmt.Errorf("read client id from keyring: %w", err)
		}
		id = stored
	}

	return New(Options{
		APIRoot:   viper.GetString(key.YoukuAPIRoot),
		ClientID:  id,
		RateLimit: viper.GetFloat64(key.YoukuRateLimit),
		HTTP:      network.NewClient(time.Duration(viper.GetInt(key.YoukuTimeout)) * time.Second),
		DetailTTL: time.Duration(viper.GetInt(key.CacheDetailTTLHours)) * time.Hour,
	}), nil
}

func (c *Client) Name() string {
	return "Youku"
}

// get calls op, e.g. "videos/by_category", and decodes the response into target.
// Cancellation is returned as the bare context error.
func (c *Client) get(ctx context.Context, op string, params url.Values, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &source.UpstreamError{Op: op, Err: err}
	}

	params.Set("client_id", c.clientID)
	endpoint := fmt.Sprintf("%s/%s.json?%s", c.apiRoot, op, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &source.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	log.WithFields(map[string]any{"op": op, "params": redact(params)}).Debug("youku request")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &source.UpstreamError{Op: op, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &source.UpstreamError{Op: op, Status: resp.StatusCode, Err: err}
	}

	var payload errorPayload
	_ = json.Unmarshal(body, &payload)

	if resp.StatusCode != http.StatusOK || payload.Error != nil {
		upstream := &source.UpstreamError{Op: op, Status: resp.StatusCode}
		if payload.Error != nil {
			upstream.Code = int(payload.Error.Code)
			upstream.Message = payload.Error.Description
		}
		return upstream
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &source.UpstreamError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func redact(params url.Values) url.Values {
	clone := url.Values{}
	for k, v := range params {
		if k != "client_id" {
			clone[k] = v
		}
	}
	return clone
}

// setNonEmpty adds value unless it is empty, the API treats empty and absent differently.
func setNonEmpty(params url.Values, name, value string) {
	if value != "" {
		params.Set(name, value)
	}
}
