package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/result"
)

// Fetcher is the remote data source consumed by the repository.
// Every method reports failure through the Result; none of them panic or
// return partially decoded data.
type Fetcher interface {
	GetLaunches(ctx context.Context, page Page) result.Result[[]LaunchRecord]
	GetUpcomingLaunches(ctx context.Context, limit int) result.Result[[]LaunchRecord]
	GetPastLaunches(ctx context.Context, page Page) result.Result[[]LaunchRecord]
	GetLatestLaunch(ctx context.Context) result.Result[LaunchRecord]
	GetRockets(ctx context.Context) result.Result[[]RocketRecord]
	GetRocketByID(ctx context.Context, id string) result.Result[RocketRecord]
	GetCapsules(ctx context.Context, page Page) result.Result[[]CapsuleRecord]
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Page selects a window of a listing. The zero value means "use the default".
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultBaseURL   = "https://api.spacexdata.com/v4/"
	defaultUserAgent = "spacex-explorer/0.1"
	defaultTimeout   = 10 * time.Second

	defaultListLimit     = 20
	defaultUpcomingLimit = 10
)

// DefaultPage is used for general listings when the caller passes the zero Page.
var DefaultPage = Page{Limit: defaultListLimit, Offset: 0}

func (p Page) withDefaults(def Page) Page {
	if p.Limit <= 0 {
		p.Limit = def.Limit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Client talks to the SpaceX REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client rooted at baseURL (including the version path).
// A non-positive timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// GetLaunches retrieves the general launch listing.
func (c *Client) GetLaunches(ctx context.Context, page Page) result.Result[[]LaunchRecord] {
	page = page.withDefaults(DefaultPage)
	return getJSON[[]LaunchRecord](ctx, c, endpoint("launches", pageQuery(page)))
}

// GetUpcomingLaunches retrieves launches that have not flown yet.
func (c *Client) GetUpcomingLaunches(ctx context.Context, limit int) result.Result[[]LaunchRecord] {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	return getJSON[[]LaunchRecord](ctx, c, endpoint("launches/upcoming", values))
}

// GetPastLaunches retrieves launches that already flew.
func (c *Client) GetPastLaunches(ctx context.Context, page Page) result.Result[[]LaunchRecord] {
	page = page.withDefaults(DefaultPage)
	return getJSON[[]LaunchRecord](ctx, c, endpoint("launches/past", pageQuery(page)))
}

// GetLatestLaunch retrieves the most recent launch.
func (c *Client) GetLatestLaunch(ctx context.Context) result.Result[LaunchRecord] {
	return getJSON[LaunchRecord](ctx, c, endpoint("launches/latest", nil))
}

// GetRockets retrieves every rocket.
func (c *Client) GetRockets(ctx context.Context) result.Result[[]RocketRecord] {
	return getJSON[[]RocketRecord](ctx, c, endpoint("rockets", nil))
}

// GetRocketByID retrieves a single rocket.
func (c *Client) GetRocketByID(ctx context.Context, id string) result.Result[RocketRecord] {
	id = strings.TrimSpace(id)
	if id == "" {
		return result.Fail[RocketRecord](&Error{Kind: KindTransport, Op: "rockets/", Err: errors.New("rocket id required")})
	}
	// Dot segments would be removed by ResolveReference and hit another endpoint.
	if id == "." || id == ".." || strings.ContainsAny(id, "/\\") {
		return result.Fail[RocketRecord](&Error{Kind: KindTransport, Op: "rockets/", Err: fmt.Errorf("invalid rocket id %q", id)})
	}
	rel := endpoint("rockets/"+id, nil)
	rel.RawPath = "rockets/" + url.PathEscape(id)
	return getJSON[RocketRecord](ctx, c, rel)
}

// GetCapsules retrieves the capsule listing.
func (c *Client) GetCapsules(ctx context.Context, page Page) result.Result[[]CapsuleRecord] {
	page = page.withDefaults(DefaultPage)
	return getJSON[[]CapsuleRecord](ctx, c, endpoint("capsules", pageQuery(page)))
}

func pageQuery(page Page) url.Values {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(page.Limit))
	values.Set("offset", strconv.Itoa(page.Offset))
	return values
}

func endpoint(path string, query url.Values) *url.URL {
	rel := &url.URL{Path: path}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	return rel
}

func getJSON[T any](ctx context.Context, c *Client, rel *url.URL) result.Result[T] {
	if c == nil {
		return result.Fail[T](&Error{Kind: KindTransport, Op: rel.Path, Err: errors.New("client is nil")})
	}
	var payload T
	err := c.do(ctx, http.MethodGet, rel, &payload)
	return result.From(payload, err)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, dest any) error {
	path := rel.Path
	reqURL := c.baseURL.ResolveReference(rel)

	requestID := uuid.New().String()
	logger := log.With().
		Str("method", method).
		Str("path", path).
		Str("requestId", requestID).
		Logger()

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.Warn().Err(err).Dur("duration", duration).Msg("api request failed")
		return &Error{Kind: KindTransport, Op: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("api request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &Error{Kind: KindHTTPStatus, Op: path, Status: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &Error{Kind: KindDecode, Op: path, Err: err}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return &Error{Kind: KindDecode, Op: path, Err: err}
	}
	return nil
}

// parseBaseURL keeps the version path and guarantees a trailing slash so
// relative endpoint paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
