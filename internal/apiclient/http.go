package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/models"
)

// DefaultTimeout bounds each request made by an HTTPClient.
const DefaultTimeout = 10 * time.Second

// ErrRequestFailed wraps every transport, status and decoding failure.
var ErrRequestFailed = errors.New("apiclient: request failed")

// HTTPClient calls the REST API. It never retries.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// WithTimeout replaces DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithHTTPClient uses hc for transport. Its Timeout is kept as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// NewHTTPClient returns a client for the API rooted at baseURL that
// authenticates with token as a bearer credential.
func NewHTTPClient(baseURL, token string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches path and decodes the envelope. An envelope the server answered
// with a 4xx status is returned as is; a transport error, a 5xx status or an
// undecodable body is returned as an error alongside a failed Response.
func get[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) (Response[T], error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return failed[T](err.Error()), fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed[T](err.Error()), fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		text := fmt.Sprintf("unexpected response from %s: %s", path, resp.Status)
		return failed[T](text), fmt.Errorf("%w: GET %s: %s: %w", ErrRequestFailed, path, resp.Status, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		if out.Error == "" {
			out.Error = resp.Status
		}
		out.Success = false
		return out, fmt.Errorf("%w: GET %s: %s: %s", ErrRequestFailed, path, resp.Status, out.Error)
	}
	return out, nil
}

func feedQuery(f catalog.FeedFilter) url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("q", f.Query)
	set("category", f.Category)
	set("region", f.Region)
	set("urgency", f.Urgency)
	set("agency", f.Agency)
	set("dateFrom", f.DateFrom)
	set("dateTo", f.DateTo)
	return q
}

func marketplaceQuery(f catalog.MarketplaceFilter) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinScore > 0 {
		q.Set("minScore", strconv.FormatFloat(f.MinScore, 'f', -1, 64))
	}
	return q
}

func (c *HTTPClient) GetFeeds(ctx context.Context) (Response[[]models.RegulatoryFeed], error) {
	return get[[]models.RegulatoryFeed](ctx, c, "/api/feeds", nil)
}

func (c *HTTPClient) GetFeed(ctx context.Context, id string) (Response[models.RegulatoryFeed], error) {
	return get[models.RegulatoryFeed](ctx, c, "/api/feeds/"+url.PathEscape(id), nil)
}

func (c *HTTPClient) SearchFeeds(ctx context.Context, filter catalog.FeedFilter) (Response[[]models.RegulatoryFeed], error) {
	return get[[]models.RegulatoryFeed](ctx, c, "/api/feeds/search", feedQuery(filter))
}

func (c *HTTPClient) GetVendors(ctx context.Context) (Response[[]models.Vendor], error) {
	return get[[]models.Vendor](ctx, c, "/api/vendors", nil)
}

func (c *HTTPClient) GetVendor(ctx context.Context, id string) (Response[models.Vendor], error) {
	return get[models.Vendor](ctx, c, "/api/vendors/"+url.PathEscape(id), nil)
}

func (c *HTTPClient) SearchVendors(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Vendor], error) {
	return get[[]models.Vendor](ctx, c, "/api/vendors", marketplaceQuery(filter))
}

func (c *HTTPClient) GetConsultants(ctx context.Context) (Response[[]models.Consultant], error) {
	return get[[]models.Consultant](ctx, c, "/api/consultants", nil)
}

func (c *HTTPClient) GetConsultant(ctx context.Context, id string) (Response[models.Consultant], error) {
	return get[models.Consultant](ctx, c, "/api/consultants/"+url.PathEscape(id), nil)
}

func (c *HTTPClient) SearchConsultants(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.Consultant], error) {
	return get[[]models.Consultant](ctx, c, "/api/consultants", marketplaceQuery(filter))
}

func (c *HTTPClient) GetCROs(ctx context.Context) (Response[[]models.CRO], error) {
	return get[[]models.CRO](ctx, c, "/api/cros", nil)
}

func (c *HTTPClient) GetCRO(ctx context.Context, id string) (Response[models.CRO], error) {
	return get[models.CRO](ctx, c, "/api/cros/"+url.PathEscape(id), nil)
}

func (c *HTTPClient) SearchCROs(ctx context.Context, filter catalog.MarketplaceFilter) (Response[[]models.CRO], error) {
	return get[[]models.CRO](ctx, c, "/api/cros", marketplaceQuery(filter))
}

func (c *HTTPClient) GlobalSearch(ctx context.Context, query string) (Response[models.GlobalSearchResult], error) {
	return get[models.GlobalSearchResult](ctx, c, "/api/search", url.Values{"q": {query}})
}
