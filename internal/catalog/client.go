package catalog

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

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"videogames/backend/internal/apperror"
)

const (
	DefaultBaseURL = "https://api.rawg.io/api"

	// Page sizes requested from the catalog for the full and per-genre listings.
	ListPageSize  = 10000
	GenrePageSize = 1000
)

// StatusError is returned when the catalog answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s responded %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return apperror.ErrUpstream
}

// IsStatusError reports whether err came from a non-2xx catalog response,
// as opposed to a transport or decoding failure.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}

// Genre is the subset of a catalog genre this service stores.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type genreList struct {
	Count   int     `json:"count"`
	Results []Genre `json:"results"`
}

type gameList struct {
	Results []json.RawMessage `json:"results"`
}

// Client talks to the remote videogame catalog. Bodies are returned verbatim.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	log     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(baseURL, apiKey string, log *zap.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.Named("catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListGames returns the catalog's full game listing.
func (c *Client) ListGames(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/games", url.Values{"page_size": {strconv.Itoa(ListPageSize)}})
}

// SearchGames runs a case-insensitive name search.
func (c *Client) SearchGames(ctx context.Context, name string) (json.RawMessage, error) {
	return c.get(ctx, "/games", url.Values{"search": {strings.ToLower(name)}})
}

// GetGame looks up a single catalog game by id or slug.
func (c *Client) GetGame(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/games/"+url.PathEscape(id), nil)
}

// GamesByGenre lists catalog games filtered by genre. found is false when the
// catalog returned no results for it.
func (c *Client) GamesByGenre(ctx context.Context, genre string) (body json.RawMessage, found bool, err error) {
	body, err = c.get(ctx, "/games", url.Values{
		"genres":    {genre},
		"page_size": {strconv.Itoa(GenrePageSize)},
	})
	if err != nil {
		return nil, false, err
	}

	var list gameList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, false, fmt.Errorf("decoding catalog games: %w", err)
	}
	return body, len(list.Results) > 0, nil
}

// ListGenres returns every genre the catalog knows about.
func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	body, err := c.get(ctx, "/genres", nil)
	if err != nil {
		return nil, err
	}

	var list genreList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decoding catalog genres: %w", err)
	}
	if list.Results == nil {
		return nil, errors.New("catalog genres response has no results")
	}
	return list.Results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", c.apiKey)
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log := c.log.With(zap.String("endpoint", path))
	log.Debug("Requesting catalog")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting catalog %s: %w", path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("Catalog responded with non-OK status", zap.Int("status", resp.StatusCode))
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("catalog %s returned invalid JSON", path)
	}
	return body, nil
}
