package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/galleria-labs/galleria-cli/internal/core/domain"
	"github.com/galleria-labs/galleria-cli/internal/core/ports/driven"
	"github.com/galleria-labs/galleria-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// artworkFields limits the response payload to the fields the
	// domain model carries.
	artworkFields = "id,title,place_of_origin,artist_display,date_start,date_end"

	// userAgent identifies the client to the catalogue API.
	userAgent = "galleria-cli"
)

// Ensure Client implements the interface.
var _ driven.ArtworkSource = (*Client)(nil)

// Config holds the catalogue client configuration.
type Config struct {
	// BaseURL is the API root, e.g. https://api.artic.edu/api/v1.
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// RequestsPerSecond caps outbound fetches. Zero disables the cap.
	RequestsPerSecond float64
}

// Client fetches artwork pages from the catalogue API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a catalogue client from the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		// Burst of 1 keeps bulk walks strictly paced.
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// pageEnvelope is the wire shape of a catalogue page response.
type pageEnvelope struct {
	Pagination struct {
		Total       int `json:"total"`
		Limit       int `json:"limit"`
		Offset      int `json:"offset"`
		TotalPages  int `json:"total_pages"`
		CurrentPage int `json:"current_page"`
	} `json:"pagination"`
	Data []struct {
		ID            int    `json:"id"`
		Title         string `json:"title"`
		PlaceOfOrigin string `json:"place_of_origin"`
		ArtistDisplay string `json:"artist_display"`
		DateStart     int    `json:"date_start"`
		DateEnd       int    `json:"date_end"`
	} `json:"data"`
}

// FetchPage retrieves one page of the catalogue. One outbound request
// per call, no retries.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*domain.Page, *domain.PaginationMeta, error) {
	if page < 1 {
		return nil, nil, domain.ErrInvalidPage
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, &domain.NetworkError{Page: page, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	reqURL, err := c.pageURL(page, limit)
	if err != nil {
		return nil, nil, &domain.NetworkError{Page: page, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, &domain.NetworkError{Page: page, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug("fetching catalogue page %d (limit %d)", page, limit)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &domain.NetworkError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for the error message, then drop it.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, &domain.NetworkError{
			Page: page,
			Err: &APIError{
				StatusCode: resp.StatusCode,
				Message:    string(body),
				URL:        reqURL,
			},
		}
	}

	var envelope pageEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, nil, &domain.NetworkError{Page: page, Err: fmt.Errorf("decode response: %w", err)}
	}

	result := &domain.Page{
		Number:   page,
		Limit:    limit,
		Artworks: make([]domain.Artwork, 0, len(envelope.Data)),
	}
	for _, a := range envelope.Data {
		result.Artworks = append(result.Artworks, domain.Artwork{
			ID:            a.ID,
			Title:         a.Title,
			PlaceOfOrigin: a.PlaceOfOrigin,
			ArtistDisplay: a.ArtistDisplay,
			DateStart:     a.DateStart,
			DateEnd:       a.DateEnd,
		})
	}

	meta := &domain.PaginationMeta{
		Total:       envelope.Pagination.Total,
		Limit:       envelope.Pagination.Limit,
		Offset:      envelope.Pagination.Offset,
		TotalPages:  envelope.Pagination.TotalPages,
		CurrentPage: envelope.Pagination.CurrentPage,
	}
	// Some deployments omit derived fields; recompute from what is present.
	if meta.TotalPages == 0 || meta.CurrentPage == 0 {
		*meta = domain.NewPaginationMeta(meta.Total, limit, page)
	}

	return result, meta, nil
}

// pageURL builds the request URL for a page fetch.
func (c *Client) pageURL(page, limit int) (string, error) {
	u, err := url.Parse(c.baseURL + "/artworks")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", artworkFields)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
