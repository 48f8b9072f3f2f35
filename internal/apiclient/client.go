// Package apiclient is a typed client for the public place/review API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// 読み取り系のリトライ回数。書き込みはリトライしない。
const (
	searchRetries  = 2
	detailRetries  = 3
	nearbyRetries  = 1
	reviewsRetries = 1
)

// APIError is a failure envelope returned by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Config configures Client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
	// RetryDelay is the pause between attempts. Zero disables waiting.
	RetryDelay time.Duration
}

// Client calls the public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	retryDelay time.Duration
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
		retryDelay: cfg.RetryDelay,
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Nearby returns places within radius meters of (lat, lng). radius <= 0 uses the server default.
func (c *Client) Nearby(ctx context.Context, lat, lng, radius float64) ([]Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if radius > 0 {
		q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	}

	var out struct {
		Places []Place `json:"places"`
	}
	if err := c.getWithRetry(ctx, "/api/places/nearby?"+q.Encode(), nearbyRetries, &out); err != nil {
		return nil, err
	}
	return out.Places, nil
}

func (c *Client) Search(ctx context.Context, keyword string, page, limit int) (*SearchResult, error) {
	q := pagingQuery(page, limit)
	q.Set("q", keyword)

	var out SearchResult
	if err := c.getWithRetry(ctx, "/api/places/search?"+q.Encode(), searchRetries, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Detail fetches one place. PLACE_NOT_FOUND is returned without retrying.
func (c *Client) Detail(ctx context.Context, placeID string) (*PlaceDetail, error) {
	var out struct {
		Place PlaceDetail `json:"place"`
	}
	if err := c.getWithRetry(ctx, "/api/places/"+url.PathEscape(placeID), detailRetries, &out); err != nil {
		return nil, err
	}
	return &out.Place, nil
}

func (c *Client) Reviews(ctx context.Context, placeID string, page, limit int) (*ReviewPage, error) {
	path := "/api/places/" + url.PathEscape(placeID) + "/reviews"
	if q := pagingQuery(page, limit).Encode(); q != "" {
		path += "?" + q
	}

	var out ReviewPage
	if err := c.getWithRetry(ctx, path, reviewsRetries, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReview submits a review. It is attempted exactly once.
func (c *Client) CreateReview(ctx context.Context, placeID string, req CreateReviewRequest) (*CreatedReview, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var out struct {
		Review CreatedReview `json:"review"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/places/"+url.PathEscape(placeID)+"/reviews", body, &out); err != nil {
		return nil, err
	}
	return &out.Review, nil
}

func pagingQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// getWithRetry は初回に加えて最大 retries 回まで再試行する。4xx は再試行しない。
func (c *Client) getWithRetry(ctx context.Context, path string, retries int, out any) error {
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if c.logger != nil {
				c.logger.Printf("retry %d/%d GET %s: %v", attempt, retries, path, err)
			}
			if waitErr := c.wait(ctx); waitErr != nil {
				return err
			}
		}
		err = c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil || !retryable(err) {
			return err
		}
	}
	return err
}

func (c *Client) wait(ctx context.Context) error {
	if c.retryDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code != "PLACE_NOT_FOUND" && apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: resp.Status}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.OK || resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: resp.Status}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
