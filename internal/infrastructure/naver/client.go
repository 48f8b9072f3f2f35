// Package naver adapts the Naver local search API to place search results.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// DefaultSearchURL is the local search endpoint.
const DefaultSearchURL = "https://openapi.naver.com/v1/search/local.json"

// Sort orders supported by the provider.
const (
	SortRandom  = "random"
	SortComment = "comment"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-zA-Z0-9가-힣]`)
	markupTags   = regexp.MustCompile(`</?b>`)
)

// Config configures a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	SearchURL    string
	HTTPClient   *http.Client
}

// Client calls the provider once per Search. It never retries.
type Client struct {
	clientID     string
	clientSecret string
	searchURL    string
	httpClient   *http.Client
}

// NewClient builds a Client. Missing credentials are reported on Search, not here.
func NewClient(cfg Config) *Client {
	searchURL := strings.TrimSpace(cfg.SearchURL)
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		clientID:     strings.TrimSpace(cfg.ClientID),
		clientSecret: strings.TrimSpace(cfg.ClientSecret),
		searchURL:    searchURL,
		httpClient:   httpClient,
	}
}

// SearchRequest maps one-to-one onto the provider's query parameters.
type SearchRequest struct {
	Query   string
	Display int
	Start   int
	Sort    string
}

// SearchResult is a transformed provider page.
type SearchResult struct {
	Places  []domain.SearchPlace
	Total   int
	HasMore bool
}

type searchResponse struct {
	Total int             `json:"total"`
	Items json.RawMessage `json:"items"`
}

type item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Telephone   string `json:"telephone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
}

// Search performs a single provider request.
func (c *Client) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return SearchResult{}, domain.NewError(http.StatusInternalServerError, domain.CodeNaverConfigMissing, "네이버 API 설정이 누락되었습니다.", nil)
	}

	sort := req.Sort
	if sort != SortComment {
		sort = SortRandom
	}
	params := url.Values{}
	params.Set("query", strings.TrimSpace(req.Query))
	params.Set("display", strconv.Itoa(req.Display))
	params.Set("start", strconv.Itoa(req.Start))
	params.Set("sort", sort)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return SearchResult{}, searchError(err)
	}
	httpReq.Header.Set("X-Naver-Client-Id", c.clientID)
	httpReq.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return SearchResult{}, searchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return SearchResult{}, domain.NewError(http.StatusInternalServerError, domain.CodeNaverAPIError, "네이버 검색 API 호출에 실패했습니다.",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return SearchResult{}, searchError(err)
	}

	var items []item
	raw := strings.TrimSpace(string(payload.Items))
	if !strings.HasPrefix(raw, "[") {
		return SearchResult{}, domain.NewError(http.StatusInternalServerError, domain.CodeNaverInvalidResponse, "네이버 API 응답 형식이 올바르지 않습니다.", nil)
	}
	if err := json.Unmarshal(payload.Items, &items); err != nil {
		return SearchResult{}, domain.NewError(http.StatusInternalServerError, domain.CodeNaverInvalidResponse, "네이버 API 응답 형식이 올바르지 않습니다.", err)
	}

	places := make([]domain.SearchPlace, 0, len(items))
	for i, it := range items {
		places = append(places, transform(it, i))
	}

	return SearchResult{
		Places:  places,
		Total:   payload.Total,
		HasMore: len(places) == req.Display,
	}, nil
}

// SearchPlaces adapts Search to application.SearchProvider. Page maps to start and limit to display.
func (c *Client) SearchPlaces(ctx context.Context, query string, paging application.Paging) (*domain.SearchPage, error) {
	result, err := c.Search(ctx, SearchRequest{
		Query:   query,
		Display: paging.Limit,
		Start:   paging.Page,
		Sort:    SortRandom,
	})
	if err != nil {
		return nil, err
	}
	return &domain.SearchPage{
		Places:  result.Places,
		Total:   result.Total,
		HasMore: result.HasMore,
		Source:  domain.SourceNaver,
	}, nil
}

// Provider returns c as an application.SearchProvider.
func (c *Client) Provider() application.SearchProvider {
	return providerFunc(c.SearchPlaces)
}

type providerFunc func(ctx context.Context, query string, paging application.Paging) (*domain.SearchPage, error)

func (f providerFunc) Search(ctx context.Context, query string, paging application.Paging) (*domain.SearchPage, error) {
	return f(ctx, query, paging)
}

func transform(it item, index int) domain.SearchPlace {
	address := it.RoadAddress
	if address == "" {
		address = it.Address
	}
	return domain.SearchPlace{
		Place: domain.Place{
			ID:        PlaceID(it.Title, it.MapX, it.MapY, index),
			Name:      markupTags.ReplaceAllString(it.Title, ""),
			Address:   address,
			Category:  it.Category,
			Latitude:  coordinate(it.MapY),
			Longitude: coordinate(it.MapX),
		},
		Source:      domain.SourceNaver,
		Description: it.Description,
		Telephone:   it.Telephone,
		Link:        it.Link,
	}
}

// PlaceID synthesizes a result identifier. The index keeps duplicate title+coordinate hits apart.
func PlaceID(title, mapx, mapy string, index int) string {
	return fmt.Sprintf("naver_%s_%s_%s_%d", nonSlugChars.ReplaceAllString(title, "_"), mapx, mapy, index)
}

// coordinate は 10^6 倍された整数文字列を度に変換する。
func coordinate(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v / 1e6
}

func searchError(err error) error {
	return domain.NewError(http.StatusInternalServerError, domain.CodeNaverSearchError, "장소 검색 중 오류가 발생했습니다.", err)
}
