package public

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// NotifierConfig configures a Notifier.
type NotifierConfig struct {
	Logger             *log.Logger
	HTTPClient         *http.Client
	Endpoint           string
	DiscordDestination string
	SlackDestination   string
	Location           *time.Location
}

// Notifier posts review-received messages to the messenger gateway.
// Each destination gets a single attempt in the background; failures are only logged.
type Notifier struct {
	logger       *log.Logger
	httpClient   *http.Client
	endpoint     string
	destinations []string
	location     *time.Location
	wg           sync.WaitGroup
}

// NewNotifier returns nil when no endpoint or destination is configured.
func NewNotifier(cfg NotifierConfig) *Notifier {
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	destinations := make([]string, 0, 2)
	for _, dest := range []string{cfg.DiscordDestination, cfg.SlackDestination} {
		if dest = strings.TrimSpace(dest); dest != "" {
			destinations = append(destinations, dest)
		}
	}
	if endpoint == "" || len(destinations) == 0 {
		return nil
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 3 * time.Second}
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Notifier{
		logger:       cfg.Logger,
		httpClient:   httpClient,
		endpoint:     endpoint,
		destinations: destinations,
		location:     location,
	}
}

// NotifyReview implements application.ReviewNotifier.
func (n *Notifier) NotifyReview(_ context.Context, place *domain.Place, review *domain.Review) {
	message := buildReviewMessage(place, review, n.location)
	for _, dest := range n.destinations {
		n.wg.Add(1)
		go func(dest string) {
			defer n.wg.Done()
			// リクエストのコンテキストはレスポンス後にキャンセルされるため切り離す。
			ctx, cancel := context.WithTimeout(context.Background(), n.httpClient.Timeout+time.Second)
			defer cancel()
			if err := n.send(ctx, dest, review.ID, message); err != nil && n.logger != nil {
				n.logger.Printf("レビュー通知の送信に失敗 destination=%s: %v", dest, err)
			}
		}(dest)
	}
}

// Wait blocks until in-flight notifications finish.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func buildReviewMessage(place *domain.Place, review *domain.Review, location *time.Location) string {
	var builder strings.Builder
	builder.WriteString("새 리뷰가 등록되었습니다.\n")
	builder.WriteString(fmt.Sprintf("- 장소: %s (%s)\n", place.Name, place.Address))
	builder.WriteString(fmt.Sprintf("- 평점: %s\n", strings.Repeat("★", review.Rating)+strings.Repeat("☆", 5-review.Rating)))
	builder.WriteString(fmt.Sprintf("- 작성자: %s\n", review.AuthorName))
	builder.WriteString(fmt.Sprintf("- 작성일: %s\n", review.CreatedAt.In(location).Format("2006-01-02 15:04")))
	builder.WriteString(fmt.Sprintf("- 내용: %s\n", review.Content))
	return builder.String()
}

func (n *Notifier) send(ctx context.Context, destination, identifier, text string) error {
	body, err := json.Marshal(map[string]string{
		"userId":      identifier,
		"text":        text,
		"destination": destination,
	})
	if err != nil {
		return fmt.Errorf("payload の作成に失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}
