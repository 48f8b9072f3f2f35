package public

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sngm3741/matjip-map/api/internal/public/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifierRequiresEndpointAndDestination(t *testing.T) {
	assert.Nil(t, NewNotifier(NotifierConfig{}))
	assert.Nil(t, NewNotifier(NotifierConfig{Endpoint: "http://gw"}))
	assert.Nil(t, NewNotifier(NotifierConfig{DiscordDestination: "discord"}))
	assert.NotNil(t, NewNotifier(NotifierConfig{Endpoint: "http://gw", SlackDestination: "slack"}))
}

func TestNotifierPostsOncePerDestination(t *testing.T) {
	var mu sync.Mutex
	received := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "r-1", payload["userId"])
		assert.Contains(t, payload["text"], "을지로 골뱅이")
		mu.Lock()
		received[payload["destination"]]++
		mu.Unlock()
		// 失敗しても再送しないことを確認する。
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewNotifier(NotifierConfig{Endpoint: srv.URL + "/", DiscordDestination: "discord", SlackDestination: "slack"})
	require.NotNil(t, n)

	n.NotifyReview(context.Background(),
		&domain.Place{ID: "p-1", Name: "을지로 골뱅이", Address: "서울 중구"},
		&domain.Review{ID: "r-1", Rating: 4, AuthorName: "a@b.co", Content: "맛있어요", CreatedAt: time.Now()})
	n.Wait()

	assert.Equal(t, map[string]int{"discord": 1, "slack": 1}, received)
}

func TestBuildReviewMessage(t *testing.T) {
	msg := buildReviewMessage(
		&domain.Place{Name: "명동 칼국수", Address: "서울 중구 명동"},
		&domain.Review{Rating: 3, AuthorName: "a@b.co", Content: "면이 쫄깃해요", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		time.FixedZone("KST", 9*60*60),
	)
	assert.Contains(t, msg, "명동 칼국수 (서울 중구 명동)")
	assert.Contains(t, msg, "★★★☆☆")
	assert.Contains(t, msg, "2024-01-01 09:00")
}
