package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/matjip-map/api/internal/config"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, overrides map[string]string) (*Server, *httptest.Server) {
	t.Helper()

	env := map[string]string{
		"STORE_DRIVER":        config.DriverSQLite,
		"SQLITE_FILE":         fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
		"SEARCH_PROVIDER":     config.SearchLocal,
		"BCRYPT_COST":         "4",
		"ADMIN_JWT_SECRET":    testSecret,
		"API_ALLOWED_ORIGINS": "https://map.example.com",
	}
	for k, v := range overrides {
		env[k] = v
	}
	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	require.NoError(t, err)

	stores, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)

	srv := New(cfg, stores)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.shutdown(context.Background())
	})
	return srv, ts
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":  "matjip-map-admin",
		"sub":  "admin-1",
		"name": "운영자",
		"exp":  time.Now().Add(time.Hour).Unix(),
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

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.OK)
	assert.Contains(t, string(env.Data), `"status":"ok"`)
}

func TestHealthzDegraded(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	srv.stores.Ping = func(context.Context) error { return errors.New("down") }

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.OK)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCORS(t *testing.T) {
	handler := withCORS([]string{"https://map.example.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("allowed origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/places/search", nil)
		req.Header.Set("Origin", "https://map.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://map.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,POST,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("unknown origin passes without headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/places/search", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		all := withCORS([]string{"*"})(http.NotFoundHandler())
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		rec := httptest.NewRecorder()
		all.ServeHTTP(rec, req)

		assert.Equal(t, "https://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestAdminAuth(t *testing.T) {
	_, ts := newTestServer(t, nil)

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{name: "missing header", token: "", want: http.StatusUnauthorized},
		{name: "wrong secret", token: signToken(t, "other", validClaims()), want: http.StatusUnauthorized},
		{name: "wrong issuer", token: func() string {
			c := validClaims()
			c["iss"] = "someone-else"
			return signToken(t, testSecret, c)
		}(), want: http.StatusUnauthorized},
		{name: "expired", token: func() string {
			c := validClaims()
			c["exp"] = time.Now().Add(-time.Hour).Unix()
			return signToken(t, testSecret, c)
		}(), want: http.StatusUnauthorized},
		{name: "missing subject", token: func() string {
			c := validClaims()
			delete(c, "sub")
			return signToken(t, testSecret, c)
		}(), want: http.StatusUnauthorized},
		{name: "valid", token: signToken(t, testSecret, validClaims()), want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, env := doJSON(t, http.MethodGet, ts.URL+"/admin/places", tc.token, nil)
			assert.Equal(t, tc.want, resp.StatusCode)
			if tc.want == http.StatusUnauthorized {
				require.NotNil(t, env.Error)
				assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
			}
		})
	}
}

func TestAdminAuthNotConfigured(t *testing.T) {
	_, ts := newTestServer(t, map[string]string{"ADMIN_JWT_SECRET": " "})

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/admin/places", signToken(t, testSecret, validClaims()), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPlaceAndReviewFlow(t *testing.T) {
	_, ts := newTestServer(t, nil)
	token := signToken(t, testSecret, validClaims())

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/admin/places", token, map[string]any{
		"name":      "을지로 골뱅이",
		"address":   "서울 중구 을지로 19",
		"category":  "한식>술집",
		"latitude":  37.5662,
		"longitude": 126.9822,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)

	var created struct {
		Place struct {
			ID string `json:"id"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	placeID := created.Place.ID
	require.NotEmpty(t, placeID)

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/places/nearby?lat=37.5665&lng=126.978&radius=1000", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), placeID)

	for _, rating := range []int{4, 5, 5} {
		resp, env = doJSON(t, http.MethodPost, ts.URL+"/api/places/"+placeID+"/reviews", "", map[string]any{
			"authorName": "eater@ex.kr",
			"rating":     rating,
			"content":    "골뱅이 무침이 정말 맛있어요",
			"password":   "1234",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)
		assert.NotContains(t, string(env.Data), "password")
	}

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/places/"+placeID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail struct {
		Place struct {
			AverageRating float64 `json:"averageRating"`
			ReviewCount   int     `json:"reviewCount"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, 4.7, detail.Place.AverageRating)
	assert.Equal(t, 3, detail.Place.ReviewCount)

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/places/"+placeID+"/reviews?page=1&limit=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reviews struct {
		Reviews []map[string]any `json:"reviews"`
		Total   int              `json:"total"`
		HasMore bool             `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	assert.Len(t, reviews.Reviews, 2)
	assert.Equal(t, 3, reviews.Total)
	assert.True(t, reviews.HasMore)

	resp, env = doJSON(t, http.MethodGet, ts.URL+"/api/places/search?q="+url.QueryEscape("골뱅이"), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"source":"local"`)
}

func TestCreateReviewWithLongPassword(t *testing.T) {
	_, ts := newTestServer(t, nil)
	token := signToken(t, testSecret, validClaims())

	_, env := doJSON(t, http.MethodPost, ts.URL+"/admin/places", token, map[string]any{
		"name":      "충무로 족발",
		"address":   "서울 중구 충무로 3",
		"latitude":  37.561,
		"longitude": 126.994,
	})
	var created struct {
		Place struct {
			ID string `json:"id"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/places/"+created.Place.ID+"/reviews", "", map[string]any{
		"authorName": "eater@ex.kr",
		"rating":     5,
		"content":    "족발이 부드럽고 양이 많아요",
		"password":   strings.Repeat("a", 73),
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode, env.Error)
	assert.True(t, env.OK)
}
