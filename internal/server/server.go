package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	adminapp "github.com/sngm3741/matjip-map/api/internal/admin/application"
	"github.com/sngm3741/matjip-map/api/internal/config"
	"github.com/sngm3741/matjip-map/api/internal/infrastructure/naver"
	"github.com/sngm3741/matjip-map/api/internal/infrastructure/password"
	adminhttp "github.com/sngm3741/matjip-map/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/matjip-map/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/matjip-map/api/internal/public/application"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
type Server struct {
	logger         *log.Logger
	stores         *Stores
	notifier       *publichttp.Notifier
	adminJWT       *config.JWTConfig
	adminAudience  string
	addr           string
	allowedOrigins []string

	placeQueries   publicapp.PlaceQueryService
	reviewQueries  publicapp.ReviewQueryService
	reviewCommands publicapp.ReviewCommandService
	adminPlaces    adminapp.PlaceService
}

// New は Config とストアを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
func New(cfg config.Config, stores *Stores) *Server {
	srv := &Server{
		logger:         cfg.ServerLog,
		stores:         stores,
		adminJWT:       cfg.AdminJWT,
		adminAudience:  cfg.AdminAudience,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	var provider publicapp.SearchProvider
	if cfg.SearchProvider == config.SearchNaver {
		provider = naver.NewClient(naver.Config{
			ClientID:     cfg.Naver.ClientID,
			ClientSecret: cfg.Naver.ClientSecret,
			SearchURL:    cfg.Naver.SearchURL,
			HTTPClient:   &http.Client{Timeout: cfg.Naver.Timeout},
		}).Provider()
	}
	srv.placeQueries = publicapp.NewPlaceQueryService(stores.Places, stores.Reviews, provider)
	srv.reviewQueries = publicapp.NewReviewQueryService(stores.Reviews)

	opts := []publicapp.ReviewCommandOption{}
	srv.notifier = publichttp.NewNotifier(publichttp.NotifierConfig{
		Logger:             cfg.ServerLog,
		HTTPClient:         &http.Client{Timeout: cfg.MessengerTimeout},
		Endpoint:           cfg.MessengerEndpoint,
		DiscordDestination: cfg.DiscordDestination,
		SlackDestination:   cfg.SlackDestination,
		Location:           cfg.Location(),
	})
	if srv.notifier != nil {
		opts = append(opts, publicapp.WithNotifier(srv.notifier))
	}
	srv.reviewCommands = publicapp.NewReviewCommandService(stores.Places, stores.Reviews, password.NewHasher(cfg.BcryptCost), opts...)
	srv.adminPlaces = adminapp.NewPlaceService(stores.AdminPlaces)

	return srv
}

// Handler はミドルウェアとルーティングを組み立てた http.Handler を返す。
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger,
		PlaceQueries:   s.placeQueries,
		ReviewQueries:  s.reviewQueries,
		ReviewCommands: s.reviewCommands,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:       s.logger,
		PlaceService: s.adminPlaces,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		commonhttp.WriteErrorCode(s.logger, w, http.StatusNotFound, "NOT_FOUND", "요청한 경로를 찾을 수 없습니다.")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		commonhttp.WriteErrorCode(s.logger, w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "허용되지 않은 메서드입니다.")
	})
	return router
}

// Run はHTTPサーバーを起動し、シグナル受信まで待機する。
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s)
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	_, ok := allowed[origin]
	return ok
}

// healthHandler はストアへの疎通確認を行う。ドメインの状態は返さない。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.stores.Ping(ctx); err != nil {
			s.logger.Printf("health check failed: %v", err)
			commonhttp.WriteErrorCode(s.logger, w, http.StatusServiceUnavailable, domain.CodeServiceUnavailable, "degraded")
			return
		}

		commonhttp.WriteData(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// shutdown は通知の送信完了を待ってからストアを閉じる。
func (s *Server) shutdown(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Wait()
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.stores.Close(shutdownCtx); err != nil {
		s.logger.Printf("ストア切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
	return runErr
}
