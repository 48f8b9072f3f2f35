package server

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	commonhttp "github.com/sngm3741/matjip-map/api/internal/interfaces/http/common"
	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

type adminClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// authMiddleware は Authorization ヘッダーの JWT を検証し、管理者をコンテキストへ詰める。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.unauthorized(w, "Authorization 헤더가 없습니다.")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.unauthorized(w, "Bearer 토큰을 지정해주세요.")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.unauthorized(w, "액세스 토큰이 비어 있습니다.")
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.logger.Printf("admin token rejected: %v", err)
			s.unauthorized(w, "액세스 토큰이 유효하지 않습니다.")
			return
		}

		ctx := commonhttp.ContextWithAdmin(r.Context(), commonhttp.AuthenticatedAdmin{
			ID:   claims.Subject,
			Name: claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) unauthorized(w http.ResponseWriter, message string) {
	commonhttp.WriteErrorCode(s.logger, w, http.StatusUnauthorized, domain.CodeUnauthorized, message)
}

// parseAuthToken は HS256 署名と Issuer/Audience/Subject を検証する。
func (s *Server) parseAuthToken(tokenString string) (*adminClaims, error) {
	if s.adminJWT == nil {
		return nil, fmt.Errorf("admin JWT is not configured")
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.adminJWT.Secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if s.adminJWT.Issuer != "" && claims.Issuer != s.adminJWT.Issuer {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("subject is empty")
	}
	if s.adminAudience != "" && !slices.Contains(claims.Audience, s.adminAudience) {
		return nil, fmt.Errorf("audience mismatch")
	}
	return claims, nil
}
