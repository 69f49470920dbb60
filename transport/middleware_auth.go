package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/krishsharda/Buyer-Leads/application/user"
	"github.com/krishsharda/Buyer-Leads/constant"
	utilsContext "github.com/krishsharda/Buyer-Leads/utils/context"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// The token comes from the auth cookie or an Authorization bearer header.
// Public endpoints pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := tokenFromRequest(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			actor, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("[AuthMiddleware] rejected token", zap.String("error", err.Error()))
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithActor(r.Context(), actor)))
		})
	}
}

// tokenFromRequest prefers the bearer header over the cookie.
func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if c, err := r.Cookie(constant.AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	switch path {
	case "/login", "/logout", "/health":
		return true
	}
	return false
}
