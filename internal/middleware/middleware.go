package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/logging"
	"github.com/PendemixAI/vax-tracker/internal/session"
	"github.com/PendemixAI/vax-tracker/internal/utils"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const SessionCookie = "session_id"

type SessionResolver interface {
	ResolveOrStart(ctx context.Context, token string) (*session.Session, string, error)
	TTL() time.Duration
}

// SessionMiddleware resumes the caller's session from the session_id cookie
// or starts a new one and sets the cookie.
func SessionMiddleware(resolver SessionResolver, lg *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}

			s, newToken, err := resolver.ResolveOrStart(r.Context(), token)
			if err != nil {
				logging.LogError(lg, "session", err)
				http.Error(w, "Couldn't start session", http.StatusInternalServerError)
				return
			}

			if newToken != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    newToken,
					Path:     "/",
					MaxAge:   int(resolver.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), s)))
		})
	}
}

// CORS echoes allowed origins with credentials enabled.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Retry-After", "X-Map-Fallback"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
