package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "weeklyslots/internal/delivery/http/helpers"
	"weeklyslots/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}

// RequireOrganizer returns a wrapper that allows the request only when the authenticated user
// organizes the community named by the {communityID} path value. It must run after RequireAuth.
func RequireOrganizer(organizers domain.OrganizerRepository, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			communityID, err := h.ParseUUIDPath(r, "communityID")
			if err != nil {
				h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid communityID")
				return
			}
			allowed, err := organizers.IsOrganizer(r.Context(), communityID, userID)
			if err != nil {
				logger.ErrorContext(r.Context(), "organizer check failed", "path", r.URL.Path, "method", r.Method, "err", err)
				h.WriteJSONError(w, http.StatusServiceUnavailable, h.ErrCodeStoreUnavailable, "store unavailable")
				return
			}
			if !allowed {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "organizer role required for this community")
				return
			}
			next(w, r)
		}
	}
}
