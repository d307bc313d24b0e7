package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/tms-recovery/backend/internal/models"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserMiddleware resolves the acting user from the X-User-ID header and
// places the parsed UUID on the request context. All stateful routes sit
// behind it.
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "X-User-ID header is required"})
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid user ID"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the user set by UserMiddleware. It panics if called on a
// request that did not pass through the middleware.
func UserID(r *http.Request) uuid.UUID {
	return r.Context().Value(userIDKey).(uuid.UUID)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
