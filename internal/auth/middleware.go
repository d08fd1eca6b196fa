package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const ownerKey = contextKey("ownerRef")

// OwnerMiddleware resolves who submitted a request. A valid Bearer token maps
// to "user:<id>". Anyone else gets an ephemeral session: the X-Session-ID
// header if the client sent one, otherwise a fresh uuid, echoed back in the
// response so the client can keep using it.
func OwnerMiddleware(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}
			claims, err := ParseToken(secret, parts[1])
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ownerKey, fmt.Sprintf("user:%d", claims.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		w.Header().Set("X-Session-ID", sessionID)
		ctx := context.WithValue(r.Context(), ownerKey, "session:"+sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey).(string)
	return owner, ok
}

// ContextWithOwner is used by tests and internal callers to stamp an owner
// reference without going through the middleware.
func ContextWithOwner(ctx context.Context, ownerRef string) context.Context {
	return context.WithValue(ctx, ownerKey, ownerRef)
}
