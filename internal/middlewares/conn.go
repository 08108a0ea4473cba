package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
)

// ConnMiddleware acquires a dedicated database connection for the lifetime of
// the request and releases it on every exit path, including panics.
func ConnMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			conn, err := db.Connx(ctx)
			if err != nil {
				logger.FromContext(ctx).Errorw("failed to acquire database connection", "error", err)
				writeError(ctx, w, http.StatusInternalServerError, err.Error())
				return
			}
			defer func() {
				if err := conn.Close(); err != nil {
					logger.FromContext(ctx).Errorw("failed to release database connection", "error", err)
				}
			}()

			next.ServeHTTP(w, r.WithContext(setConnToContext(ctx, conn)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var connKey = contextKey{}

// setConnToContext stores a connection in the context
func setConnToContext(ctx context.Context, conn *sqlx.Conn) context.Context {
	return context.WithValue(ctx, connKey, conn)
}

// GetConnFromContext retrieves the connection from the context. Returns nil if not present.
func GetConnFromContext(ctx context.Context) *sqlx.Conn {
	conn, _ := ctx.Value(connKey).(*sqlx.Conn)
	return conn
}
