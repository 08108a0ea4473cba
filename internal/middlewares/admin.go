package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
)

// AdminErrorMessage is returned to clients that fail the admin password check.
const AdminErrorMessage = "Invalid admin password"

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=middlewares

// AdminChecker defines the minimal interface needed by the middleware
type AdminChecker interface {
	GetPasswordFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, password string) error
}

// AdminMiddleware returns a middleware that rejects requests without a valid
// admin password with 403 before the wrapped handler runs.
func AdminMiddleware(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			password, err := checker.GetPasswordFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Warnw("admin authorization failed", "err", err)
				writeError(ctx, w, http.StatusForbidden, AdminErrorMessage)
				return
			}

			if err := checker.Validate(ctx, password); err != nil {
				logger.FromContext(ctx).Warnw("admin authorization failed", "err", err)
				writeError(ctx, w, http.StatusForbidden, AdminErrorMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
