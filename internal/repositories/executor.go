package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
)

// executor is satisfied by both *sqlx.DB and *sqlx.Conn.
type executor interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// ConnGetter returns the connection bound to the request, or nil.
type ConnGetter func(ctx context.Context) *sqlx.Conn

// pickExecutor prefers the request-scoped connection and falls back to the pool.
func pickExecutor(ctx context.Context, db *sqlx.DB, connGetter ConnGetter) executor {
	if connGetter != nil {
		if conn := connGetter(ctx); conn != nil {
			return conn
		}
	}
	return db
}

// logQuery logs a statement on a single line with its arguments and outcome.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
