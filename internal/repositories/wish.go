package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

// WishReadRepository handles wish read operations
type WishReadRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewWishReadRepository(db *sqlx.DB, connGetter ConnGetter) *WishReadRepository {
	return &WishReadRepository{db: db, connGetter: connGetter}
}

// List returns every wish, most recently created first.
func (r *WishReadRepository) List(ctx context.Context) ([]models.WishDB, error) {
	const query = `
		SELECT id, child_name, age, wish, category, color,
		       position_x, position_y, status, fulfilled_by, fulfilled_contact, created_at
		FROM wishes
		ORDER BY created_at DESC, id DESC
	`

	wishes := []models.WishDB{}
	err := sqlx.SelectContext(ctx, pickExecutor(ctx, r.db, r.connGetter), &wishes, query)

	logQuery(ctx, query, nil, len(wishes), err)

	if err != nil {
		return nil, err
	}
	return wishes, nil
}

// WishWriteRepository handles wish write operations
type WishWriteRepository struct {
	db         *sqlx.DB
	connGetter ConnGetter
}

func NewWishWriteRepository(db *sqlx.DB, connGetter ConnGetter) *WishWriteRepository {
	return &WishWriteRepository{db: db, connGetter: connGetter}
}

// Save inserts a new available wish and returns its generated id.
func (r *WishWriteRepository) Save(ctx context.Context, wish models.NewWish) (int64, error) {
	const query = `
		INSERT INTO wishes (child_name, age, wish, category, color, position_x, position_y)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{wish.ChildName, wish.Age, wish.Wish, wish.Category, wish.Color, wish.PositionX, wish.PositionY}

	var id int64
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.connGetter), &id, query, args...)

	logQuery(ctx, query, args, id, err)

	return id, err
}

// Fulfill marks the wish as fulfilled only if it is still available.
// It reports whether a row was switched; false means the wish was already
// fulfilled or does not exist.
func (r *WishWriteRepository) Fulfill(ctx context.Context, id int64, fulfilledBy string, contact *string) (bool, error) {
	const query = `
		UPDATE wishes
		SET status = 'fulfilled',
		    fulfilled_by = $1,
		    fulfilled_contact = $2
		WHERE id = $3 AND status = 'available'
	`
	args := []any{fulfilledBy, contact, id}

	rowsAffected, err := r.exec(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// ResetFulfilled returns every fulfilled wish to available and clears its benefactor.
func (r *WishWriteRepository) ResetFulfilled(ctx context.Context) (int64, error) {
	const query = `
		UPDATE wishes
		SET status = 'available',
		    fulfilled_by = NULL,
		    fulfilled_contact = NULL
		WHERE status = 'fulfilled'
	`

	rowsAffected, err := r.exec(ctx, query)

	logQuery(ctx, query, nil, rowsAffected, err)

	return rowsAffected, err
}

// Delete removes the wish with the given id. Deleting a missing id is not an error.
func (r *WishWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM wishes WHERE id = $1`
	args := []any{id}

	rowsAffected, err := r.exec(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected, err)

	return rowsAffected, err
}

func (r *WishWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := pickExecutor(ctx, r.db, r.connGetter).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
