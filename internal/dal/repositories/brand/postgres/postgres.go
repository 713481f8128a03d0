package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/storefront/internal/service/models/brand"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresBrandRepository represents a Postgres brand repository.
type PostgresBrandRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresBrandRepository creates a new Postgres brand repository.
func NewPostgresBrandRepository(conn GenericConn) *PostgresBrandRepository {
	return &PostgresBrandRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID retrieves a single brand.
func (r *PostgresBrandRepository) GetByID(ctx context.Context, brandID int64) (*brand.Brand, error) {
	sqlStr, args, err := r.sb.
		Select("id", "name", "name_te", "is_active").
		From("brands").
		Where(sq.Eq{"id": brandID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get brand query: %w", err)
	}

	var b brand.Brand
	err = r.conn.QueryRow(ctx, sqlStr, args...).Scan(&b.ID, &b.Name, &b.NameTe, &b.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrBrandNotFound
		}

		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &b, nil
}

// QueryActive retrieves all active brands ordered by name.
func (r *PostgresBrandRepository) QueryActive(ctx context.Context) ([]brand.Brand, error) {
	sqlStr, args, err := r.sb.
		Select("id", "name", "name_te", "is_active").
		From("brands").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query brands query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	defer rows.Close()

	var result []brand.Brand
	for rows.Next() {
		var b brand.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.NameTe, &b.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		result = append(result, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
