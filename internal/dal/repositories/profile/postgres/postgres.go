package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/storefront/internal/service/models/profile"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresProfileRepository represents a Postgres customer profile repository.
type PostgresProfileRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProfileRepository creates a new Postgres customer profile repository.
func NewPostgresProfileRepository(conn GenericConn) *PostgresProfileRepository {
	return &PostgresProfileRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetOrCreate returns the customer's profile, creating an empty one first
// if none exists.
func (r *PostgresProfileRepository) GetOrCreate(ctx context.Context, customerID int64) (*profile.Profile, error) {
	insert, args, err := r.sb.
		Insert("customer_profiles").
		Columns("customer_id").
		Values(customerID).
		Suffix("ON CONFLICT (customer_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create profile query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, insert, args...); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	sqlStr, args, err := r.sb.
		Select("customer_id", "phone", "address").
		From("customer_profiles").
		Where(sq.Eq{"customer_id": customerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var p profile.Profile
	if err := r.conn.QueryRow(ctx, sqlStr, args...).Scan(&p.CustomerID, &p.Phone, &p.Address); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// Upsert stores the customer's phone and address.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	query, args, err := r.sb.
		Insert("customer_profiles").
		Columns("customer_id", "phone", "address").
		Values(p.CustomerID, p.Phone, p.Address).
		Suffix("ON CONFLICT (customer_id) DO UPDATE SET phone = EXCLUDED.phone, address = EXCLUDED.address").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
