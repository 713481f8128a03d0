package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/storefront/internal/service/models/money"
	"github.com/corray333/storefront/internal/service/models/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// ProductDal represents the product data access layer model.
type ProductDal struct {
	Id            int64       `db:"id"`
	BrandId       int64       `db:"brand_id"`
	CategoryId    int64       `db:"category_id"`
	Name          string      `db:"name"`
	NameTe        string      `db:"name_te"`
	Description   string      `db:"description"`
	DescriptionTe string      `db:"description_te"`
	Price         money.Money `db:"price"`
	StockQuantity int         `db:"stock_quantity"`
	IsActive      bool        `db:"is_active"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// ToModel converts ProductDal to the service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:            p.Id,
		BrandID:       p.BrandId,
		CategoryID:    p.CategoryId,
		Name:          p.Name,
		NameTe:        p.NameTe,
		Description:   p.Description,
		DescriptionTe: p.DescriptionTe,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// PostgresProductRepository represents a Postgres product repository.
type PostgresProductRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var productColumns = []string{
	"p.id",
	"p.brand_id",
	"p.category_id",
	"p.name",
	"p.name_te",
	"p.description",
	"p.description_te",
	"p.price",
	"p.stock_quantity",
	"p.is_active",
	"p.created_at",
	"p.updated_at",
}

// GetByID retrieves a single product.
func (r *PostgresProductRepository) GetByID(ctx context.Context, productID int64) (*product.Product, error) {
	sqlStr, args, err := r.sb.
		Select(productColumns...).
		From("products p").
		Where(sq.Eq{"p.id": productID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get product query: %w", err)
	}

	dal, err := r.scanOne(r.conn.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return dal.ToModel(), nil
}

// Query retrieves products based on filter criteria.
func (r *PostgresProductRepository) Query(ctx context.Context, filter *product.QueryProductsModel) ([]product.Product, error) {
	query := r.sb.
		Select(productColumns...).
		From("products p").
		OrderBy("p.name")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"p.id": filter.Ids})
	}

	if filter.BrandID > 0 {
		query = query.Where(sq.Eq{"p.brand_id": filter.BrandID})
	}

	if filter.OnlyActive {
		query = query.Where(sq.Eq{"p.is_active": true})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			LeftJoin("brands b ON b.id = p.brand_id").
			LeftJoin("categories c ON c.id = p.category_id").
			Where(sq.Or{
				sq.ILike{"p.name": pattern},
				sq.ILike{"b.name": pattern},
				sq.ILike{"c.name": pattern},
			})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query products query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		dal, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// DecrementStock subtracts amount from the product's stock in one statement.
// The WHERE guard makes the read-modify-write atomic: two concurrent
// checkouts cannot both take the last units.
func (r *PostgresProductRepository) DecrementStock(ctx context.Context, productID int64, amount int) error {
	query, args, err := r.sb.
		Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock_quantity": amount}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build decrement stock query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrInsufficientStock
	}

	return nil
}

func (r *PostgresProductRepository) scanOne(row pgx.Row) (*ProductDal, error) {
	var dal ProductDal
	err := row.Scan(
		&dal.Id,
		&dal.BrandId,
		&dal.CategoryId,
		&dal.Name,
		&dal.NameTe,
		&dal.Description,
		&dal.DescriptionTe,
		&dal.Price,
		&dal.StockQuantity,
		&dal.IsActive,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &dal, nil
}
