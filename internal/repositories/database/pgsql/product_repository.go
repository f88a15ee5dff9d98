package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, designation, reference, unit_price, tax_rate,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Designation, m.Reference, m.UnitPrice, m.TaxRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "product "+m.ProductID)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, designation, reference, unit_price, tax_rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		WHERE product_id = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.Designation,
		&m.Reference,
		&m.UnitPrice,
		&m.TaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	query := `
		SELECT product_id, designation, reference, unit_price, tax_rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM products
		ORDER BY designation, product_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Product])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan product rows", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}
