package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const productColumns = "id, name, description, price, category, stock, created_at"

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("name", "description", "price", "category", "stock").
		Values(product.Name, product.Description, product.Price, product.Category, product.Stock).
		Suffix("RETURNING id, created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return product, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("category", product.Category).
		Set("stock", product.Stock).
		Where(sq.Eq{"id": product.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return product, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id uint64) error {
	statement := r.db.QueryBuilder.
		Delete("products").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	return r.getProduct(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetProductByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.getProduct(ctx, sq.Eq{"name": name})
}

func (r *Repository) getProduct(ctx context.Context, where sq.Eq) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Stock,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, int, error) {
	where := sq.And{}
	if filter.Category != "" {
		where = append(where, sq.Eq{"category": filter.Category})
	}
	if filter.Search != "" {
		where = append(where, sq.ILike{"name": fmt.Sprintf("%%%s%%", filter.Search)})
	}

	countStatement := r.db.QueryBuilder.
		Select("count(*)").
		From("products")
	if len(where) > 0 {
		countStatement = countStatement.Where(where)
	}

	sql, args, err := countStatement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	listStatement := r.db.QueryBuilder.
		Select(productColumns).
		From("products").
		OrderBy("id").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))
	if len(where) > 0 {
		listStatement = listStatement.Where(where)
	}

	sql, args, err = listStatement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Category,
			&product.Stock,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}
