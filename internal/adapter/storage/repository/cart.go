package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) ListCartItems(ctx context.Context, userID uint64) ([]*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("c.user_id", "c.product_id", "c.quantity",
			"p.id", "p.name", "p.description", "p.price", "p.category", "p.stock", "p.created_at").
		From("cart_items c").
		Join("products p ON p.id = c.product_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.product_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{Product: &domain.Product{}}
		err := rows.Scan(
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.Category,
			&item.Product.Stock,
			&item.Product.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) GetCartItem(ctx context.Context, userID, productID uint64) (*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("user_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.UserID, &item.ProductID, &item.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &item, nil
}

func (r *Repository) UpsertCartItem(ctx context.Context, item *domain.CartItem) error {
	statement := r.db.QueryBuilder.
		Insert("cart_items").
		Columns("user_id", "product_id", "quantity").
		Values(item.UserID, item.ProductID, item.Quantity).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) DeleteCartItem(ctx context.Context, userID, productID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID})

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

func (r *Repository) ClearCart(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
