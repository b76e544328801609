package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, username, purchase_date, delivery_time, delivery_location, " +
	"product_name, quantity, message, total_amount, status, created_at, updated_at"

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Insert("orders").
		Columns("id", "username", "purchase_date", "delivery_time", "delivery_location",
			"product_name", "quantity", "message", "total_amount", "status", "created_at", "updated_at").
		Values(order.ID, order.Username, order.PurchaseDate, order.DeliveryTime, order.DeliveryLocation,
			order.ProductName, order.Quantity, order.Message, order.TotalAmount, order.Status,
			order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Username,
		&order.PurchaseDate,
		&order.DeliveryTime,
		&order.DeliveryLocation,
		&order.ProductName,
		&order.Quantity,
		&order.Message,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("message", order.Message).
		Set("status", order.Status).
		Set("updated_at", order.UpdatedAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, username string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrdersByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.GtOrEq{"purchase_date": from}).
		Where(sq.Lt{"purchase_date": to})

	return r.listOrders(ctx, statement)
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Username,
			&order.PurchaseDate,
			&order.DeliveryTime,
			&order.DeliveryLocation,
			&order.ProductName,
			&order.Quantity,
			&order.Message,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
