package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
	"github.com/orderstack/orders-service/internal/core/ports"
	"github.com/orderstack/orders-service/internal/infrastructure/db"
	"github.com/sirupsen/logrus"
)

// OrderRepository implements the order repository on Postgres.
type OrderRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewOrderRepository(database *db.Database, logger *logrus.Logger) ports.OrderRepository {
	return &OrderRepository{db: database, logger: logger}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, item, quantity, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.DB.ExecContext(ctx, query,
		o.ID, o.CustomerName, o.Item, o.Quantity, o.Notes, o.Status, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	query := `
		SELECT id, customer_name, item, quantity, notes, status, created_at, updated_at
		FROM orders
		WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &o, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders
		SET customer_name = $2, item = $3, quantity = $4, notes = $5, status = $6, updated_at = $7
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		o.ID, o.CustomerName, o.Item, o.Quantity, o.Notes, o.Status, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `
		SELECT id, customer_name, item, quantity, notes, status, created_at, updated_at
		FROM orders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	orders := []*order.Order{}
	if err := r.db.DB.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
