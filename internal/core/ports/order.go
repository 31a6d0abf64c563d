package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
)

// OrderRepository abstracts order storage.
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Update(ctx context.Context, o *order.Order) error
	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}

// OrderService exposes the order operations served over HTTP.
type OrderService interface {
	CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error)
	ListOrders(ctx context.Context, filter order.Filter) ([]*order.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *order.UpdateOrderRequest) (*order.Order, error)
	// CancelOrder is idempotent: cancelling a cancelled order returns it
	// unchanged.
	CancelOrder(ctx context.Context, id uuid.UUID) (*order.Order, error)
	OrdersReport(ctx context.Context, filter order.Filter) (*order.Report, error)
}
