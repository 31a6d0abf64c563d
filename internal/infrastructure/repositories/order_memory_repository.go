package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
	"github.com/orderstack/orders-service/internal/core/ports"
)

// OrderMemoryRepository keeps orders in process memory. It is the default
// backend and the only state the service holds when no database is
// configured; everything is lost on restart.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Order
}

func NewOrderMemoryRepository() ports.OrderRepository {
	return &OrderMemoryRepository{orders: make(map[uuid.UUID]order.Order)}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *OrderMemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	copied := o
	return &copied, nil
}

func (r *OrderMemoryRepository) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrNotFound
	}
	r.orders[o.ID] = *o
	return nil
}

func (r *OrderMemoryRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	r.mu.RLock()
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		copied := o
		if filter.Matches(&copied) {
			result = append(result, &copied)
		}
	}
	r.mu.RUnlock()

	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
