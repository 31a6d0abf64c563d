package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
	"github.com/orderstack/orders-service/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var sf singleflight.Group

func cacheSetSilently(ctx context.Context, c ports.Cache, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGetOrder(ctx context.Context, c ports.Cache, key string) (*order.Order, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var o order.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, false
	}
	return &o, true
}

// CachingOrderRepository decorates an OrderRepository with cache-aside reads
// on GetByID. Listings always hit the inner repository: filters make list
// keys low-value and the cache must never serve a stale order set to the
// report endpoint.
type CachingOrderRepository struct {
	inner ports.OrderRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingOrderRepository(inner ports.OrderRepository, cache ports.Cache, ttl time.Duration) ports.OrderRepository {
	return &CachingOrderRepository{inner: inner, cache: cache, ttl: ttl}
}

func orderKey(id uuid.UUID) string { return "order:id:" + id.String() }

func (c *CachingOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := c.inner.Create(ctx, o); err != nil {
		return err
	}
	cacheSetSilently(ctx, c.cache, orderKey(o.ID), o, c.ttl)
	return nil
}

func (c *CachingOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	key := orderKey(id)
	if o, ok := cacheGetOrder(ctx, c.cache, key); ok {
		return o, nil
	}
	// Coalesce concurrent loads of the same order.
	res, err, _ := sf.Do(key, func() (any, error) {
		if o, ok := cacheGetOrder(ctx, c.cache, key); ok {
			return o, nil
		}
		o, err := c.inner.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		cacheSetSilently(ctx, c.cache, key, o, c.ttl)
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*order.Order), nil
}

func (c *CachingOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := c.inner.Update(ctx, o); err != nil {
		return err
	}
	cacheSetSilently(ctx, c.cache, orderKey(o.ID), o, c.ttl)
	return nil
}

func (c *CachingOrderRepository) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	return c.inner.List(ctx, filter)
}
