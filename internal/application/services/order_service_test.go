package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	impl "github.com/orderstack/orders-service/internal/application/services"
	"github.com/orderstack/orders-service/internal/core/domain/order"
)

type orderRepoMock struct {
	createFn  func(ctx context.Context, o *order.Order) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*order.Order, error)
	updateFn  func(ctx context.Context, o *order.Order) error
	listFn    func(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}

func (m *orderRepoMock) Create(ctx context.Context, o *order.Order) error {
	if m.createFn != nil {
		return m.createFn(ctx, o)
	}
	return nil
}
func (m *orderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, order.ErrNotFound
}
func (m *orderRepoMock) Update(ctx context.Context, o *order.Order) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, o)
	}
	return nil
}
func (m *orderRepoMock) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func TestCreateOrder_AssignsIDAndPendingStatus(t *testing.T) {
	var stored *order.Order
	repo := &orderRepoMock{createFn: func(ctx context.Context, o *order.Order) error {
		stored = o
		return nil
	}}
	svc := impl.NewOrderService(repo, nil)

	o, err := svc.CreateOrder(context.Background(), &order.CreateOrderRequest{CustomerName: "Ada", Item: "widget", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID == uuid.Nil {
		t.Fatal("expected a generated ID")
	}
	if o.Status != order.StatusPending {
		t.Fatalf("expected PENDING, got %s", o.Status)
	}
	if o.CreatedAt.IsZero() || !o.UpdatedAt.Equal(o.CreatedAt) {
		t.Fatalf("timestamps not initialized: created=%v updated=%v", o.CreatedAt, o.UpdatedAt)
	}
	if stored == nil || stored.ID != o.ID {
		t.Fatal("order not handed to repository")
	}
}

func TestCreateOrder_InvalidRequest(t *testing.T) {
	svc := impl.NewOrderService(&orderRepoMock{}, nil)
	_, err := svc.CreateOrder(context.Background(), &order.CreateOrderRequest{CustomerName: "Ada", Item: "widget", Quantity: 0})
	if !errors.Is(err, order.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateOrder_NotFound(t *testing.T) {
	svc := impl.NewOrderService(&orderRepoMock{}, nil)
	name := "Grace"
	_, err := svc.UpdateOrder(context.Background(), uuid.New(), &order.UpdateOrderRequest{CustomerName: &name})
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateOrder_AppliesFields(t *testing.T) {
	id := uuid.New()
	existing := &order.Order{ID: id, CustomerName: "Ada", Item: "widget", Quantity: 1, Status: order.StatusPending}
	var updated *order.Order
	repo := &orderRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*order.Order, error) {
			if got != id {
				return nil, order.ErrNotFound
			}
			copied := *existing
			return &copied, nil
		},
		updateFn: func(ctx context.Context, o *order.Order) error {
			updated = o
			return nil
		},
	}
	svc := impl.NewOrderService(repo, nil)

	qty := 7
	o, err := svc.UpdateOrder(context.Background(), id, &order.UpdateOrderRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Quantity != 7 || o.CustomerName != "Ada" {
		t.Fatalf("partial update wrong: %+v", o)
	}
	if updated == nil {
		t.Fatal("repository update not called")
	}
}

func TestCancelOrder_Idempotent(t *testing.T) {
	id := uuid.New()
	updateCalls := 0
	repo := &orderRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*order.Order, error) {
			return &order.Order{ID: id, Status: order.StatusCancelled}, nil
		},
		updateFn: func(ctx context.Context, o *order.Order) error {
			updateCalls++
			return nil
		},
	}
	svc := impl.NewOrderService(repo, nil)

	o, err := svc.CancelOrder(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != order.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", o.Status)
	}
	if updateCalls != 0 {
		t.Fatal("cancelling a cancelled order must not write")
	}
}

func TestCancelOrder_TransitionsToCancelled(t *testing.T) {
	id := uuid.New()
	repo := &orderRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*order.Order, error) {
			return &order.Order{ID: id, Status: order.StatusPending}, nil
		},
	}
	svc := impl.NewOrderService(repo, nil)

	o, err := svc.CancelOrder(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != order.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", o.Status)
	}
}

func TestOrdersReport_CountsFilteredSet(t *testing.T) {
	repo := &orderRepoMock{listFn: func(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
		return []*order.Order{
			{Status: order.StatusPending},
			{Status: order.StatusFulfilled},
			{Status: order.StatusFulfilled},
		}, nil
	}}
	svc := impl.NewOrderService(repo, nil)

	report, err := svc.OrdersReport(context.Background(), order.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 3 || report.Statuses[order.StatusFulfilled] != 2 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
