package order_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
)

func intptr(i int) *int { return &i }

func statusptr(s order.OrderStatus) *order.OrderStatus { return &s }

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := order.CreateOrderRequest{CustomerName: "Ada", Item: "widget", Quantity: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []order.CreateOrderRequest{
		{CustomerName: "", Item: "widget", Quantity: 1},
		{CustomerName: "  ", Item: "widget", Quantity: 1},
		{CustomerName: "Ada", Item: "", Quantity: 1},
		{CustomerName: "Ada", Item: "widget", Quantity: 0},
		{CustomerName: "Ada", Item: "widget", Quantity: -3},
	}
	for i, req := range cases {
		err := req.Validate()
		if err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
		if !errors.Is(err, order.ErrValidation) {
			t.Fatalf("case %d: error not wrapped as ErrValidation: %v", i, err)
		}
	}
}

func TestUpdateOrderRequest_Validate(t *testing.T) {
	empty := order.UpdateOrderRequest{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty update must be valid: %v", err)
	}

	bad := order.UpdateOrderRequest{Status: statusptr(order.OrderStatus("SHIPPED"))}
	if err := bad.Validate(); !errors.Is(err, order.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}

	badQty := order.UpdateOrderRequest{Quantity: intptr(0)}
	if err := badQty.Validate(); !errors.Is(err, order.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

func TestUpdateOrderRequest_ApplyPartial(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	o := &order.Order{
		ID:           uuid.New(),
		CustomerName: "Ada",
		Item:         "widget",
		Quantity:     2,
		Status:       order.StatusPending,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	now := created.Add(time.Hour)
	req := order.UpdateOrderRequest{Quantity: intptr(5), Status: statusptr(order.StatusFulfilled)}
	req.Apply(o, now)

	if o.Quantity != 5 || o.Status != order.StatusFulfilled {
		t.Fatalf("update not applied: %+v", o)
	}
	if o.CustomerName != "Ada" || o.Item != "widget" {
		t.Fatalf("untouched fields changed: %+v", o)
	}
	if !o.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at not refreshed: %v", o.UpdatedAt)
	}
	if !o.CreatedAt.Equal(created) {
		t.Fatalf("created_at must not change: %v", o.CreatedAt)
	}
}

func TestFilter_Matches(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	o := &order.Order{Status: order.StatusPending, CreatedAt: at}

	if !(order.Filter{}).Matches(o) {
		t.Fatal("empty filter must match everything")
	}
	if !(order.Filter{Status: statusptr(order.StatusPending)}).Matches(o) {
		t.Fatal("status filter should match")
	}
	if (order.Filter{Status: statusptr(order.StatusCancelled)}).Matches(o) {
		t.Fatal("status filter should reject")
	}

	from := at.Add(time.Minute)
	if (order.Filter{CreatedFrom: &from}).Matches(o) {
		t.Fatal("created_from should reject earlier orders")
	}
	to := at.Add(-time.Minute)
	if (order.Filter{CreatedTo: &to}).Matches(o) {
		t.Fatal("created_to should reject later orders")
	}
	// Boundaries are inclusive.
	if !(order.Filter{CreatedFrom: &at, CreatedTo: &at}).Matches(o) {
		t.Fatal("boundary timestamps must be inclusive")
	}
}

func TestBuildReport(t *testing.T) {
	orders := []*order.Order{
		{Status: order.StatusPending},
		{Status: order.StatusPending},
		{Status: order.StatusCancelled},
	}
	report := order.BuildReport(orders)
	if report.Total != 3 {
		t.Fatalf("expected total 3, got %d", report.Total)
	}
	if report.Statuses[order.StatusPending] != 2 || report.Statuses[order.StatusCancelled] != 1 {
		t.Fatalf("unexpected status counts: %v", report.Statuses)
	}
	if _, ok := report.Statuses[order.StatusFulfilled]; ok {
		t.Fatal("absent statuses should not appear in the report")
	}
}
