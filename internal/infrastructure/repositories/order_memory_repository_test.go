package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
	"github.com/orderstack/orders-service/internal/infrastructure/repositories"
)

func seedOrder(t *testing.T, repo interface {
	Create(ctx context.Context, o *order.Order) error
}, status order.OrderStatus, createdAt time.Time) *order.Order {
	t.Helper()
	o := &order.Order{
		ID:           uuid.New(),
		CustomerName: "Ada",
		Item:         "widget",
		Quantity:     1,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if err := repo.Create(context.Background(), o); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return o
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := repositories.NewOrderMemoryRepository()
	o := seedOrder(t, repo, order.StatusPending, time.Now().UTC())

	got, err := repo.GetByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != o.ID {
		t.Fatalf("expected %s, got %s", o.ID, got.ID)
	}

	// Returned value is a copy; mutating it must not leak into the store.
	got.CustomerName = "mutated"
	again, _ := repo.GetByID(context.Background(), o.ID)
	if again.CustomerName != "Ada" {
		t.Fatal("repository returned shared state")
	}
}

func TestMemoryRepository_GetByID_NotFound(t *testing.T) {
	repo := repositories.NewOrderMemoryRepository()
	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_Update_NotFound(t *testing.T) {
	repo := repositories.NewOrderMemoryRepository()
	err := repo.Update(context.Background(), &order.Order{ID: uuid.New()})
	if !errors.Is(err, order.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_ListSortedNewestFirst(t *testing.T) {
	repo := repositories.NewOrderMemoryRepository()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	oldest := seedOrder(t, repo, order.StatusPending, base)
	middle := seedOrder(t, repo, order.StatusPending, base.Add(time.Hour))
	newest := seedOrder(t, repo, order.StatusPending, base.Add(2*time.Hour))

	got, err := repo.List(context.Background(), order.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(got))
	}
	if got[0].ID != newest.ID || got[1].ID != middle.ID || got[2].ID != oldest.ID {
		t.Fatal("orders not sorted newest first")
	}
}

func TestMemoryRepository_ListFilters(t *testing.T) {
	repo := repositories.NewOrderMemoryRepository()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, repo, order.StatusPending, base)
	cancelled := seedOrder(t, repo, order.StatusCancelled, base.Add(time.Hour))
	seedOrder(t, repo, order.StatusFulfilled, base.Add(2*time.Hour))

	status := order.StatusCancelled
	got, err := repo.List(context.Background(), order.Filter{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != cancelled.ID {
		t.Fatalf("status filter wrong: %d results", len(got))
	}

	from := base.Add(30 * time.Minute)
	to := base.Add(90 * time.Minute)
	got, err = repo.List(context.Background(), order.Filter{CreatedFrom: &from, CreatedTo: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != cancelled.ID {
		t.Fatalf("time window filter wrong: %d results", len(got))
	}
}
