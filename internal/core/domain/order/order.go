package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an order ID does not exist.
var ErrNotFound = errors.New("order not found")

// ErrValidation wraps all request validation failures so handlers can map
// them to 400 responses.
var ErrValidation = errors.New("invalid order request")

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusFulfilled OrderStatus = "FULFILLED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	CustomerName string      `json:"customer_name" db:"customer_name"`
	Item         string      `json:"item" db:"item"`
	Quantity     int         `json:"quantity" db:"quantity"`
	Notes        *string     `json:"notes" db:"notes"`
	Status       OrderStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name"`
	Item         string  `json:"item"`
	Quantity     int     `json:"quantity"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(r.Item) == "" {
		return fmt.Errorf("%w: item must not be empty", ErrValidation)
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	return nil
}

// UpdateOrderRequest carries a partial update; nil fields are left unchanged.
type UpdateOrderRequest struct {
	CustomerName *string      `json:"customer_name,omitempty"`
	Item         *string      `json:"item,omitempty"`
	Quantity     *int         `json:"quantity,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
	Status       *OrderStatus `json:"status,omitempty"`
}

func (r *UpdateOrderRequest) Validate() error {
	if r.CustomerName != nil && strings.TrimSpace(*r.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name must not be empty", ErrValidation)
	}
	if r.Item != nil && strings.TrimSpace(*r.Item) == "" {
		return fmt.Errorf("%w: item must not be empty", ErrValidation)
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *r.Status)
	}
	return nil
}

// Apply copies the non-nil fields onto the order and refreshes updated_at.
func (r *UpdateOrderRequest) Apply(o *Order, now time.Time) {
	if r.CustomerName != nil {
		o.CustomerName = *r.CustomerName
	}
	if r.Item != nil {
		o.Item = *r.Item
	}
	if r.Quantity != nil {
		o.Quantity = *r.Quantity
	}
	if r.Notes != nil {
		o.Notes = r.Notes
	}
	if r.Status != nil {
		o.Status = *r.Status
	}
	o.UpdatedAt = now
}

// Filter narrows order listings and reports.
type Filter struct {
	Status      *OrderStatus
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Matches reports whether the order passes every set filter field.
func (f Filter) Matches(o *Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.CreatedFrom != nil && o.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && o.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}

// Report aggregates order counts per status over a filtered set.
type Report struct {
	Total    int                 `json:"total"`
	Statuses map[OrderStatus]int `json:"statuses"`
}

// BuildReport counts statuses over the given orders.
func BuildReport(orders []*Order) *Report {
	report := &Report{Statuses: make(map[OrderStatus]int)}
	for _, o := range orders {
		report.Total++
		report.Statuses[o.Status]++
	}
	return report
}
