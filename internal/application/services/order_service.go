package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orderstack/orders-service/internal/core/domain/order"
	"github.com/orderstack/orders-service/internal/core/ports"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger *logrus.Logger
}

func NewOrderService(repo ports.OrderRepository, logger *logrus.Logger) ports.OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *order.CreateOrderRequest) (*order.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &order.Order{
		ID:           uuid.New(),
		CustomerName: req.CustomerName,
		Item:         req.Item,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
		Status:       order.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"customer": req.CustomerName, "item": req.Item}).WithError(err).Error("failed to create order in repo")
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": o.ID, "item": o.Item, "quantity": o.Quantity}).Info("order created")
	}
	return o, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	return s.repo.List(ctx, filter)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *order.UpdateOrderRequest) (*order.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(o, time.Now().UTC())

	if err := s.repo.Update(ctx, o); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"id": id}).WithError(err).Error("failed to update order in repo")
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": id, "status": o.Status}).Info("order updated")
	}
	return o, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Cancelling twice is a no-op, not an error.
	if o.Status == order.StatusCancelled {
		return o, nil
	}

	o.Status = order.StatusCancelled
	o.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, o); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"id": id}).WithError(err).Error("failed to cancel order in repo")
		}
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": id}).Info("order cancelled")
	}
	return o, nil
}

func (s *OrderService) OrdersReport(ctx context.Context, filter order.Filter) (*order.Report, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build orders report: %w", err)
	}
	return order.BuildReport(orders), nil
}
