package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/orderstack/orders-service/internal/core/domain/order"
)

func (s *Server) createOrder(c echo.Context) error {
	var req order.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	o, err := s.orderService.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return orderErrorResponse(err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (s *Server) listOrders(c echo.Context) error {
	filter, err := parseOrderFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	orders, err := s.orderService.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return orderErrorResponse(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (s *Server) updateOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}
	var req order.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	o, err := s.orderService.UpdateOrder(c.Request().Context(), id, &req)
	if err != nil {
		return orderErrorResponse(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) cancelOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order ID")
	}
	o, err := s.orderService.CancelOrder(c.Request().Context(), id)
	if err != nil {
		return orderErrorResponse(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) ordersReport(c echo.Context) error {
	filter, err := parseOrderFilter(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	report, err := s.orderService.OrdersReport(c.Request().Context(), filter)
	if err != nil {
		return orderErrorResponse(err)
	}
	return c.JSON(http.StatusOK, report)
}

// parseOrderFilter reads the shared listing filters from query parameters.
func parseOrderFilter(c echo.Context) (order.Filter, error) {
	var filter order.Filter
	if v := c.QueryParam("status"); v != "" {
		status := order.OrderStatus(v)
		if !status.Valid() {
			return filter, errors.New("invalid status filter")
		}
		filter.Status = &status
	}
	if v := c.QueryParam("created_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid created_from timestamp")
		}
		filter.CreatedFrom = &t
	}
	if v := c.QueryParam("created_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("invalid created_to timestamp")
		}
		filter.CreatedTo = &t
	}
	return filter, nil
}

func orderErrorResponse(err error) error {
	switch {
	case errors.Is(err, order.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
