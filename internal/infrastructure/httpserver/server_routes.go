package httpserver

func (s *Server) setupRoutes() {
	// Liveness probe target: 2xx here means the process is ready for
	// traffic.
	s.echo.GET("/", s.livenessCheck)
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	orders := s.echo.Group("/orders")
	orders.GET("", s.listOrders)
	orders.POST("", s.createOrder)
	orders.GET("/report", s.ordersReport)
	orders.PUT("/:id", s.updateOrder)
	orders.POST("/:id/cancel", s.cancelOrder)
}
