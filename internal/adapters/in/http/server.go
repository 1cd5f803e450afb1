package http

import (
	"net/http"

	"repuestos/internal/core/application/usecases/commands"
	"repuestos/internal/core/application/usecases/queries"
	"repuestos/internal/core/domain/model/kernel"
	"repuestos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the sales order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	listCustomersHandler queries.ListCustomersQueryHandler
	listProductsHandler  queries.ListProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listCustomersHandler queries.ListCustomersQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		confirmOrderHandler:  confirmOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		listCustomersHandler: listCustomersHandler,
		listProductsHandler:  listProductsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/customers", s.ListCustomers)
	api.GET("/products", s.ListProducts)
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), request.toPayload())
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrder handles PUT /api/v1/orders/:id - overwrites a draft order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, request.toPayload())
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - commits a draft order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(confirmed))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - voids an order with a reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request CancelRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reason, err := order.ParseCancelReason(request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, reason, request.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailToResponse(detail))
}

// ListOrders handles GET /api/v1/orders - retrieves order summaries.
// Cancelled orders are hidden unless includeCancelled=true is passed.
func (s *Server) ListOrders(ctx echo.Context) error {
	includeCancelled := ctx.QueryParam("includeCancelled") == "true"
	query := queries.NewListOrdersQuery(includeCancelled)

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesToResponse(summaries))
}

// ListCustomers handles GET /api/v1/customers - retrieves the customer catalog.
func (s *Server) ListCustomers(ctx echo.Context) error {
	query := queries.NewListCustomersQuery()

	customers, err := s.listCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		response = append(response, CustomerResponse{
			ID:   customer.ID,
			Name: customer.Name,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListProducts handles GET /api/v1/products - retrieves the product catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	query := queries.NewListProductsQuery()

	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, ProductResponse{
			ID:        product.ID,
			Code:      product.Code,
			Name:      product.Name,
			BasePrice: currency(product.BasePrice),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
