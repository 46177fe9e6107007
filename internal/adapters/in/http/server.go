// Package http implements the inbound HTTP adapter: an echo server backing
// the generated ServerInterface and mapping application errors onto the
// API's status codes.
package http

import (
	"errors"
	"net/http"

	"robodelivery/internal/core/application/usecases/commands"
	"robodelivery/internal/core/application/usecases/queries"
	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/generated/servers"
	"robodelivery/internal/pkg/errs"
	"robodelivery/internal/pkg/observability"

	"github.com/labstack/echo/v4"
)

// defaultRobotID identifies plan requests from robots that do not send the
// optional X-Robot-Id header.
const defaultRobotID = "robot"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestPlanHandler   commands.RequestPlanCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	createProductHandler commands.CreateProductCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestPlanHandler commands.RequestPlanCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		requestPlanHandler:      requestPlanHandler,
		completeOrderHandler:    completeOrderHandler,
		createOrderHandler:      createOrderHandler,
		createProductHandler:    createProductHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// GetDeliveryPlan handles GET /api/v1/delivery-plan - computes and commits a
// delivery plan for the requesting robot.
func (s *Server) GetDeliveryPlan(ctx echo.Context, params servers.GetDeliveryPlanParams) error {
	observability.PlansRequested.Inc()

	robotID := ctx.Request().Header.Get("X-Robot-Id")
	if robotID == "" {
		robotID = defaultRobotID
	}

	cmd, err := commands.NewRequestPlanCommand(robotID, params.Capacity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid plan request: " + err.Error(),
		})
	}

	plan, err := s.requestPlanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute delivery plan",
		})
	}

	observability.OrdersDispatched.Add(float64(len(plan.Orders)))
	observability.PlanConflicts.Add(float64(plan.Conflicts))

	response := servers.DeliveryPlan{
		RobotId:     plan.RobotID,
		TotalWeight: plan.TotalWeight,
		TotalValue:  plan.TotalValue,
		Conflicts:   plan.Conflicts,
		Orders:      make([]servers.PlannedOrder, len(plan.Orders)),
	}
	for i, po := range plan.Orders {
		response.Orders[i] = servers.PlannedOrder{
			OrderId:   po.OrderID.Bytes(),
			ProductId: po.ProductID.Bytes(),
			Quantity:  po.Quantity,
			Weight:    po.Weight,
			Value:     po.Value,
			CreatedAt: po.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/status - marks an order delivered.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var update servers.OrderStatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if update.NewStatus != servers.Completed {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Unsupported status: " + string(update.NewStatus),
		})
	}

	orderID, err := kernel.UUIDFromBytes(update.OrderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}

	observability.OrdersDelivered.Inc()
	return ctx.String(http.StatusOK, "status updated")
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	if newOrder.OrderId != nil {
		id, err := kernel.UUIDFromBytes(newOrder.OrderId[:])
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order ID: " + err.Error(),
			})
		}
		orderID = id
	}

	productID, err := kernel.UUIDFromBytes(newOrder.ProductId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, productID, newOrder.Quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Unknown product",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateProductCommand(newProduct.Name, newProduct.Price, newProduct.Weight)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register product",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves all non-delivered orders.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.PendingOrder{
			OrderId:   o.ID.Bytes(),
			ProductId: o.ProductID.Bytes(),
			Quantity:  o.Quantity,
			Weight:    o.Weight,
			Value:     o.Value,
			Status:    servers.PendingOrderStatus(o.Status),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
