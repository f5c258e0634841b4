// Package http provides the inbound REST adapter. Request and response
// shapes are hand-written structs; the adapter translates between JSON and
// the application's commands and queries.
package http

import (
	"errors"
	"net/http"
	"time"

	"comandas/internal/core/application/usecases/commands"
	"comandas/internal/core/application/usecases/queries"
	"comandas/internal/core/domain/model/kernel"
	"comandas/internal/core/domain/model/order"
	"comandas/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItemRequest is one order line in an intake request.
type NewItemRequest struct {
	ArticleID string `json:"article_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// NewOrderRequest is the intake request body.
type NewOrderRequest struct {
	Items    []NewItemRequest `json:"items"`
	Priority int              `json:"priority"`
}

// OrderCreatedResponse returns the id assigned to a new order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// NewStationRequest registers a kitchen station.
type NewStationRequest struct {
	Name        string `json:"name"`
	MaxCapacity int    `json:"max_capacity"`
}

// StationCreatedResponse returns the id assigned to a new station.
type StationCreatedResponse struct {
	ID string `json:"id"`
}

// ActiveOrderResponse is one row of GET /api/v1/orders/active.
type ActiveOrderResponse struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	StationID         *string   `json:"station_id,omitempty"`
	Priority          int       `json:"priority"`
	AdmissionAttempts int       `json:"admission_attempts"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StationLoadResponse is one row of GET /api/v1/stations/load.
type StationLoadResponse struct {
	StationID   string `json:"station_id"`
	Name        string `json:"name"`
	Occupied    int    `json:"occupied"`
	MaxCapacity int    `json:"max_capacity"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	createStationHandler    commands.CreateStationCommandHandler
	recordTransitionHandler commands.RecordOrderTransitionCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getStationLoadHandler  queries.GetStationLoadQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createStationHandler commands.CreateStationCommandHandler,
	recordTransitionHandler commands.RecordOrderTransitionCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStationLoadHandler queries.GetStationLoadQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		createStationHandler:    createStationHandler,
		recordTransitionHandler: recordTransitionHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getStationLoadHandler:   getStationLoadHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/stations", s.CreateStation)
	api.GET("/stations/load", s.GetStationLoad)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - takes in a new comanda.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		articleID, err := kernel.UUIDFromString(itemReq.ArticleID)
		if err != nil {
			return badRequest(ctx, "Invalid article id: "+itemReq.ArticleID)
		}

		item, err := order.NewItem(articleID, itemReq.Quantity, itemReq.Notes)
		if err != nil {
			return badRequest(ctx, "Invalid order line: "+err.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, items, req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all
// non-terminal orders. Reconnecting realtime clients use this to reconcile
// before following the event stream.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		var stationID *string
		if o.StationID != nil {
			sid := o.StationID.String()
			stationID = &sid
		}

		response[i] = ActiveOrderResponse{
			ID:                o.ID.String(),
			Status:            o.Status,
			StationID:         stationID,
			Priority:          o.Priority,
			AdmissionAttempts: o.AdmissionAttempts,
			CreatedAt:         o.CreatedAt,
			UpdatedAt:         o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	return s.transition(ctx, order.Ready)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, order.Delivered)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, order.Cancelled)
}

func (s *Server) transition(ctx echo.Context, target order.Status) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRecordOrderTransitionCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid transition: "+err.Error())
	}

	if handleErr := s.recordTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		// Anything else at this point is a lifecycle violation, e.g. trying
		// to cancel an order that is already plated.
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateStation handles POST /api/v1/stations - registers a kitchen station.
func (s *Server) CreateStation(ctx echo.Context) error {
	var req NewStationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stationID := kernel.NewUUID()
	cmd, err := commands.NewCreateStationCommand(stationID, req.Name, req.MaxCapacity)
	if err != nil {
		return badRequest(ctx, "Invalid station data: "+err.Error())
	}

	if handleErr := s.createStationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create station",
		})
	}

	return ctx.JSON(http.StatusCreated, StationCreatedResponse{ID: stationID.String()})
}

// GetStationLoad handles GET /api/v1/stations/load - retrieves stations with
// their current occupancy.
func (s *Server) GetStationLoad(ctx echo.Context) error {
	query := queries.NewGetStationLoadQuery()

	stations, err := s.getStationLoadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve station load",
		})
	}

	response := make([]StationLoadResponse, len(stations))
	for i, st := range stations {
		response[i] = StationLoadResponse{
			StationID:   st.StationID.String(),
			Name:        st.Name,
			Occupied:    st.Occupied,
			MaxCapacity: st.MaxCapacity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
