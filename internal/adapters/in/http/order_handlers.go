package http

import (
	"errors"
	"net/http"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body for POST /pedidos. Clients create orders
// for themselves; staff must name the client explicitly.
type CreateOrderRequest struct {
	TrackingNumber       string          `json:"tracking_number"`
	ClientID             string          `json:"client_id,omitempty"`
	EstimatedDeliveryAt  time.Time       `json:"estimated_delivery_at"`
	OriginAddressID      string          `json:"origin_address_id"`
	DestinationAddressID string          `json:"destination_address_id"`
	Priority             string          `json:"priority"`
	Weight               decimal.Decimal `json:"weight"`
	Dimensions           string          `json:"dimensions,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
}

// UpdateOrderRequest is the body for PUT /pedidos/:id. Absent fields are
// left unchanged.
type UpdateOrderRequest struct {
	Status              *string    `json:"status"`
	Priority            *string    `json:"priority"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at"`
}

// OrderView is the order representation returned by the API.
type OrderView struct {
	ID                  string          `json:"id"`
	TrackingNumber      string          `json:"tracking_number"`
	ClientID            string          `json:"client_id"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	Weight              decimal.Decimal `json:"weight"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	CarrierID           *string         `json:"carrier_id,omitempty"`
	EstimatedDeliveryAt time.Time       `json:"estimated_delivery_at"`
	DeliveredAt         *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func viewFromResponse(row queries.OrderResponse) OrderView {
	view := OrderView{
		ID:                  row.ID.String(),
		TrackingNumber:      row.TrackingNumber,
		ClientID:            row.ClientID.String(),
		Status:              row.Status,
		Priority:            row.Priority,
		Weight:              row.Weight,
		TotalAmount:         row.TotalAmount,
		EstimatedDeliveryAt: row.EstimatedDeliveryAt,
		DeliveredAt:         row.DeliveredAt,
		CreatedAt:           row.CreatedAt,
	}
	if row.CarrierID != nil {
		carrierID := row.CarrierID.String()
		view.CarrierID = &carrierID
	}
	return view
}

// CreateOrder handles POST /pedidos. Only clients and staff may create
// orders; everyone else gets 403.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, role := caller(ctx)
	if role == user.RoleCarrier {
		return errorJSON(ctx, http.StatusForbidden, "carriers cannot create orders")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	clientID := callerID
	if isStaff(role) {
		if req.ClientID == "" {
			return errorJSON(ctx, http.StatusBadRequest, "client_id is required")
		}
		parsed, err := kernel.UUIDFromString(req.ClientID)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "invalid client_id")
		}
		clientID = parsed
	}

	originID, err := kernel.UUIDFromString(req.OriginAddressID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid origin_address_id")
	}
	destinationID, err := kernel.UUIDFromString(req.DestinationAddressID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid destination_address_id")
	}

	priority, err := order.ParsePriority(req.Priority)
	if err != nil {
		return mapError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.TrackingNumber,
		clientID,
		req.EstimatedDeliveryAt,
		originID,
		destinationID,
		priority,
		req.Weight,
		req.Dimensions,
		req.TotalAmount,
	)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrTrackingNumberTaken) {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, callerID, role)
}

// ListOrders handles GET /pedidos. Clients see their own orders, carriers
// their assignments, staff the pending backlog.
func (s *Server) ListOrders(ctx echo.Context) error {
	callerID, role := caller(ctx)

	query, err := queries.NewListOrdersQuery(callerID, role)
	if err != nil {
		return mapError(ctx, err)
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]OrderView, len(rows))
	for i, row := range rows {
		response[i] = viewFromResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /pedidos/:id. Orders outside the caller's scope are
// reported as not found.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	callerID, role := caller(ctx)
	return s.respondWithOrder(ctx, http.StatusOK, orderID, callerID, role)
}

// TrackOrder handles GET /pedidos/tracking/:number.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewTrackOrderQuery(ctx.Param("number"))
	if err != nil {
		return mapError(ctx, err)
	}

	row, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewFromResponse(row))
}

// UpdateOrder handles PUT /pedidos/:id. Staff may change any field; the
// assigned carrier may change the status only.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	callerID, role := caller(ctx)

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	switch {
	case isStaff(role):
		// full update
	case role == user.RoleCarrier:
		if req.Priority != nil || req.EstimatedDeliveryAt != nil {
			return errorJSON(ctx, http.StatusForbidden, "carriers may only change the status")
		}
		// assignment check; orders not assigned to the caller read as absent
		if _, err = s.scopedOrder(ctx, orderID, callerID, role); err != nil {
			return mapError(ctx, err)
		}
	default:
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.ParseStatus(*req.Status)
		if parseErr != nil {
			return mapError(ctx, parseErr)
		}
		status = &parsed
	}

	var priority *order.Priority
	if req.Priority != nil {
		parsed, parseErr := order.ParsePriority(*req.Priority)
		if parseErr != nil {
			return mapError(ctx, parseErr)
		}
		priority = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, status, priority, req.EstimatedDeliveryAt)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, callerID, role)
}

// DeleteOrder handles DELETE /pedidos/:id. Admin only.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	_, role := caller(ctx)
	if role != user.RoleAdmin {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCarrier handles POST /pedidos/:id/assign. Staff only; picks the
// first available carrier able to take the order's weight.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	callerID, role := caller(ctx)
	if !isStaff(role) {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	cmd, err := commands.NewAssignCarrierCommand(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.assignCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotAssignable),
			errors.Is(err, commands.ErrNoAvailableCarriers):
			return errorJSON(ctx, http.StatusConflict, err.Error())
		default:
			return mapError(ctx, err)
		}
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, callerID, role)
}

func (s *Server) scopedOrder(ctx echo.Context, orderID, callerID kernel.UUID, role user.Role) (queries.OrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID, callerID, role)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID, callerID kernel.UUID, role user.Role) error {
	row, err := s.scopedOrder(ctx, orderID, callerID, role)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(code, viewFromResponse(row))
}
