// Package http exposes the application over a REST API. Handlers translate
// requests into commands and queries and map application errors onto HTTP
// status codes; they hold no business logic of their own.
package http

import (
	"errors"
	"net/http"

	"courier/internal/core/application/auth"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	authService *auth.Service
	jwtSecret   string

	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	assignCarrierHandler commands.AssignCarrierCommandHandler
	updateUserHandler    commands.UpdateUserCommandHandler
	deleteUserHandler    commands.DeleteUserCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	trackOrderHandler queries.TrackOrderQueryHandler
	listUsersHandler  queries.ListUsersQueryHandler
	getUserHandler    queries.GetUserQueryHandler
}

// NewServer creates an HTTP server with the required handlers. The secret is
// used to verify bearer tokens and must match the one the auth service signs
// with.
func NewServer(
	authService *auth.Service,
	jwtSecret string,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	assignCarrierHandler commands.AssignCarrierCommandHandler,
	updateUserHandler commands.UpdateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
) *Server {
	return &Server{
		authService:          authService,
		jwtSecret:            jwtSecret,
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		deleteOrderHandler:   deleteOrderHandler,
		assignCarrierHandler: assignCarrierHandler,
		updateUserHandler:    updateUserHandler,
		deleteUserHandler:    deleteUserHandler,
		listOrdersHandler:    listOrdersHandler,
		getOrderHandler:      getOrderHandler,
		trackOrderHandler:    trackOrderHandler,
		listUsersHandler:     listUsersHandler,
		getUserHandler:       getUserHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Everything
// except /health and /auth/* requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/auth/register", s.Register)
	e.POST("/auth/login", s.Login)

	api := e.Group("", s.Authenticate)

	api.GET("/users", s.ListUsers)
	api.GET("/users/me", s.GetCurrentUser)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	api.POST("/pedidos", s.CreateOrder)
	api.GET("/pedidos", s.ListOrders)
	api.GET("/pedidos/tracking/:number", s.TrackOrder)
	api.GET("/pedidos/:id", s.GetOrder)
	api.PUT("/pedidos/:id", s.UpdateOrder)
	api.DELETE("/pedidos/:id", s.DeleteOrder)
	api.POST("/pedidos/:id/assign", s.AssignCarrier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// mapError translates application errors onto status codes: missing objects
// map to 404 and validation failures to 400 with the original message, since
// validation messages enumerate the accepted values.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal server error")
	}
}
