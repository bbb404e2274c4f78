package http

import (
	"errors"
	"net/http"
	"time"

	"courier/internal/core/application/auth"
	"courier/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the account representation returned by the API. The
// password hash never leaves the server.
type UserProfile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// AuthResponse is the body returned by both auth endpoints.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

func profileFromUser(aggregate *user.User) UserProfile {
	return UserProfile{
		ID:        aggregate.ID().String(),
		Email:     aggregate.Email(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Phone:     aggregate.Phone(),
		Role:      aggregate.Role().String(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		LastLogin: aggregate.LastLoginAt(),
	}
}

// Register handles POST /auth/register. Duplicate emails and unknown roles
// are both rejected with 400.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	result, err := s.authService.Register(ctx.Request().Context(), auth.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AuthResponse{
		Token: result.Token,
		User:  profileFromUser(result.User),
	})
}

// Login handles POST /auth/login. Bad credentials map to 401 and inactive
// accounts to 403.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	result, err := s.authService.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return errorJSON(ctx, http.StatusUnauthorized, err.Error())
		case errors.Is(err, auth.ErrAccountInactive):
			return errorJSON(ctx, http.StatusForbidden, err.Error())
		default:
			return mapError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Token: result.Token,
		User:  profileFromUser(result.User),
	})
}
