package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// UpdateUserRequest is the body for PUT /users/:id. Absent fields are left
// unchanged; empty name strings likewise.
type UpdateUserRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}

func profileFromResponse(row queries.UserResponse) UserProfile {
	return UserProfile{
		ID:        row.ID.String(),
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
		Role:      row.Role,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

// ListUsers handles GET /users. Staff only; an optional role query parameter
// narrows the listing.
func (s *Server) ListUsers(ctx echo.Context) error {
	_, role := caller(ctx)
	if !isStaff(role) {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	query := queries.NewListUsersQuery(ctx.QueryParam("role"))

	rows, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]UserProfile, len(rows))
	for i, row := range rows {
		response[i] = profileFromResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	callerID, _ := caller(ctx)
	return s.respondWithUser(ctx, callerID)
}

// GetUser handles GET /users/:id. Accounts are visible to themselves and to
// staff.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid user id")
	}

	callerID, role := caller(ctx)
	if !isStaff(role) && !callerID.IsEqual(userID) {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	return s.respondWithUser(ctx, userID)
}

func (s *Server) respondWithUser(ctx echo.Context, userID kernel.UUID) error {
	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return mapError(ctx, err)
	}

	row, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profileFromResponse(row))
}

// UpdateUser handles PUT /users/:id. Accounts may rename themselves; role
// and status changes are reserved for admins.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid user id")
	}

	callerID, callerRole := caller(ctx)
	if callerRole != user.RoleAdmin && !callerID.IsEqual(userID) {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	var req UpdateUserRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid request body")
	}

	if (req.Role != nil || req.Status != nil) && callerRole != user.RoleAdmin {
		return errorJSON(ctx, http.StatusForbidden, "only admins may change role or status")
	}

	var role *user.Role
	if req.Role != nil {
		parsed, parseErr := user.ParseRole(*req.Role)
		if parseErr != nil {
			return mapError(ctx, parseErr)
		}
		role = &parsed
	}

	var status *user.Status
	if req.Status != nil {
		parsed, parseErr := user.ParseStatus(*req.Status)
		if parseErr != nil {
			return mapError(ctx, parseErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.FirstName, req.LastName, req.Phone, role, status)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.updateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithUser(ctx, userID)
}

// DeleteUser handles DELETE /users/:id. Admin only.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "invalid user id")
	}

	_, callerRole := caller(ctx)
	if callerRole != user.RoleAdmin {
		return errorJSON(ctx, http.StatusForbidden, "insufficient permissions")
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
