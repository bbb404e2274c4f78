package http

import (
	"net/http"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/jwt"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "auth.userID"
	contextKeyRole   = "auth.role"
)

// Authenticate verifies the bearer token and stores the caller's identity in
// the request context. Requests without a valid token are rejected with 401.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return errorJSON(ctx, http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := jwt.Parse(s.jwtSecret, token)
		if err != nil {
			return errorJSON(ctx, http.StatusUnauthorized, "invalid or expired token")
		}

		userID, err := kernel.UUIDFromString(claims.Subject)
		if err != nil {
			return errorJSON(ctx, http.StatusUnauthorized, "invalid token subject")
		}

		role, err := user.ParseRole(claims.Role)
		if err != nil {
			return errorJSON(ctx, http.StatusUnauthorized, "invalid token role")
		}

		ctx.Set(contextKeyUserID, userID)
		ctx.Set(contextKeyRole, role)

		return next(ctx)
	}
}

// caller returns the authenticated identity stored by Authenticate.
func caller(ctx echo.Context) (kernel.UUID, user.Role) {
	userID, _ := ctx.Get(contextKeyUserID).(kernel.UUID)
	role, _ := ctx.Get(contextKeyRole).(user.Role)
	return userID, role
}

func isStaff(role user.Role) bool {
	return role == user.RoleAdmin || role == user.RoleOperator
}
