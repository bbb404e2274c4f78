package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler reads one account row.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single account lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	var (
		row UserResponse
		id  uuid.UUID
	)

	err := h.db.WithContext(ctx).Table("users").
		Select("id, email, first_name, last_name, phone, role, status, created_at").
		Where("id = ?", query.UserID().Bytes()).
		Row().
		Scan(
			&id,
			&row.Email,
			&row.FirstName,
			&row.LastName,
			&row.Phone,
			&row.Role,
			&row.Status,
			&row.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
		}
		return UserResponse{}, err
	}

	if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return UserResponse{}, err
	}

	return row, nil
}
