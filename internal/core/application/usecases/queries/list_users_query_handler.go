package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler reads account rows for the administrative listing.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for account listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by creation time, oldest
// first.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("users").
		Select("id, email, first_name, last_name, phone, role, status, created_at").
		Order("created_at ASC")

	if query.RoleFilter() != "" {
		tx = tx.Where("role = ?", query.RoleFilter())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)
	for rows.Next() {
		var (
			row UserResponse
			id  uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&row.Email,
			&row.FirstName,
			&row.LastName,
			&row.Phone,
			&row.Role,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		users = append(users, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
