// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Emails carry a unique index and are stored lower case.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Phone        string
	Role         string `gorm:"index;not null"`
	Status       string `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		Status:       aggregate.Status().String(),
		LastLoginAt:  aggregate.LastLoginAt(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// updateFromDomain copies the aggregate's current state onto an existing row,
// leaving identity and creation time untouched.
func updateFromDomain(dto *UserDTO, aggregate *user.User) {
	dto.Email = aggregate.Email()
	dto.PasswordHash = aggregate.PasswordHash()
	dto.FirstName = aggregate.FirstName()
	dto.LastName = aggregate.LastName()
	dto.Phone = aggregate.Phone()
	dto.Role = aggregate.Role().String()
	dto.Status = aggregate.Status().String()
	dto.LastLoginAt = aggregate.LastLoginAt()
	dto.UpdatedAt = aggregate.UpdatedAt()
}

// toDomain reconstructs the aggregate from a database row using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		dto.Phone,
		user.Role(dto.Role),
		user.Status(dto.Status),
		dto.LastLoginAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
