package userrepo

import (
	"context"
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the user by primary key. Existing rows are updated in place,
// keeping their creation time.
func (r *GormUserRepository) Save(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var existing UserDTO
	err := r.db.WithContext(ctx).First(&existing, "id = ?", aggregate.ID().Bytes()).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		dto := fromDomain(aggregate)
		// a concurrent insert of the same id resolves to an update
		if err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		updateFromDomain(&existing, aggregate)
		if err = r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves the user registered under the given email.
// The lookup is case insensitive.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRole retrieves all users carrying the given role, oldest first.
func (r *GormUserRepository) GetByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("created_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// EmailExists reports whether a user is registered under the given email.
func (r *GormUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a user by ID. Deleting a missing user is a no-op.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes()).Error
}
