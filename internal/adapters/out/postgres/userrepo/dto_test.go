package userrepo

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInTestUser(t *testing.T) *user.User {
	t.Helper()

	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		"ana@example.com",
		"$2a$10$hashedpassword",
		"Ana",
		"Garcia",
		"+34600111222",
		user.RoleOperator,
	)
	require.NoError(t, err)

	aggregate.RecordLogin(time.Now().UTC())
	require.NoError(t, aggregate.ChangeStatus(user.StatusSuspended))

	return aggregate
}

func TestUserMappingRoundTrip(t *testing.T) {
	aggregate := loggedInTestUser(t)

	restored, err := toDomain(fromDomain(aggregate))
	require.NoError(t, err)

	assert.True(t, restored.ID().IsEqual(aggregate.ID()))
	assert.Equal(t, aggregate.Email(), restored.Email())
	assert.Equal(t, aggregate.PasswordHash(), restored.PasswordHash())
	assert.Equal(t, aggregate.FirstName(), restored.FirstName())
	assert.Equal(t, aggregate.LastName(), restored.LastName())
	assert.Equal(t, aggregate.Phone(), restored.Phone())
	assert.Equal(t, aggregate.Role(), restored.Role())
	assert.Equal(t, aggregate.Status(), restored.Status())

	require.NotNil(t, restored.LastLoginAt())
	assert.True(t, restored.LastLoginAt().Equal(*aggregate.LastLoginAt()))

	assert.True(t, restored.CreatedAt().Equal(aggregate.CreatedAt()))
	assert.True(t, restored.UpdatedAt().Equal(aggregate.UpdatedAt()))
}

func TestUserMappingRoundTripWithoutOptionalFields(t *testing.T) {
	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		"luis@example.com",
		"$2a$10$hashedpassword",
		"Luis",
		"Perez",
		"",
		user.RoleClient,
	)
	require.NoError(t, err)

	restored, err := toDomain(fromDomain(aggregate))
	require.NoError(t, err)

	assert.Empty(t, restored.Phone())
	assert.Nil(t, restored.LastLoginAt())
	assert.Equal(t, user.StatusActive, restored.Status())
}

func TestUserUpdateFromDomainKeepsIdentity(t *testing.T) {
	original := loggedInTestUser(t)
	dto := fromDomain(original)

	changed, err := user.NewUser(
		kernel.NewUUID(),
		"marta@example.com",
		"$2a$10$anotherhash",
		"Marta",
		"Diaz",
		"+34600999888",
		user.RoleAdmin,
	)
	require.NoError(t, err)

	updateFromDomain(&dto, changed)

	assert.Equal(t, original.ID().Bytes(), dto.ID)
	assert.True(t, dto.CreatedAt.Equal(original.CreatedAt()))

	assert.Equal(t, "marta@example.com", dto.Email)
	assert.Equal(t, "$2a$10$anotherhash", dto.PasswordHash)
	assert.Equal(t, "Marta", dto.FirstName)
	assert.Equal(t, "Diaz", dto.LastName)
	assert.Equal(t, "+34600999888", dto.Phone)
	assert.Equal(t, user.RoleAdmin.String(), dto.Role)
	assert.Equal(t, user.StatusActive.String(), dto.Status)
	assert.Nil(t, dto.LastLoginAt)
	assert.True(t, dto.UpdatedAt.Equal(changed.UpdatedAt()))
}
