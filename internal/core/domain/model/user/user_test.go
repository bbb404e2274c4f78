package user_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(
		kernel.NewUUID(),
		"ana.garcia@example.com",
		"$2a$10$abcdefghijklmnopqrstuv",
		"Ana",
		"Garcia",
		"+34600111222",
		role,
	)
	require.NoError(t, err)
	return u
}

func TestNewUserStartsActive(t *testing.T) {
	u := newTestUser(t, user.RoleClient)

	assert.Equal(t, user.StatusActive, u.Status())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLoginAt())
	assert.NoError(t, u.Validate())
}

func TestNewUserValidation(t *testing.T) {
	tests := map[string]struct {
		email     string
		hash      string
		firstName string
		lastName  string
		role      user.Role
	}{
		"empty email":      {"", "h", "Ana", "Garcia", user.RoleClient},
		"email without at": {"ana.example.com", "h", "Ana", "Garcia", user.RoleClient},
		"empty hash":       {"ana@example.com", "", "Ana", "Garcia", user.RoleClient},
		"empty first name": {"ana@example.com", "h", "", "Garcia", user.RoleClient},
		"empty last name":  {"ana@example.com", "h", "Ana", "", user.RoleClient},
		"unknown role":     {"ana@example.com", "h", "Ana", "Garcia", user.Role("root")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := user.NewUser(kernel.NewUUID(), test.email, test.hash,
				test.firstName, test.lastName, "", test.role)
			assert.Error(t, err)
		})
	}
}

func TestEmailIsNormalizedToLowerCase(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Ana.Garcia@Example.COM",
		"h", "Ana", "Garcia", "", user.RoleClient)

	require.NoError(t, err)
	assert.Equal(t, "ana.garcia@example.com", u.Email())
}

func TestFullName(t *testing.T) {
	u := newTestUser(t, user.RoleClient)
	assert.Equal(t, "Ana Garcia", u.FullName())
}

func TestRolePredicates(t *testing.T) {
	tests := map[user.Role]struct {
		isAdmin    bool
		canCreate  bool
		canDeliver bool
	}{
		user.RoleAdmin:    {true, true, true},
		user.RoleOperator: {false, false, false},
		user.RoleClient:   {false, true, false},
		user.RoleCarrier:  {false, false, true},
	}

	for role, expected := range tests {
		t.Run(role.String(), func(t *testing.T) {
			u := newTestUser(t, role)
			assert.Equal(t, expected.isAdmin, u.IsAdmin())
			assert.Equal(t, expected.canCreate, u.CanCreateOrders())
			assert.Equal(t, expected.canDeliver, u.CanDeliverOrders())
		})
	}
}

func TestChangeStatus(t *testing.T) {
	u := newTestUser(t, user.RoleClient)

	require.NoError(t, u.ChangeStatus(user.StatusSuspended))
	assert.False(t, u.IsActive())

	assert.Error(t, u.ChangeStatus(user.Status("banned")))
	assert.Equal(t, user.StatusSuspended, u.Status())
}

func TestRecordLogin(t *testing.T) {
	u := newTestUser(t, user.RoleCarrier)
	at := time.Now().UTC()

	u.RecordLogin(at)

	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, at, *u.LastLoginAt())
}

func TestRestoreUser(t *testing.T) {
	id := kernel.NewUUID()
	lastLogin := time.Now().UTC().Add(-time.Hour)
	createdAt := time.Now().UTC().Add(-48 * time.Hour)

	u, err := user.RestoreUser(id, "ana@example.com", "h", "Ana", "Garcia",
		"+34600111222", user.RoleOperator, user.StatusInactive,
		&lastLogin, createdAt, createdAt)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(u.ID()))
	assert.Equal(t, user.StatusInactive, u.Status())
	assert.False(t, u.IsActive())
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, lastLogin, *u.LastLoginAt())
}
