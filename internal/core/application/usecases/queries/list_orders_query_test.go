package queries_test

import (
	"testing"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	query, err := queries.NewListOrdersQuery(kernel.NewUUID(), user.RoleClient)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, user.RoleClient, query.Role())
}

func TestNewListOrdersQuery_Validation(t *testing.T) {
	_, err := queries.NewListOrdersQuery(kernel.UUID{}, user.RoleClient)
	assert.Error(t, err)

	_, err = queries.NewListOrdersQuery(kernel.NewUUID(), user.Role("root"))
	assert.Error(t, err)

	query := queries.ListOrdersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewListUsersQuery(t *testing.T) {
	query := queries.NewListUsersQuery("carrier")

	assert.NoError(t, query.Validate())
	assert.Equal(t, "carrier", query.RoleFilter())
}

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID, requesterID, user.RoleCarrier)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
	assert.True(t, query.RequesterID().IsEqual(requesterID))
	assert.Equal(t, user.RoleCarrier, query.Role())
}

func TestNewGetOrderQuery_Validation(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID(), user.RoleAdmin)
	assert.Error(t, err)

	_, err = queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), user.Role("root"))
	assert.Error(t, err)

	query := queries.GetOrderQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetUserQuery(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetUserQuery(userID)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(userID))

	_, err = queries.NewGetUserQuery(kernel.UUID{})
	assert.Error(t, err)
}

func TestNewTrackOrderQuery(t *testing.T) {
	query, err := queries.NewTrackOrderQuery("TRK-2024-0001")

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, "TRK-2024-0001", query.TrackingNumber())

	_, err = queries.NewTrackOrderQuery("")
	assert.Error(t, err)
}
