package client_test

import (
	"testing"

	"courier/internal/core/domain/model/client"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndividualClient(t *testing.T) {
	c, err := client.NewClient(kernel.NewUUID(), kernel.NewUUID(),
		client.TypeIndividual, "", "")

	require.NoError(t, err)
	assert.False(t, c.IsCompany())
	assert.NoError(t, c.Validate())
}

func TestCompanyClientRequiresTaxID(t *testing.T) {
	_, err := client.NewClient(kernel.NewUUID(), kernel.NewUUID(),
		client.TypeCompany, "", "Acme SL")
	assert.ErrorIs(t, err, client.ErrTaxIDIsRequired)

	c, err := client.NewClient(kernel.NewUUID(), kernel.NewUUID(),
		client.TypeCompany, "B12345678", "Acme SL")
	require.NoError(t, err)
	assert.True(t, c.IsCompany())
	assert.Equal(t, "B12345678", c.TaxID())
}

func TestParseType(t *testing.T) {
	ct, err := client.ParseType("company")
	require.NoError(t, err)
	assert.Equal(t, client.TypeCompany, ct)

	_, err = client.ParseType("government")
	assert.Error(t, err)
}
