package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	q, err := queries.NewGetCustomerOrdersQuery(7)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, int64(7), q.CustomerID())

	_, err = queries.NewGetCustomerOrdersQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetCustomerOrdersQuery(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetRiderOrdersQuery(t *testing.T) {
	q, err := queries.NewGetRiderOrdersQuery(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.RiderID())

	_, err = queries.NewGetRiderOrdersQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.GetCustomerOrdersQuery{}.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetPendingOrdersQuery{}.Validate(), queries.ErrGetPendingOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetRiderOrdersQuery{}.Validate(), queries.ErrGetRiderOrdersQueryIsNotConstructed)
	assert.NoError(t, queries.NewGetPendingOrdersQuery().Validate())
}
