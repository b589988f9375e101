package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "canceled", order.Canceled.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("accepts %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("rejects unknown", func(t *testing.T) {
		require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    order.Status
		wantErr error
	}{
		{input: "pending", want: order.Pending},
		{input: "canceled", want: order.Canceled},
		{input: "completed", want: order.Completed},
		{input: " Completed ", want: order.Completed},
		{input: "PENDING", want: order.Pending},
		{input: "", wantErr: errs.ErrValueIsRequired},
		{input: "   ", wantErr: errs.ErrValueIsRequired},
		{input: "delivered", wantErr: errs.ErrValueIsInvalid},
		{input: "cancelled", wantErr: errs.ErrValueIsInvalid},
		{input: "unknown", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			got, err := order.ParseStatus(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, order.Unknown, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_RoundTripsString(t *testing.T) {
	for _, status := range order.Statuses() {
		parsed, err := order.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestParseStatus_ErrorListsAcceptedValues(t *testing.T) {
	_, err := order.ParseStatus("shipped")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"shipped" is not one of pending, canceled, completed`)
}
