package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("rider not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type rider struct {
		id    int64
		guard guard.ConstructorGuard
	}
	errRider := errors.New("rider must be created via newRider")

	newRider := func(id int64) (rider, error) {
		if id <= 0 {
			return rider{}, errors.New("id must be positive")
		}
		return rider{id: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		r, err := newRider(7)
		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRider))
		assert.Equal(t, int64(7), r.id)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		r, err := newRider(0)
		require.Error(t, err)
		require.ErrorIs(t, r.guard.Validate(errRider), errRider)
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		r, err := newRider(1)
		require.NoError(t, err)
		copied := r
		require.NoError(t, copied.guard.Validate(errRider))
	})
}
