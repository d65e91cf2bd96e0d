package guard_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When / Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type invoiceRef struct {
		number string
		guard  guard.ConstructorGuard
	}
	errRefNotConstructed := errors.New("invoiceRef must be created via newInvoiceRef")

	newInvoiceRef := func(number string) invoiceRef {
		return invoiceRef{number: number, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed value passes", func(t *testing.T) {
		ref := newInvoiceRef("100000001")
		require.NoError(t, ref.guard.Validate(errRefNotConstructed))
	})

	t.Run("copies keep the guard", func(t *testing.T) {
		ref := newInvoiceRef("100000002")
		copied := ref
		require.NoError(t, copied.guard.Validate(errRefNotConstructed))
	})

	t.Run("literal value fails", func(t *testing.T) {
		ref := invoiceRef{number: "100000003"}
		assert.Equal(t, errRefNotConstructed, ref.guard.Validate(errRefNotConstructed))
	})
}
