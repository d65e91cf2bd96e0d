package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		lines := []commands.OrderLine{{SKU: "MUG-01", ProductType: order.ProductTypeSimple, Price: decimal.NewFromInt(3), Qty: 1}}

		cmd, err := commands.NewCreateOrderCommand(orderID, lines)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, lines, cmd.Lines())
	})

	t.Run("no lines and no id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, nil)

		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("invalid lines", func(t *testing.T) {
		tests := []struct {
			name string
			line commands.OrderLine
			want error
		}{
			{"unknown product type", commands.OrderLine{SKU: "MUG-01", ProductType: "gizmo", Price: decimal.NewFromInt(3), Qty: 1}, errs.ErrValueIsInvalid},
			{"zero qty", commands.OrderLine{SKU: "MUG-01", ProductType: order.ProductTypeSimple, Price: decimal.NewFromInt(3), Qty: 0}, errs.ErrValueIsInvalid},
			{"negative qty", commands.OrderLine{SKU: "MUG-01", ProductType: order.ProductTypeSimple, Price: decimal.NewFromInt(3), Qty: -2}, errs.ErrValueIsInvalid},
			{"negative price", commands.OrderLine{SKU: "MUG-01", ProductType: order.ProductTypeSimple, Price: decimal.NewFromInt(-1), Qty: 1}, errs.ErrValueIsInvalid},
			{"empty sku", commands.OrderLine{SKU: "", ProductType: order.ProductTypeSimple, Price: decimal.NewFromInt(3), Qty: 1}, errs.ErrValueIsRequired},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				valid := commands.OrderLine{SKU: "EBOOK-01", ProductType: order.ProductTypeVirtual, Price: decimal.NewFromInt(5), Qty: 1}

				cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), []commands.OrderLine{valid, tt.line})

				require.ErrorIs(t, err, tt.want)
				assert.Contains(t, err.Error(), "line 2")
				assert.Empty(t, cmd.Lines())
			})
		}
	})
}

func TestCommands_Validate_ZeroValue(t *testing.T) {
	reclassify := commands.ReclassifyOrdersCommand{}

	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"create", commands.CreateOrderCommand{}.Validate, commands.ErrCreateOrderCommandIsNotConstructed},
		{"invoice", commands.InvoiceOrderCommand{}.Validate, commands.ErrInvoiceOrderCommandIsNotConstructed},
		{"pay", commands.PayInvoiceCommand{}.Validate, commands.ErrPayInvoiceCommandIsNotConstructed},
		{"ship", commands.ShipOrderCommand{}.Validate, commands.ErrShipOrderCommandIsNotConstructed},
		{"refund", commands.RefundOrderCommand{}.Validate, commands.ErrRefundOrderCommandIsNotConstructed},
		{"action", commands.OrderActionCommand{}.Validate, commands.ErrOrderActionCommandIsNotConstructed},
		{"classify", commands.ClassifyOrderCommand{}.Validate, commands.ErrClassifyOrderCommandIsNotConstructed},
		{"reclassify", reclassify.Validate, commands.ErrReclassifyOrdersCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewShipOrderCommand_RequiresLines(t *testing.T) {
	_, err := commands.NewShipOrderCommand(kernel.NewUUID(), nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewShipOrderCommand_CopiesLines(t *testing.T) {
	lines := []order.ItemQty{{ItemID: kernel.NewUUID(), Qty: 1}}

	cmd, err := commands.NewShipOrderCommand(kernel.NewUUID(), lines)
	require.NoError(t, err)

	lines[0].Qty = 5
	assert.Equal(t, 1, cmd.Lines()[0].Qty)
}

func TestNewRefundOrderCommand_RejectsNonPositiveAmount(t *testing.T) {
	lines := []order.ItemQty{{ItemID: kernel.NewUUID(), Qty: 1}}

	_, err := commands.NewRefundOrderCommand(kernel.NewUUID(), lines, decimal.Zero)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewOrderActionCommand(t *testing.T) {
	t.Run("known action", func(t *testing.T) {
		cmd, err := commands.NewOrderActionCommand(kernel.NewUUID(), commands.OrderActionUnhold)

		require.NoError(t, err)
		assert.Equal(t, commands.OrderActionUnhold, cmd.Action())
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := commands.NewOrderActionCommand(kernel.NewUUID(), commands.OrderAction("archive"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewInvoiceOrderCommand_RequiresInvoiceID(t *testing.T) {
	_, err := commands.NewInvoiceOrderCommand(kernel.NewUUID(), kernel.UUID{}, false)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
