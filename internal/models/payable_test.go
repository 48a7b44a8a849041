package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayable_ToView_ResolvesLabels(t *testing.T) {
	due := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	p := &Payable{
		ID:           7,
		DueDate:      &due,
		Amount:       decimal.RequireFromString("150.75"),
		Status:       StatusPending,
		Supplier:     &Supplier{ID: 1, CompanyName: "", TradeName: "Padaria Sol"},
		Bank:         &Bank{ID: 2, Name: "Itaú"},
		CostCenter:   &CostCenter{ID: 3, Description: "Insumos"},
		DocumentType: nil,
	}

	v := p.ToView()
	assert.Equal(t, uint(7), v.ID)
	assert.Equal(t, "Padaria Sol", v.SupplierName)
	assert.Equal(t, "Itaú", v.Bank)
	assert.Equal(t, "Insumos", v.CostCenter)
	assert.Empty(t, v.DocumentType)
	assert.Equal(t, SingleInstallment, v.InstallmentLabel())
	assert.True(t, v.Amount.Equal(decimal.RequireFromString("150.75")))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusPaid, NormalizeStatus(" pago "))
	assert.Equal(t, StatusCancelled, NormalizeStatus("CANCELADO"))
	assert.Equal(t, "Em análise", NormalizeStatus("Em análise"))
}

func TestTags_ScanAndValue(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan("urgente, fixo,,  "))
	assert.Equal(t, Tags{"urgente", "fixo"}, tags)

	v, err := tags.Value()
	require.NoError(t, err)
	assert.Equal(t, "urgente,fixo", v)
	assert.Equal(t, "urgente, fixo", tags.Join())

	require.NoError(t, tags.Scan([]byte("a")))
	assert.Equal(t, Tags{"a"}, tags)

	require.NoError(t, tags.Scan(nil))
	assert.Nil(t, tags)

	assert.Error(t, tags.Scan(42))
}

func TestFormatTaxID(t *testing.T) {
	assert.Equal(t, "123.456.789-01", FormatTaxID("12345678901"))
	assert.Equal(t, "12.345.678/0001-90", FormatTaxID("12345678000190"))
	assert.Equal(t, "abc", FormatTaxID("abc"))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 100,00", FormatBRL(decimal.NewFromInt(100)))
	assert.Equal(t, "R$ 1.000.000,10", FormatBRL(decimal.RequireFromString("1000000.1")))
	assert.Equal(t, "-R$ 5,50", FormatBRL(decimal.RequireFromString("-5.5")))
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, OrPlaceholder("  "))
	assert.Equal(t, "x", OrPlaceholder("x"))
}
