package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/facturas-api/pkg/money"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		entrada string
		cents   int64
	}{
		{"15.50", 1550},
		{"0.01", 1},
		{"1000", 100000},
		{"666.66", 66666},
		{"0.1", 10},
		// Punto flotante clásico: 19.99 no es representable en binario, pero
		// decimal lo convierte exacto.
		{"19.99", 1999},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.entrada)
		require.NoError(t, err)
		assert.Equal(t, c.cents, money.ToCents(d), "entrada %s", c.entrada)
	}
}

func TestFromCents_Redondo(t *testing.T) {
	assert.Equal(t, "15.50", money.FromCents(1550).StringFixed(2))
	assert.Equal(t, "0.01", money.FromCents(1).StringFixed(2))
	assert.Equal(t, "0.00", money.FromCents(0).StringFixed(2))
}

// Ida y vuelta sin pérdida para todo monto de dos decimales.
func TestConversion_IdaYVuelta(t *testing.T) {
	for _, cents := range []int64{1, 99, 100, 1550, 34577, 100000} {
		assert.Equal(t, cents, money.ToCents(money.FromCents(cents)))
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		texto string
	}{
		{1550, "$15.50"},
		{123456, "$1,234.56"},
		{100, "$1.00"},
		{0, "$0.00"},
		{66666000, "$666,660.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.texto, money.FormatCents(c.cents))
	}
}
