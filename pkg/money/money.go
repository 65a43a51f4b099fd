// Package money centraliza la conversión entre unidades mayores (dólares) y
// unidades menores (centavos). Los montos se persisten siempre como enteros de
// centavos para evitar errores de redondeo de punto flotante.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// ToCents convierte un monto en unidades mayores a centavos (entero).
// La capa de presentación limita la entrada a 2 decimales; si llegan más,
// se trunca el resultado al centavo.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}

// FromCents convierte centavos a unidades mayores con precisión exacta.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// FormatCents renderiza centavos como moneda legible ("$1,550.50") con
// separadores de miles según el locale en-US del dashboard.
func FormatCents(cents int64) string {
	major, _ := FromCents(cents).Float64()
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%v", number.Decimal(major,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
