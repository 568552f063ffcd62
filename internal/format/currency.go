// Package format holds the display formatting used by the listing page.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const brlSymbol = "R$"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// BRL formats v as Brazilian Real, e.g. 1234.5 -> "R$ 1.234,50".
func BRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	amount := ptBR.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return sign + brlSymbol + " " + amount
}

// Area renders square meters the way the cards show them: "180m²", "72.5m²".
func Area(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "m²"
}
