package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency renders value with two decimals and thousands separators, e.g.
// 1234567.891 as "1,234,567.89". No currency symbol is added.
func Currency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	rounded := decimal.NewFromFloat(value).Round(2).InexactFloat64()
	if rounded == 0 {
		rounded = 0 // no "-0.00"
	}
	return printer.Sprintf("%.2f", rounded)
}
