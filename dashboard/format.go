package dashboard

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// FormatPrice renders a USD price. Sub-dollar prices keep six decimals so
// small caps stay readable.
func FormatPrice(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Abs().LessThan(one) {
		return "$" + d.Round(6).String()
	}
	return "$" + humanize.CommafWithDigits(d.Round(2).InexactFloat64(), 2)
}

// FormatLarge renders market caps and volumes as whole dollars.
func FormatLarge(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatCompact renders an axis label such as "$1.2T".
func FormatCompact(v float64) string {
	value, prefix := humanize.ComputeSI(v)
	switch prefix {
	case "G":
		prefix = "B"
	case "m", "µ", "n", "p", "f", "a", "z", "y":
		return FormatPrice(v)
	}
	return "$" + humanize.FtoaWithDigits(value, 2) + prefix
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.Itoa(*v)
}

func formatOptionalString(v *string) string {
	if v == nil || *v == "" {
		return "n/a"
	}
	return *v
}
