package components

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Upper upper-cases s with the casing rules of tag, so Turkish eyebrows
// keep their dotted capital İ.
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(s)
}

// FormatNumber renders v with exactly decimals fraction digits and the
// grouping and decimal separators of tag.
func FormatNumber(tag language.Tag, v float64, decimals int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatInt renders n with the grouping separators of tag.
func FormatInt(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(n))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
