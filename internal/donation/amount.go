package donation

import (
	"strconv"
	"strings"
)

const (
	// DefaultAmount is the tree count preselected on mount.
	DefaultAmount = 5
	// MinAmount is the smallest donation accepted.
	MinAmount = 1
)

// DefaultQuickPicks are the one-click amounts offered next to the free input.
var DefaultQuickPicks = []int{1, 3, 5, 10, 20}

// Amount is a number of trees to donate. It is always at least MinAmount.
type Amount int

// Clamp raises n to MinAmount.
func Clamp(n int) Amount {
	if n < MinAmount {
		return MinAmount
	}
	return Amount(n)
}

// Parse reads a free-text amount. Empty or non-numeric input becomes MinAmount.
func Parse(raw string) Amount {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return MinAmount
	}
	return Clamp(n)
}

// ParseOr reads an amount, falling back to def when raw is empty.
func ParseOr(raw string, def Amount) Amount {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return Parse(raw)
}

// Pick selects a quick-pick amount.
func Pick(q int) Amount {
	return Clamp(q)
}

// Int returns the amount as an int.
func (a Amount) Int() int {
	return int(a)
}

// String returns the decimal form.
func (a Amount) String() string {
	return strconv.Itoa(int(a))
}

// IsPicked reports whether the amount matches the quick pick q.
func (a Amount) IsPicked(q int) bool {
	return int(a) == q
}
