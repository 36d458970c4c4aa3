package account

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const currency = "USD"

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// Display renders an amount as dollars with thousands separators and exactly
// two decimals, e.g. $2,500.01.
func Display(amount decimal.Decimal) string {
	cents := amount.Round(2).Shift(2)
	if cents.GreaterThan(maxCents) || cents.LessThanOrEqual(minCents) {
		return displayLarge(amount)
	}

	return money.New(cents.IntPart(), currency).Display()
}

// displayLarge covers amounts whose cents overflow int64, in the same
// shape go-money produces.
func displayLarge(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(d)
	}
	b.WriteString(".")
	b.WriteString(frac)

	return b.String()
}
