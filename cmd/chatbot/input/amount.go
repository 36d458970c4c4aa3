package input

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parses a transaction amount, which has to be strictly positive.
func Amount(line string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Decimal{}, reject(ErrInvalidFormat, msgAmountFormat)
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, reject(ErrNonPositiveAmount, msgAmountPositive)
	}

	return amount, nil
}
