package business

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits stored for amounts.
const MoneyScale = 2

var (
	// MaxAmount is the largest value a NUMERIC(14,2) column holds.
	MaxAmount = decimal.RequireFromString("999999999999.99")

	// MaxVATRate bounds the VAT percentage.
	MaxVATRate = decimal.NewFromInt(100)

	hundred = decimal.NewFromInt(100)
)

var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrAmountTooLarge    = errors.New("amount exceeds the maximum storable value")
	ErrTooManyDecimals   = errors.New("amount has more than 2 decimal places")
)

// CheckAmount rejects values that would be silently truncated or overflow
// when stored.
func CheckAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return ErrTooManyDecimals
	}
	return nil
}

// CheckPositiveAmount is CheckAmount for values that must also be above zero.
func CheckPositiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return CheckAmount(amount)
}

// ComputeTax returns base * rate / 100 rounded half-up to a whole currency
// unit (FCFA has no minor unit).
func ComputeTax(base, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() || !base.IsPositive() {
		return decimal.Zero
	}
	return base.Mul(rate).Div(hundred).Round(0)
}

// Percentage returns part / whole * 100 rounded to 2 places, 0 when whole is 0.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(whole, MoneyScale)
}

// Average returns sum / count rounded half-up to 2 places, 0 when count is 0.
func Average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(count)), MoneyScale)
}
