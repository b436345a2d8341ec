package business

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "zero", amount: d("0")},
		{name: "whole", amount: d("1500")},
		{name: "two decimals", amount: d("12.34")},
		{name: "maximum", amount: d("999999999999.99")},
		{name: "negative", amount: d("-1"), wantErr: ErrNegativeAmount},
		{name: "too large", amount: d("1000000000000"), wantErr: ErrAmountTooLarge},
		{name: "three decimals", amount: d("1.005"), wantErr: ErrTooManyDecimals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAmount(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckPositiveAmount(t *testing.T) {
	assert.ErrorIs(t, CheckPositiveAmount(decimal.Zero), ErrAmountNotPositive)
	assert.ErrorIs(t, CheckPositiveAmount(d("-5")), ErrAmountNotPositive)
	assert.ErrorIs(t, CheckPositiveAmount(d("0.001")), ErrTooManyDecimals)
	assert.NoError(t, CheckPositiveAmount(d("0.01")))
}

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name string
		base string
		rate string
		want string
	}{
		{name: "no rate", base: "6800", rate: "0", want: "0"},
		{name: "eighteen percent", base: "10000", rate: "18", want: "1800"},
		{name: "whole result", base: "2750", rate: "18", want: "495"},
		{name: "rounds half up", base: "2775", rate: "18", want: "500"},
		{name: "half rounds up", base: "25", rate: "10", want: "3"},
		{name: "below half rounds down", base: "24", rate: "10", want: "2"},
		{name: "non-positive base", base: "0", rate: "18", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTax(d(tt.base), d(tt.rate))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestPercentageAndAverage(t *testing.T) {
	assert.True(t, Percentage(d("1"), d("3")).Equal(d("33.33")))
	assert.True(t, Percentage(d("2"), d("3")).Equal(d("66.67")))
	assert.True(t, Percentage(d("5"), decimal.Zero).IsZero())

	assert.True(t, Average(d("100"), 0).IsZero())
	assert.True(t, Average(d("100"), 3).Equal(d("33.33")))
	assert.True(t, Average(d("6800"), 2).Equal(d("3400")))
}
