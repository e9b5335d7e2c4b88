package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateRequest struct {
	From     string           `validate:"required,currency_code"`
	Rate     decimal.Decimal  `validate:"required,gt=0"`
	Discount decimal.Decimal  `validate:"gte=0,lte=100"`
	Override *decimal.Decimal `validate:"omitempty,gt=0"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterOn(v))
	return v
}

func TestCurrencyCode(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		code  string
		valid bool
	}{
		{"ARS", true},
		{"USD", true},
		{"usd", false},
		{"US", false},
		{"USDT", false},
		{"U$D", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := v.Var(tt.code, "currency_code")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDecimalRules(t *testing.T) {
	v := newValidator(t)
	negative := decimal.NewFromInt(-5)

	assert.NoError(t, v.Struct(rateRequest{From: "USD", Rate: decimal.RequireFromString("1050.25"), Discount: decimal.NewFromInt(10)}))
	assert.Error(t, v.Struct(rateRequest{From: "USD", Rate: decimal.Zero}), "zero rate must fail required")
	assert.Error(t, v.Struct(rateRequest{From: "USD", Rate: decimal.NewFromInt(-1)}))
	assert.Error(t, v.Struct(rateRequest{From: "USD", Rate: decimal.NewFromInt(1), Discount: decimal.NewFromInt(101)}))
	assert.Error(t, v.Struct(rateRequest{From: "USD", Rate: decimal.NewFromInt(1), Override: &negative}))
}
