//go:build unit

package payment_test

import (
	"testing"

	"parking-facility/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestValidatorRegistry(t *testing.T) {
	registry := payment.NewValidatorRegistry()

	cases := []struct {
		name     string
		method   payment.Method
		feeCents int64
		errIs    error
	}{
		{
			name:     "cash covering the fee exactly",
			method:   payment.Cash{TenderedCents: 500},
			feeCents: 500,
		},
		{
			name:     "cash above the fee",
			method:   payment.Cash{TenderedCents: 1000},
			feeCents: 500,
		},
		{
			name:     "cash short of the fee declined",
			method:   payment.Cash{TenderedCents: 499},
			feeCents: 500,
			errIs:    payment.ErrDeclined,
		},
		{
			name:     "card with plausible credentials",
			method:   payment.Card{Number: "4111111111111111", CVV: "123", Expiry: "12/27"},
			feeCents: 2500,
		},
		{
			name:     "card number too short declined",
			method:   payment.Card{Number: "41111111", CVV: "123", Expiry: "12/27"},
			feeCents: 2500,
			errIs:    payment.ErrDeclined,
		},
		{
			name:     "card cvv wrong length declined",
			method:   payment.Card{Number: "4111111111111111", CVV: "12", Expiry: "12/27"},
			feeCents: 2500,
			errIs:    payment.ErrDeclined,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := registry.Validate(tc.method, tc.feeCents)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatorRegistryRegistration(t *testing.T) {
	t.Run("unregistered kind fails at selection time", func(t *testing.T) {
		var empty payment.ValidatorRegistry

		err := empty.Validate(payment.Cash{TenderedCents: 100}, 100)
		assert.ErrorIs(t, err, payment.ErrUnsupportedMethod)
	})

	t.Run("validator is swappable per kind", func(t *testing.T) {
		registry := payment.NewValidatorRegistry()
		registry.Register(payment.KindCard, func(_ payment.Method, _ int64) error {
			return payment.ErrDeclined
		})

		err := registry.Validate(payment.Card{Number: "4111111111111111", CVV: "123", Expiry: "12/27"}, 100)
		assert.ErrorIs(t, err, payment.ErrDeclined)

		// Cash path untouched by the card swap
		assert.NoError(t, registry.Validate(payment.Cash{TenderedCents: 100}, 100))
	})
}
