package payment

import "errors"

var (
	ErrDeclined          = errors.New("tender does not cover the fee")
	ErrUnsupportedMethod = errors.New("no validator registered for method")
)

// Validator approves or rejects one tendered method against a computed fee.
// Validators are pure checks; they never mutate anything.
type Validator func(m Method, feeCents int64) error

// ValidatorRegistry selects the validator for a method by its variant tag.
type ValidatorRegistry struct {
	byKind map[Kind]Validator
}

// NewValidatorRegistry returns a registry with the built-in cash and card
// validators. Register swaps or extends them without touching callers.
func NewValidatorRegistry() *ValidatorRegistry {
	r := &ValidatorRegistry{byKind: make(map[Kind]Validator)}
	r.Register(KindCash, validateCash)
	r.Register(KindCard, validateCard)
	return r
}

func (r *ValidatorRegistry) Register(kind Kind, v Validator) {
	r.byKind[kind] = v
}

// Validate picks the validator for m's tag and applies it. Selection fails
// with ErrUnsupportedMethod before any validation runs.
func (r *ValidatorRegistry) Validate(m Method, feeCents int64) error {
	v, ok := r.byKind[m.Kind()]
	if !ok {
		return ErrUnsupportedMethod
	}
	return v(m, feeCents)
}

func validateCash(m Method, feeCents int64) error {
	cash, ok := m.(Cash)
	if !ok {
		return ErrUnsupportedMethod
	}
	if cash.TenderedCents < feeCents {
		return ErrDeclined
	}
	return nil
}

// validateCard is a stand-in for a gateway call: plausible-looking
// credentials are approved, anything else declined.
func validateCard(m Method, feeCents int64) error {
	card, ok := m.(Card)
	if !ok {
		return ErrUnsupportedMethod
	}
	if len(card.Number) >= 16 && len(card.CVV) == 3 {
		return nil
	}
	return ErrDeclined
}
