package domain

import "errors"

// Step is one state of the checkout wizard. The order below is the
// only legal forward order; StepPaymentCallback is a transient
// reconciliation state and never a user-navigable destination.
type Step string

const (
	StepLanding         Step = "landing"
	StepSender          Step = "sender"
	StepRecipient       Step = "recipient"
	StepItems           Step = "items"
	StepVendor          Step = "vendor"
	StepPayment         Step = "payment"
	StepPaymentCallback Step = "payment-callback"
	StepConfirmation    Step = "confirmation"
)

var stepOrder = []Step{
	StepLanding,
	StepSender,
	StepRecipient,
	StepItems,
	StepVendor,
	StepPayment,
	StepPaymentCallback,
	StepConfirmation,
}

var ErrNoPreviousStep = errors.New("no previous step")

func (s Step) Valid() bool {
	for _, st := range stepOrder {
		if st == s {
			return true
		}
	}
	return false
}

// Prev returns the step Back navigates to. Back skips over the
// transient payment-callback state (confirmation backs into payment)
// and is unavailable from landing and from payment-callback itself.
func (s Step) Prev() (Step, error) {
	if s == StepLanding || s == StepPaymentCallback {
		return "", ErrNoPreviousStep
	}
	if s == StepConfirmation {
		return StepPayment, nil
	}
	for i, st := range stepOrder {
		if st == s && i > 0 {
			return stepOrder[i-1], nil
		}
	}
	return "", ErrNoPreviousStep
}
