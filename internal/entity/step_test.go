package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepPrev(t *testing.T) {
	cases := []struct {
		from Step
		want Step
	}{
		{StepSender, StepLanding},
		{StepRecipient, StepSender},
		{StepItems, StepRecipient},
		{StepVendor, StepItems},
		{StepPayment, StepVendor},
		// Back skips the transient reconciliation state.
		{StepConfirmation, StepPayment},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			got, err := tc.from.Prev()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepPrevUnavailable(t *testing.T) {
	_, err := StepLanding.Prev()
	assert.ErrorIs(t, err, ErrNoPreviousStep)

	_, err = StepPaymentCallback.Prev()
	assert.ErrorIs(t, err, ErrNoPreviousStep)
}

func TestStepValid(t *testing.T) {
	assert.True(t, StepPayment.Valid())
	assert.False(t, Step("checkout").Valid())
}
