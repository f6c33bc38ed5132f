package usecase

import (
	"context"
	"time"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
)

// ReconcileOutcome tells the callback handler where the flow ended up
// after verification. Once a session was resolved the handler always
// redirects to the clean app URL, so the reference and step marker
// leave the visible URL exactly when the outcome is settled.
type ReconcileOutcome struct {
	SessionID string
	Success   bool
	Step      domain.Step
}

// Reconciler resolves the outcome of a payment attempt after the
// browser returns from the hosted gateway. Its behavior is derived
// purely from the callback URL contents (state token + reference), so
// a reload mid-verification deterministically re-runs it.
type Reconciler struct {
	store    SessionStore
	gateway  OrderGateway
	state    StateCodec
	notifier Notifier

	// displayDelay keeps the outcome notification on screen before
	// the flow moves on.
	displayDelay time.Duration
	sleep        func(ctx context.Context, d time.Duration)
}

func NewReconciler(store SessionStore, gateway OrderGateway, state StateCodec, notifier Notifier, displayDelay time.Duration) *Reconciler {
	return &Reconciler{
		store:        store,
		gateway:      gateway,
		state:        state,
		notifier:     notifier,
		displayDelay: displayDelay,
		sleep:        sleepCtx,
	}
}

// Resolve runs one reconciliation attempt. A missing reference, a
// failed verification, an HTTP failure and a transport error all
// collapse into the same "payment failed" outcome routing back to the
// payment step; only a verified success advances to confirmation.
func (r *Reconciler) Resolve(ctx context.Context, stateToken, reference string) (ReconcileOutcome, error) {
	sessionID, err := r.state.Decode(stateToken)
	if err != nil {
		return ReconcileOutcome{}, err
	}
	s, err := r.store.Get(ctx, sessionID)
	if err != nil {
		return ReconcileOutcome{}, err
	}

	// Enter the transient reconciliation step before anything that
	// can suspend; a reload lands here again via the same URL.
	if s.Step != domain.StepPaymentCallback {
		s.Step = domain.StepPaymentCallback
		if err := r.store.Put(ctx, s); err != nil {
			return ReconcileOutcome{}, err
		}
	}

	if reference == "" {
		return r.fail(ctx, s, "No payment reference found")
	}

	result, err := r.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		// Transport and HTTP errors are indistinguishable from an
		// explicit failure downstream of here.
		return r.fail(ctx, s, "Error verifying payment. Please try again.")
	}
	if !result.Success {
		return r.fail(ctx, s, "Payment verification failed. Please try again.")
	}

	paymentVerifications.WithLabelValues("success").Inc()
	r.notifier.Success(s.ID, "Payment done successfully")

	s.Receipt = result.Receipt
	s.PaymentPending = false
	if err := r.store.Put(ctx, s); err != nil {
		return ReconcileOutcome{}, err
	}

	r.sleep(ctx, r.displayDelay)

	s.Step = domain.StepConfirmation
	if err := r.store.Put(ctx, s); err != nil {
		return ReconcileOutcome{}, err
	}
	stepTransitions.WithLabelValues(string(domain.StepPaymentCallback), string(domain.StepConfirmation)).Inc()
	return ReconcileOutcome{SessionID: s.ID, Success: true, Step: domain.StepConfirmation}, nil
}

func (r *Reconciler) fail(ctx context.Context, s *FlowSession, message string) (ReconcileOutcome, error) {
	paymentVerifications.WithLabelValues("failure").Inc()
	r.notifier.Error(s.ID, message)

	s.PaymentPending = false
	if err := r.store.Put(ctx, s); err != nil {
		return ReconcileOutcome{}, err
	}

	r.sleep(ctx, r.displayDelay)

	// Back to payment for a retry; items/vendor/recipient untouched.
	s.Step = domain.StepPayment
	if err := r.store.Put(ctx, s); err != nil {
		return ReconcileOutcome{}, err
	}
	stepTransitions.WithLabelValues(string(domain.StepPaymentCallback), string(domain.StepPayment)).Inc()
	return ReconcileOutcome{SessionID: s.ID, Success: false, Step: domain.StepPayment}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
