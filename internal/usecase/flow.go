package usecase

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/google/uuid"
)

var (
	ErrWrongStep = errors.New("operation not valid for current step")
)

// Flow owns the wizard state machine. Every transition is a named,
// guarded operation; a validation failure returns field errors and
// leaves both the step and the draft untouched.
type Flow struct {
	store SessionStore
}

func NewFlow(store SessionStore) *Flow {
	return &Flow{store: store}
}

// Start opens a new session directly at the sender step. The landing
// page's two entry actions differ only in the self-flow flag.
func (f *Flow) Start(ctx context.Context, selfFlow bool) (*FlowSession, error) {
	s := &FlowSession{
		ID:    uuid.NewString(),
		Step:  domain.StepSender,
		Draft: domain.EmptyDraft().WithSelfFlow(selfFlow),
	}
	if err := f.store.Put(ctx, s); err != nil {
		return nil, fmt.Errorf("start flow: %w", err)
	}
	stepTransitions.WithLabelValues(string(domain.StepLanding), string(domain.StepSender)).Inc()
	return s, nil
}

// Get loads a session and re-applies the payment entry guard: a
// session parked on payment with an empty draft is rolled back to
// items before anyone can render it.
func (f *Flow) Get(ctx context.Context, id string) (*FlowSession, error) {
	s, err := f.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Step == domain.StepPayment && !s.Draft.ReadyForPayment() {
		f.forceItems(ctx, s)
	}
	return s, nil
}

func (f *Flow) SubmitSender(ctx context.Context, id string, sender domain.SenderInfo) (*FlowSession, domain.FieldErrors, error) {
	s, err := f.at(ctx, id, domain.StepSender)
	if err != nil {
		return nil, nil, err
	}
	if errs := sender.Validate(); !errs.OK() {
		return s, errs, nil
	}
	draft := s.Draft.WithSender(sender)
	if draft.SelfFlow {
		draft = draft.WithRecipient(mirrorSender(draft.Recipient, sender))
	}
	s.Draft = draft
	return f.advance(ctx, s, domain.StepRecipient)
}

func (f *Flow) SubmitRecipient(ctx context.Context, id string, rec domain.RecipientInfo) (*FlowSession, domain.FieldErrors, error) {
	s, err := f.at(ctx, id, domain.StepRecipient)
	if err != nil {
		return nil, nil, err
	}
	if s.Draft.SelfFlow {
		// Contact fields are read-only in self-flow; whatever the
		// client sent, the sender's details win.
		rec = mirrorSender(rec, s.Draft.Sender)
	}
	if errs := rec.Validate(); !errs.OK() {
		return s, errs, nil
	}
	s.Draft = s.Draft.WithRecipient(rec)
	return f.advance(ctx, s, domain.StepItems)
}

// AddItem add-or-increments without advancing; the items page calls
// it once per "Add to basket".
func (f *Flow) AddItem(ctx context.Context, id string, item domain.GiftItem, qty int) (*FlowSession, error) {
	s, err := f.at(ctx, id, domain.StepItems)
	if err != nil {
		return nil, err
	}
	draft, err := s.Draft.AddOrIncrementItem(item, qty)
	if err != nil {
		return s, err
	}
	s.Draft = draft
	return s, f.store.Put(ctx, s)
}

// SetItems replaces the basket wholesale (quantity edits, removals).
func (f *Flow) SetItems(ctx context.Context, id string, items []domain.OrderItem) (*FlowSession, error) {
	s, err := f.at(ctx, id, domain.StepItems)
	if err != nil {
		return nil, err
	}
	for _, oi := range items {
		if oi.Quantity < domain.MinQuantity || oi.Quantity > domain.MaxQuantity {
			return s, domain.ErrQuantityOutOfRange
		}
	}
	s.Draft = s.Draft.WithItems(items)
	return s, f.store.Put(ctx, s)
}

func (f *Flow) SubmitItems(ctx context.Context, id string) (*FlowSession, error) {
	s, err := f.at(ctx, id, domain.StepItems)
	if err != nil {
		return nil, err
	}
	if len(s.Draft.Items) == 0 {
		return s, domain.ErrNoItems
	}
	s, _, err = f.advance(ctx, s, domain.StepVendor)
	return s, err
}

func (f *Flow) SubmitVendor(ctx context.Context, id string, vendor domain.Vendor) (*FlowSession, error) {
	s, err := f.at(ctx, id, domain.StepVendor)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return s, domain.ErrNoVendor
	}
	s.Draft = s.Draft.WithVendor(vendor)
	if !s.Draft.ReadyForPayment() {
		// Items emptied out from under us; payment may not render.
		f.forceItems(ctx, s)
		return s, nil
	}
	s, _, err = f.advance(ctx, s, domain.StepPayment)
	return s, err
}

// Back is pure navigation: no validation, draft retained.
func (f *Flow) Back(ctx context.Context, id string) (*FlowSession, error) {
	s, err := f.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev, err := s.Step.Prev()
	if err != nil {
		return s, err
	}
	s, _, err = f.advance(ctx, s, prev)
	return s, err
}

// Reset restores the empty draft at landing; used when starting a new
// order after confirmation.
func (f *Flow) Reset(ctx context.Context, id string) (*FlowSession, error) {
	s, err := f.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Draft = domain.EmptyDraft()
	s.Step = domain.StepLanding
	s.PaymentPending = false
	s.Receipt = nil
	return s, f.store.Put(ctx, s)
}

func (f *Flow) at(ctx context.Context, id string, step domain.Step) (*FlowSession, error) {
	s, err := f.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Step != step {
		return nil, fmt.Errorf("%w: at %s, expected %s", ErrWrongStep, s.Step, step)
	}
	return s, nil
}

func (f *Flow) advance(ctx context.Context, s *FlowSession, to domain.Step) (*FlowSession, domain.FieldErrors, error) {
	from := s.Step
	s.Step = to
	if err := f.store.Put(ctx, s); err != nil {
		return nil, nil, err
	}
	stepTransitions.WithLabelValues(string(from), string(to)).Inc()
	return s, nil, nil
}

func (f *Flow) forceItems(ctx context.Context, s *FlowSession) {
	from := s.Step
	s.Step = domain.StepItems
	if err := f.store.Put(ctx, s); err == nil {
		stepTransitions.WithLabelValues(string(from), string(domain.StepItems)).Inc()
	}
}

// mirrorSender copies sender contact fields over the recipient,
// keeping the delivery fields the user already typed.
func mirrorSender(rec domain.RecipientInfo, sender domain.SenderInfo) domain.RecipientInfo {
	rec.Email = sender.Email
	rec.FullName = sender.FullName
	rec.Phone = sender.Phone
	return rec
}
