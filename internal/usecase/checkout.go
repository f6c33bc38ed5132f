package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
)

var ErrNotReadyForPayment = errors.New("draft not ready for payment")

// Checkout builds the upstream order and hands the browser to the
// hosted payment page. Everything the return trip needs rides in the
// callback URL; this process keeps no other memory of the attempt.
type Checkout struct {
	store       SessionStore
	gateway     OrderGateway
	state       StateCodec
	callbackURL string // e.g. https://app.example.com/v1/payment/callback
}

func NewCheckout(store SessionStore, gateway OrderGateway, state StateCodec, callbackURL string) *Checkout {
	return &Checkout{store: store, gateway: gateway, state: state, callbackURL: callbackURL}
}

// Submit creates the upstream order and returns the hosted-payment
// URL. On any failure the session is left at payment with the draft
// intact so the user can retry.
func (c *Checkout) Submit(ctx context.Context, sessionID string) (string, error) {
	s, err := c.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if s.Step != domain.StepPayment {
		return "", fmt.Errorf("%w: at %s, expected %s", ErrWrongStep, s.Step, domain.StepPayment)
	}
	if !s.Draft.ReadyForPayment() {
		// Guard holds on every entry, not only when the violation
		// happened: bounce to items instead of creating an order.
		s.Step = domain.StepItems
		if err := c.store.Put(ctx, s); err != nil {
			return "", err
		}
		return "", ErrNotReadyForPayment
	}

	req, err := c.buildRequest(s)
	if err != nil {
		return "", err
	}
	paymentURL, err := c.gateway.CreateOrder(ctx, req)
	if err != nil {
		return "", err
	}

	s.PaymentPending = true
	if err := c.store.Put(ctx, s); err != nil {
		return "", err
	}
	return paymentURL, nil
}

func (c *Checkout) buildRequest(s *FlowSession) (CreateOrderRequest, error) {
	token, err := c.state.Encode(s.ID)
	if err != nil {
		return CreateOrderRequest{}, fmt.Errorf("sign callback state: %w", err)
	}

	d := s.Draft
	var req CreateOrderRequest
	req.Sender.Name = d.Sender.FullName
	req.Sender.EmailAddress = d.Sender.Email
	req.Sender.PhoneNumber = d.Sender.Phone

	req.Recipient.Name = d.Recipient.FullName
	req.Recipient.EmailAddress = d.Recipient.Email
	req.Recipient.PhoneNumber = d.Recipient.Phone
	req.Recipient.DeliveryAddress = strings.Join([]string{d.Recipient.Address, d.Recipient.City, d.Recipient.State}, ", ")

	for _, oi := range d.Items {
		req.Items = append(req.Items, struct {
			Item     string `json:"item"`
			ItemName string `json:"item_name"`
			Quantity int    `json:"quantity"`
		}{Item: oi.Item.ID, ItemName: oi.Item.Name, Quantity: oi.Quantity})
	}

	req.Message = d.Recipient.Message
	req.Vendor = d.Vendor.DisplayName()
	req.TotalAmount = float64(d.TotalKobo()) / 100

	q := url.Values{}
	q.Set("step", string(domain.StepPaymentCallback))
	q.Set("state", token)
	req.CallbackURL = c.callbackURL + "?" + q.Encode()
	return req, nil
}
