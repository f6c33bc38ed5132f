package usecase

import (
	"context"
	"errors"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
)

var ErrSessionNotFound = errors.New("session not found")

// FlowSession is one checkout wizard in progress. It is the single
// source of truth for wizard progress; every transition goes through
// the Flow usecase, never through ad hoc field writes.
type FlowSession struct {
	ID    string            `json:"id"`
	Step  domain.Step       `json:"step"`
	Draft domain.OrderDraft `json:"draft"`

	// PaymentPending marks that an order was created upstream and the
	// browser was handed to the hosted payment page.
	PaymentPending bool `json:"paymentPending"`

	// Receipt is set after a successful reconciliation and feeds the
	// confirmation screen.
	Receipt *domain.PaymentReceipt `json:"receipt,omitempty"`
}

type SessionStore interface {
	Get(ctx context.Context, id string) (*FlowSession, error)
	Put(ctx context.Context, s *FlowSession) error
	Delete(ctx context.Context, id string) error
}

// CreateOrderRequest is the payload shape of the upstream order API.
type CreateOrderRequest struct {
	Sender struct {
		Name         string `json:"name"`
		EmailAddress string `json:"email_address"`
		PhoneNumber  string `json:"phone_number"`
	} `json:"sender"`
	Recipient struct {
		Name            string `json:"name"`
		EmailAddress    string `json:"email_address"`
		PhoneNumber     string `json:"phone_number"`
		DeliveryAddress string `json:"delivery_address"`
	} `json:"recipient"`
	Items []struct {
		Item     string `json:"item"`
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	Message     string  `json:"message"`
	Vendor      string  `json:"vendor"`
	TotalAmount float64 `json:"totalAmount"`
	CallbackURL string  `json:"callback_url"`
}

// VerifyResult is the reconciliation outcome shared by every failure
// mode: explicit API failure, HTTP failure, and transport errors all
// collapse into Success=false with a message.
type VerifyResult struct {
	Success bool
	Message string
	Receipt *domain.PaymentReceipt
}

// OrderGateway is the upstream order/payment API.
type OrderGateway interface {
	// CreateOrder returns the hosted-payment URL on success.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (paymentURL string, err error)
	// VerifyPayment resolves a payment reference. Transport errors are
	// returned as err; API-level outcomes come back in the result.
	VerifyPayment(ctx context.Context, reference string) (VerifyResult, error)
}

// CatalogPage is one page of a cursor-paginated catalog listing.
// NextCursor empty means end of list.
type CatalogPage[T any] struct {
	Data       []T
	NextCursor string
}

type Catalog interface {
	ListItems(ctx context.Context, limit int, cursor string) (CatalogPage[domain.GiftItem], error)
	ListVendors(ctx context.Context, limit int, cursor string) (CatalogPage[domain.CatalogVendor], error)
}

// StateCodec signs and verifies the session identity carried through
// the payment gateway redirect in the callback URL.
type StateCodec interface {
	Encode(sessionID string) (string, error)
	Decode(token string) (sessionID string, err error)
}

// Notifier posts transient user-facing messages scoped to a session.
type Notifier interface {
	Success(sessionID, message string)
	Error(sessionID, message string)
}
