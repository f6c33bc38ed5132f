package domain

import "errors"

const (
	// Quantity bounds enforced when an item first enters the draft.
	MinQuantity = 1
	MaxQuantity = 99

	// Fees are currently zero but kept explicit so the total is
	// always subtotal + fees, matching what the order API is billed.
	DeliveryFeeKobo int64 = 0
	ServiceFeeKobo  int64 = 0
)

var (
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrNoVendor           = errors.New("no vendor selected")
	ErrNoItems            = errors.New("no items selected")
)

type SenderInfo struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type RecipientInfo struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Message  string `json:"message,omitempty"`
}

type GiftItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceKobo   int64  `json:"price"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type OrderItem struct {
	Item     GiftItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// OrderDraft is the order being accumulated across wizard steps.
// All update operations return a new draft; the stored value is
// never mutated in place, so a failed transition can keep showing
// the last valid snapshot.
type OrderDraft struct {
	Sender    SenderInfo    `json:"sender"`
	Recipient RecipientInfo `json:"recipient"`
	Items     []OrderItem   `json:"items"`
	Vendor    Vendor        `json:"-"`
	SelfFlow  bool          `json:"selfFlow"`
}

func EmptyDraft() OrderDraft {
	return OrderDraft{}
}

func (d OrderDraft) WithSender(s SenderInfo) OrderDraft {
	d.Sender = s
	return d
}

func (d OrderDraft) WithRecipient(r RecipientInfo) OrderDraft {
	d.Recipient = r
	return d
}

func (d OrderDraft) WithItems(items []OrderItem) OrderDraft {
	d.Items = append([]OrderItem(nil), items...)
	return d
}

func (d OrderDraft) WithVendor(v Vendor) OrderDraft {
	d.Vendor = v
	return d
}

func (d OrderDraft) WithSelfFlow(self bool) OrderDraft {
	d.SelfFlow = self
	return d
}

// AddOrIncrementItem adds qty of item to the draft. An entry already
// present (matched by item ID) has its quantity incremented; the
// increment path does not re-clamp against MaxQuantity, mirroring the
// checkout UI which only bounds the picker itself. New entries are
// appended, preserving insertion order.
func (d OrderDraft) AddOrIncrementItem(item GiftItem, qty int) (OrderDraft, error) {
	if qty < MinQuantity || qty > MaxQuantity {
		return d, ErrQuantityOutOfRange
	}
	items := append([]OrderItem(nil), d.Items...)
	for i := range items {
		if items[i].Item.ID == item.ID {
			items[i].Quantity += qty
			d.Items = items
			return d, nil
		}
	}
	d.Items = append(items, OrderItem{Item: item, Quantity: qty})
	return d, nil
}

// ReadyForPayment reports whether the payment step may be entered.
func (d OrderDraft) ReadyForPayment() bool {
	return len(d.Items) > 0 && d.Vendor != nil
}

func (d OrderDraft) SubtotalKobo() int64 {
	var sum int64
	for _, oi := range d.Items {
		sum += oi.Item.PriceKobo * int64(oi.Quantity)
	}
	return sum
}

func (d OrderDraft) TotalKobo() int64 {
	return d.SubtotalKobo() + DeliveryFeeKobo + ServiceFeeKobo
}

// PaymentReceipt is what the payment-confirm API reports for a
// settled transaction; it is retained on the session for the
// confirmation screen.
type PaymentReceipt struct {
	TotalAmountPaid int64  `json:"total_amount_paid"`
	Vendor          string `json:"vendor"`
	Recipient       string `json:"recipient"`
	DeliveryAddress string `json:"delivery_address"`
	Type            string `json:"type"` // "gift" | "purchase"
}
