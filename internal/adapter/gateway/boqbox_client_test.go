package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Calebyte11/Boqbox-landing/configs"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var cfg configs.Config
	cfg.Upstream.BaseURL = srv.URL
	cfg.Upstream.OrderCreatePath = "/orders/create"
	cfg.Upstream.PaymentConfirmPath = "/confirm-payment"
	cfg.Upstream.ItemsPath = "/items"
	cfg.Upstream.VendorsPath = "/vendors"
	cfg.Upstream.Timeout = 5 * time.Second
	return NewClient(cfg)
}

func orderRequest() usecase.CreateOrderRequest {
	var req usecase.CreateOrderRequest
	req.Sender.Name = "A B"
	req.Sender.EmailAddress = "a@b.com"
	req.Sender.PhoneNumber = "08012345678"
	req.Recipient.Name = "R B"
	req.Recipient.EmailAddress = "r@b.com"
	req.Recipient.PhoneNumber = "08098765432"
	req.Recipient.DeliveryAddress = "12 Marina Rd, Lagos, Lagos"
	req.Items = append(req.Items, struct {
		Item     string `json:"item"`
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	}{Item: "x", ItemName: "Basket", Quantity: 2})
	req.Message = "enjoy!"
	req.Vendor = "FreshMart Lagos"
	req.TotalAmount = 30000
	req.CallbackURL = "https://gift.example.com/v1/payment/callback?state=tok&step=payment-callback"
	return req
}

func TestCreateOrder(t *testing.T) {
	t.Run("success returns payment url and sends the documented body", func(t *testing.T) {
		var got map[string]any
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders/create", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "payment_url": "https://pay/x"})
		}))

		url, err := client.CreateOrder(context.Background(), orderRequest())
		require.NoError(t, err)
		assert.Equal(t, "https://pay/x", url)

		sender := got["sender"].(map[string]any)
		assert.Equal(t, "a@b.com", sender["email_address"])
		assert.Equal(t, "08012345678", sender["phone_number"])
		recipient := got["recipient"].(map[string]any)
		assert.Equal(t, "12 Marina Rd, Lagos, Lagos", recipient["delivery_address"])
		items := got["items"].([]any)
		require.Len(t, items, 1)
		first := items[0].(map[string]any)
		assert.Equal(t, "x", first["item"])
		assert.Equal(t, "Basket", first["item_name"])
		assert.Equal(t, float64(2), first["quantity"])
		assert.Equal(t, "FreshMart Lagos", got["vendor"])
		assert.Equal(t, float64(30000), got["totalAmount"])
		assert.Contains(t, got["callback_url"], "step=payment-callback")
	})

	t.Run("success=false surfaces the API message", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "vendor closed"})
		}))

		_, err := client.CreateOrder(context.Background(), orderRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vendor closed")
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.CreateOrder(context.Background(), orderRequest())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestVerifyPayment(t *testing.T) {
	t.Run("success decodes the wrapped receipt", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/confirm-payment", r.URL.Path)
			assert.Equal(t, "ref 123", r.URL.Query().Get("reference"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"total_amount_paid": 40500,
					"vendor":            "FreshMart Lagos",
					"recipient":         "R B",
					"delivery_address":  "12 Marina Rd, Lagos, Lagos",
					"type":              "gift",
				},
			})
		}))

		res, err := client.VerifyPayment(context.Background(), "ref 123")
		require.NoError(t, err)
		assert.True(t, res.Success)
		require.NotNil(t, res.Receipt)
		assert.Equal(t, int64(40500), res.Receipt.TotalAmountPaid)
		assert.Equal(t, "gift", res.Receipt.Type)
	})

	t.Run("explicit failure has no receipt and no error", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "not found"})
		}))

		res, err := client.VerifyPayment(context.Background(), "ref-123")
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Nil(t, res.Receipt)
		assert.Equal(t, "not found", res.Message)
	})

	t.Run("HTTP failure is an error", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.VerifyPayment(context.Background(), "ref-123")
		assert.Error(t, err)
	})
}

func TestListItems(t *testing.T) {
	pages := map[string]any{
		"": map[string]any{
			"success":    true,
			"nextCursor": "c2",
			"data": []map[string]any{
				{"_id": "m1", "name": "Basket", "price": 15000, "category": "Groceries"},
			},
		},
		"c2": map[string]any{
			"success":    true,
			"nextCursor": nil,
			"data": []map[string]any{
				{"id": "p2", "name": "Fruit Bundle", "price": 8500.5},
			},
		},
	}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(pages[r.URL.Query().Get("cursor")])
	}))

	first, err := client.ListItems(context.Background(), 4, "")
	require.NoError(t, err)
	require.Len(t, first.Data, 1)
	assert.Equal(t, "m1", first.Data[0].ID, "_id is normalized to id")
	assert.Equal(t, int64(1500000), first.Data[0].PriceKobo)
	assert.Equal(t, "c2", first.NextCursor)

	second, err := client.ListItems(context.Background(), 4, first.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Data, 1)
	assert.Equal(t, "p2", second.Data[0].ID)
	assert.Empty(t, second.NextCursor, "null cursor ends the listing")
}

func TestListVendors(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendors", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"nextCursor": nil,
			"data": []map[string]any{
				{"_id": "v1", "name": "FreshMart", "rating": 4.9, "deliveryTime": "Same day"},
				{"_id": "v2", "name": "QuickCart", "deliveryTime": 90},
				{"_id": "v3", "name": "GreenBasket"},
			},
		})
	}))

	page, err := client.ListVendors(context.Background(), 4, "")
	require.NoError(t, err)
	require.Len(t, page.Data, 3)

	assert.Equal(t, "Same day", page.Data[0].DeliveryTime)
	assert.Equal(t, 4.9, page.Data[0].Rating)

	assert.Equal(t, "1h 30m", page.Data[1].DeliveryTime, "numeric minutes are formatted")
	assert.Equal(t, 4.5, page.Data[1].Rating, "missing rating defaults")

	assert.Equal(t, "TBD", page.Data[2].DeliveryTime)
}

func TestFormatDeliveryTime(t *testing.T) {
	assert.Equal(t, "45 mins", formatDeliveryTime(float64(45)))
	assert.Equal(t, "2h", formatDeliveryTime(float64(120)))
	assert.Equal(t, "1h 5m", formatDeliveryTime(float64(65)))
	assert.Equal(t, "TBD", formatDeliveryTime(nil))
	assert.Equal(t, "TBD", formatDeliveryTime(""))
	assert.Equal(t, "Next day", formatDeliveryTime("Next day"))
}
