// Package gateway talks to the external Boqbox order API: order
// creation, payment verification, and the cursor-paginated catalog.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Calebyte11/Boqbox-landing/configs"
	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/Calebyte11/Boqbox-landing/internal/logging"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
)

type Client struct {
	http    *http.Client
	baseURL string
	paths   struct {
		orderCreate    string
		paymentConfirm string
		items          string
		vendors        string
	}
	log *slog.Logger
}

func NewClient(cfg configs.Config) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Upstream.Timeout},
		baseURL: cfg.Upstream.BaseURL,
		log:     logging.New("gateway"),
	}
	c.paths.orderCreate = cfg.Upstream.OrderCreatePath
	c.paths.paymentConfirm = cfg.Upstream.PaymentConfirmPath
	c.paths.items = cfg.Upstream.ItemsPath
	c.paths.vendors = cfg.Upstream.VendorsPath
	return c
}

type createOrderResp struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url"`
	Message    string `json:"message"`
}

func (c *Client) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.paths.orderCreate, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("create order: HTTP %d", resp.StatusCode)
	}
	var out createOrderResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("create order: decode: %w", err)
	}
	if !out.Success || out.PaymentURL == "" {
		msg := out.Message
		if msg == "" {
			msg = "Failed to create order"
		}
		return "", fmt.Errorf("create order: %s", msg)
	}
	c.log.Info("order created", "payment_url", out.PaymentURL)
	return out.PaymentURL, nil
}

type verifyResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		TotalAmountPaid float64 `json:"total_amount_paid"`
		Vendor          string  `json:"vendor"`
		Recipient       string  `json:"recipient"`
		DeliveryAddress string  `json:"delivery_address"`
		Type            string  `json:"type"`
	} `json:"data"`
}

func (c *Client) VerifyPayment(ctx context.Context, reference string) (usecase.VerifyResult, error) {
	u := c.baseURL + c.paths.paymentConfirm + "?reference=" + url.QueryEscape(reference)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return usecase.VerifyResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return usecase.VerifyResult{}, fmt.Errorf("confirm payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return usecase.VerifyResult{}, fmt.Errorf("confirm payment: HTTP %d", resp.StatusCode)
	}
	var out verifyResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return usecase.VerifyResult{}, fmt.Errorf("confirm payment: decode: %w", err)
	}

	res := usecase.VerifyResult{Success: out.Success, Message: out.Message}
	if out.Success && out.Data != nil {
		res.Receipt = &domain.PaymentReceipt{
			TotalAmountPaid: int64(out.Data.TotalAmountPaid),
			Vendor:          out.Data.Vendor,
			Recipient:       out.Data.Recipient,
			DeliveryAddress: out.Data.DeliveryAddress,
			Type:            out.Data.Type,
		}
	}
	c.log.Info("payment verified", "reference", reference, "success", out.Success)
	return res, nil
}

var _ usecase.OrderGateway = (*Client)(nil)

type pageResp struct {
	Success    bool            `json:"success"`
	NextCursor *string         `json:"nextCursor"`
	Data       json.RawMessage `json:"data"`
}

func (c *Client) listPage(ctx context.Context, path string, limit int, cursor string) (pageResp, error) {
	u := fmt.Sprintf("%s%s?limit=%d", c.baseURL, path, limit)
	if cursor != "" {
		u += "&cursor=" + url.QueryEscape(cursor)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return pageResp{}, err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return pageResp{}, fmt.Errorf("list %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pageResp{}, fmt.Errorf("list %s: HTTP %d", path, resp.StatusCode)
	}
	var out pageResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return pageResp{}, fmt.Errorf("list %s: decode: %w", path, err)
	}
	if !out.Success {
		return pageResp{}, fmt.Errorf("list %s: API returned unsuccessful response", path)
	}
	return out, nil
}

// Upstream documents use Mongo-style _id; we normalize to id.
type wireItem struct {
	MongoID     string  `json:"_id"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func (c *Client) ListItems(ctx context.Context, limit int, cursor string) (usecase.CatalogPage[domain.GiftItem], error) {
	page, err := c.listPage(ctx, c.paths.items, limit, cursor)
	if err != nil {
		return usecase.CatalogPage[domain.GiftItem]{}, err
	}
	var raw []wireItem
	if err := json.Unmarshal(page.Data, &raw); err != nil {
		return usecase.CatalogPage[domain.GiftItem]{}, fmt.Errorf("list items: decode data: %w", err)
	}
	out := usecase.CatalogPage[domain.GiftItem]{}
	for _, w := range raw {
		id := w.MongoID
		if id == "" {
			id = w.ID
		}
		out.Data = append(out.Data, domain.GiftItem{
			ID:          id,
			Name:        w.Name,
			Description: w.Description,
			PriceKobo:   int64(w.Price * 100),
			Category:    w.Category,
			ImageURL:    w.ImageURL,
		})
	}
	if page.NextCursor != nil {
		out.NextCursor = *page.NextCursor
	}
	return out, nil
}

type wireVendor struct {
	MongoID      string  `json:"_id"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	DeliveryTime any     `json:"deliveryTime"`
}

func (c *Client) ListVendors(ctx context.Context, limit int, cursor string) (usecase.CatalogPage[domain.CatalogVendor], error) {
	page, err := c.listPage(ctx, c.paths.vendors, limit, cursor)
	if err != nil {
		return usecase.CatalogPage[domain.CatalogVendor]{}, err
	}
	var raw []wireVendor
	if err := json.Unmarshal(page.Data, &raw); err != nil {
		return usecase.CatalogPage[domain.CatalogVendor]{}, fmt.Errorf("list vendors: decode data: %w", err)
	}
	out := usecase.CatalogPage[domain.CatalogVendor]{}
	for _, w := range raw {
		id := w.MongoID
		if id == "" {
			id = w.ID
		}
		rating := w.Rating
		if rating == 0 {
			rating = 4.5
		}
		out.Data = append(out.Data, domain.CatalogVendor{
			ID:           id,
			Name:         w.Name,
			Rating:       rating,
			DeliveryTime: formatDeliveryTime(w.DeliveryTime),
		})
	}
	if page.NextCursor != nil {
		out.NextCursor = *page.NextCursor
	}
	return out, nil
}

var _ usecase.Catalog = (*Client)(nil)

// formatDeliveryTime renders the upstream field, which is a string in
// some revisions and minutes-as-number in others.
func formatDeliveryTime(v any) string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "TBD"
		}
		return t
	case float64:
		mins := int(t)
		if mins <= 0 {
			return "TBD"
		}
		if mins < 60 {
			return strconv.Itoa(mins) + " mins"
		}
		h, m := mins/60, mins%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		return "TBD"
	}
}
