package http

import (
	"net/http"
	"time"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/Calebyte11/Boqbox-landing/internal/notify"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

type FlowHandler struct {
	flow  *usecase.Flow
	notes *notify.Center
}

func NewFlowHandler(flow *usecase.Flow, notes *notify.Center) *FlowHandler {
	return &FlowHandler{flow: flow, notes: notes}
}

type startFlowReq struct {
	Self bool `json:"self"`
}

func (h *FlowHandler) StartFlow(c *gin.Context) {
	var req startFlowReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
			return
		}
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.Start(ctx, req.Self)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *FlowHandler) GetFlow(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.Get(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *FlowHandler) SubmitSender(c *gin.Context) {
	var sender domain.SenderInfo
	if err := c.ShouldBindJSON(&sender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, fieldErrs, err := h.flow.SubmitSender(ctx, c.Param("id"), sender)
	respondStep(c, s, fieldErrs, err)
}

func (h *FlowHandler) SubmitRecipient(c *gin.Context) {
	var rec domain.RecipientInfo
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, fieldErrs, err := h.flow.SubmitRecipient(ctx, c.Param("id"), rec)
	respondStep(c, s, fieldErrs, err)
}

type addItemReq struct {
	Item     domain.GiftItem `json:"item" binding:"required"`
	Quantity int             `json:"quantity" binding:"required"`
}

func (h *FlowHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.AddItem(ctx, c.Param("id"), req.Item, req.Quantity)
	respondStep(c, s, nil, err)
}

type setItemsReq struct {
	Items []domain.OrderItem `json:"items"`
}

func (h *FlowHandler) SetItems(c *gin.Context) {
	var req setItemsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.SetItems(ctx, c.Param("id"), req.Items)
	respondStep(c, s, nil, err)
}

func (h *FlowHandler) SubmitItems(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.SubmitItems(ctx, c.Param("id"))
	respondStep(c, s, nil, err)
}

type vendorReq struct {
	IsCustom     bool    `json:"isCustom"`
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
}

func (h *FlowHandler) SubmitVendor(c *gin.Context) {
	var req vendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	var vendor domain.Vendor
	if req.IsCustom {
		vendor = domain.CustomVendor{Name: req.Name}
	} else {
		vendor = domain.CatalogVendor{
			ID:           req.ID,
			Name:         req.Name,
			Rating:       req.Rating,
			DeliveryTime: req.DeliveryTime,
		}
	}
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.SubmitVendor(ctx, c.Param("id"), vendor)
	respondStep(c, s, nil, err)
}

func (h *FlowHandler) Back(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.Back(ctx, c.Param("id"))
	respondStep(c, s, nil, err)
}

func (h *FlowHandler) Reset(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	s, err := h.flow.Reset(ctx, c.Param("id"))
	respondStep(c, s, nil, err)
}

func (h *FlowHandler) Notifications(c *gin.Context) {
	msgs := h.notes.List(c.Param("id"))
	if msgs == nil {
		msgs = []notify.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": msgs})
}

