package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/Calebyte11/Boqbox-landing/internal/logging"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/gin-gonic/gin"
)

// paymentTimeout covers the upstream order-create/verify calls plus
// the fixed display delay the reconciler sleeps through.
const paymentTimeout = 45 * time.Second

type PaymentHandler struct {
	checkout   *usecase.Checkout
	reconciler *usecase.Reconciler
	// appURL is where the browser lands after reconciliation: the
	// checkout front-end, with every callback parameter stripped.
	appURL string
}

func NewPaymentHandler(checkout *usecase.Checkout, reconciler *usecase.Reconciler, appURL string) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconciler: reconciler, appURL: appURL}
}

// Submit creates the upstream order and returns the hosted-payment
// URL for the browser to navigate to.
func (h *PaymentHandler) Submit(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), paymentTimeout)
	defer cancel()

	paymentURL, err := h.checkout.Submit(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrWrongStep):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotReadyForPayment):
			// Entry guard fired: the session was bounced to items.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "step": domain.StepItems})
		default:
			// Upstream failure: no navigation happened, the session
			// and draft are unchanged for a retry.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment_url": paymentURL})
}

// Callback is the return leg of the gateway redirect. It recognizes
// the reference and/or the step marker, reconciles, and then sends
// the browser to the clean app URL. This is the only point where the
// reference and marker leave the visible URL.
func (h *PaymentHandler) Callback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), paymentTimeout)
	defer cancel()

	reference := c.Query("reference")
	if reference == "" {
		// Paystack also echoes the reference as trxref.
		reference = c.Query("trxref")
	}

	outcome, err := h.reconciler.Resolve(ctx, c.Query("state"), reference)
	if err != nil {
		// Unresolvable session: nothing to reconcile against. Send
		// the browser home rather than strand it on a dead URL.
		logging.From(c).Error("payment callback unresolvable", "error", err)
		c.Redirect(http.StatusSeeOther, h.appURL)
		return
	}

	logging.From(c).Info("payment reconciled",
		"session_id", outcome.SessionID,
		"success", outcome.Success,
		"next_step", string(outcome.Step),
	)
	c.Redirect(http.StatusSeeOther, h.appURL)
}
