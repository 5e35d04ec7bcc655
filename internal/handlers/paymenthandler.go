package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/auth"
	"github.com/justsurfingit/internhunt/internal/dtos"
	"github.com/justsurfingit/internhunt/internal/services"
	"go.uber.org/zap"
)

const (
	signatureHeader = "X-Razorpay-Signature"
	maxWebhookBytes = 1 << 20
)

type PaymentHandler struct {
	Orders   services.OrderCreator
	Webhooks services.WebhookProcessor
	logger   *zap.Logger
}

func NewPaymentHandler(orders services.OrderCreator, webhooks services.WebhookProcessor, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Orders: orders, Webhooks: webhooks, logger: logger}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dtos.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, "Invalid JSON format", err)
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), auth.OwnerID(c), req.Amount, req.Currency)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Webhook verifies the raw body before anything is parsed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, h.logger, apperr.InvalidInput("Payload too large", err))
			return
		}
		respondError(c, h.logger, apperr.InvalidInput("Could not read body", err))
		return
	}

	if err := h.Webhooks.Process(c.Request.Context(), body, c.GetHeader(signatureHeader)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
