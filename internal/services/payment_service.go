package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/metrics"
)

const (
	defaultCurrency  = "INR"
	providerRazorpay = "razorpay"
	ordersPath       = "/v1/orders"
)

type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// Order is the provider's order object, passed back to the checkout page.
type Order struct {
	ID         string            `json:"id"`
	Entity     string            `json:"entity"`
	Amount     int64             `json:"amount"`
	AmountPaid int64             `json:"amount_paid"`
	AmountDue  int64             `json:"amount_due"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt"`
	Status     string            `json:"status"`
	Attempts   int               `json:"attempts"`
	Notes      map[string]string `json:"notes"`
	CreatedAt  int64             `json:"created_at"`
}

// ProviderError is the error object Razorpay returns on a failed call.
type ProviderError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type razorpayError struct {
	Error ProviderError `json:"error"`
}

type PaymentService struct {
	client    *resty.Client
	keyID     string
	keySecret string
	now       func() time.Time
}

func NewPaymentService(client *resty.Client, keyID, keySecret string) *PaymentService {
	return &PaymentService{client: client, keyID: keyID, keySecret: keySecret, now: time.Now}
}

// CreateOrder opens an order for amount given in major units.
func (s *PaymentService) CreateOrder(ctx context.Context, owner string, amount float64, currency string) (*Order, error) {
	if s.keyID == "" || s.keySecret == "" {
		return nil, apperr.Config("Razorpay keys are not configured.")
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, apperr.InvalidInput("Amount must be greater than zero", nil)
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	req := OrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: currency,
		Receipt:  receiptFor(owner, s.now()),
		Notes:    map[string]string{"userId": owner},
	}

	var order Order
	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.keyID, s.keySecret).
		SetBody(req).
		SetResult(&order).
		Post(ordersPath)
	if err == nil && resp.IsError() {
		err = fmt.Errorf("razorpay status %d", resp.StatusCode())
	}
	metrics.ObserveUpstream(providerRazorpay, err)
	if err != nil {
		de := apperr.Upstream("Failed to create order", err)
		if resp != nil && resp.IsError() {
			de.WithDetails(providerErrorDetails(resp.Body()))
		}
		return nil, de
	}
	return &order, nil
}

func receiptFor(owner string, now time.Time) string {
	return fmt.Sprintf("receipt_%d_%s", now.UnixMilli(), truncateRunes(owner, 10))
}

func providerErrorDetails(body []byte) any {
	var perr razorpayError
	if err := json.Unmarshal(body, &perr); err == nil && perr.Error.Description != "" {
		return perr.Error
	}
	return string(body)
}
