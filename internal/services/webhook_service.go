package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/justsurfingit/internhunt/internal/apperr"
	"github.com/justsurfingit/internhunt/internal/events"
	"github.com/justsurfingit/internhunt/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const EventOrderPaid = "order.paid"

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Order struct {
			Entity struct {
				ID string `json:"id"`
				// notes is an object when set and an empty array when not
				Notes json.RawMessage `json:"notes"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

func (e webhookEvent) ownerID() string {
	var notes map[string]any
	if err := json.Unmarshal(e.Payload.Order.Entity.Notes, &notes); err != nil {
		return ""
	}
	owner, _ := notes["userId"].(string)
	return owner
}

// VerifySignature reports whether signature is the hex HMAC-SHA256 of body
// under secret.
func VerifySignature(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type WebhookService struct {
	secret    string
	profiles  Profiles
	db        *gorm.DB
	publisher events.Publisher
	logger    *zap.Logger
}

func NewWebhookService(secret string, profiles Profiles, db *gorm.DB, publisher events.Publisher, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		secret:    secret,
		profiles:  profiles,
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *WebhookService) Process(ctx context.Context, body []byte, signature string) error {
	if s.secret == "" {
		return apperr.Config("Webhook secret is not configured.")
	}
	if !VerifySignature(body, signature, s.secret) {
		return apperr.InvalidInput("Invalid signature", nil)
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperr.InvalidInput("Invalid event body", err)
	}
	if event.Event != EventOrderPaid {
		s.logger.Debug("ignoring webhook event", zap.String("event", event.Event))
		return nil
	}

	owner := event.ownerID()
	if owner == "" {
		return s.deadLetter(ctx, event, body, "order.paid without notes.userId")
	}

	if err := s.profiles.GrantPro(ctx, owner); err != nil {
		return err
	}
	s.logger.Info("pro granted",
		zap.String("user_id", owner),
		zap.String("order_id", event.Payload.Order.Entity.ID))
	return nil
}

// deadLetter keeps a paid event that could not be applied. The provider still
// gets a success so it stops redelivering.
func (s *WebhookService) deadLetter(ctx context.Context, event webhookEvent, body []byte, reason string) error {
	record := models.DeadLetterEvent{
		ID:        uuid.NewString(),
		Provider:  providerRazorpay,
		EventType: event.Event,
		Reason:    reason,
		Payload:   string(body),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return apperr.Persistence("DB Update Failed", err)
	}

	s.logger.Error("payment event dead-lettered",
		zap.String("dead_letter_id", record.ID),
		zap.String("order_id", event.Payload.Order.Entity.ID),
		zap.String("reason", reason))

	if err := s.publisher.Publish(ctx, events.DeadLetterSubject, record); err != nil {
		s.logger.Warn("dead letter event not published", zap.String("dead_letter_id", record.ID), zap.Error(err))
	}
	return nil
}
