package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"kacameta/internal/model"
	"kacameta/internal/repository"
)

// consultationResponseWindow is how long the shop commits to answering a
// prescription consultation raised from the chat widget.
const consultationResponseWindow = 2 * time.Hour

var consultationIDPattern = regexp.MustCompile(`Konsultasi ID:\s*([A-Z0-9-]+)`)

// WebhookEvent is the envelope Botpress posts to the webhook endpoint.
type WebhookEvent struct {
	Type    string         `json:"type"`
	Payload WebhookPayload `json:"payload"`
}

// WebhookPayload carries the event-specific fields; only the ones this shop
// reacts to are decoded.
type WebhookPayload struct {
	ConversationID string   `json:"conversationId"`
	UserID         string   `json:"userId"`
	Channel        string   `json:"channel"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
}

// BotpressService reacts to chat-widget webhook events.
type BotpressService interface {
	HandleEvent(ctx context.Context, event WebhookEvent) error
}

type botpressService struct {
	botpressRepo repository.BotpressRepository
}

// NewBotpressService creates a new Botpress webhook service.
func NewBotpressService(botpressRepo repository.BotpressRepository) BotpressService {
	return &botpressService{botpressRepo: botpressRepo}
}

// HandleEvent dispatches on the webhook event type. Unknown types are
// acknowledged and ignored so Botpress does not retry them.
func (s *botpressService) HandleEvent(ctx context.Context, event WebhookEvent) error {
	switch event.Type {
	case "message_created":
		return s.handleMessage(ctx, event.Payload)
	case "conversation_started":
		log.Info().Str("conversation_id", event.Payload.ConversationID).Msg("botpress conversation started")
		return nil
	case "user_created":
		log.Info().Str("botpress_user_id", event.Payload.UserID).Msg("botpress user created")
		return nil
	default:
		log.Debug().Str("type", event.Type).Msg("ignoring botpress event")
		return nil
	}
}

func (s *botpressService) handleMessage(ctx context.Context, payload WebhookPayload) error {
	session := &model.BotpressSession{
		BotpressUserID: payload.UserID,
		ConversationID: payload.ConversationID,
		PhoneNumber:    phoneFromUserID(payload.UserID, payload.Channel),
	}
	if err := s.botpressRepo.UpsertSession(ctx, session); err != nil {
		return fmt.Errorf("upsert botpress session: %w", err)
	}

	if !isConsultation(payload) {
		return nil
	}
	return s.createConsultation(ctx, payload)
}

func (s *botpressService) createConsultation(ctx context.Context, payload WebhookPayload) error {
	consultationID := consultationIDFrom(payload.Text)
	if consultationID == "" {
		return nil
	}

	session, err := s.botpressRepo.FindSessionByUserID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find botpress session: %w", err)
	}

	phone := ""
	if session.PhoneNumber != nil {
		phone = *session.PhoneNumber
	}

	consultation := &model.PrescriptionConsultation{
		ID:                consultationID,
		CustomerName:      "WhatsApp User",
		PhoneNumber:       phone,
		Source:            "BOTPRESS",
		Status:            model.ConsultationStatusPending,
		BotpressSessionID: &session.ID,
		ResponseDeadline:  time.Now().Add(consultationResponseWindow),
	}

	if err := s.botpressRepo.CreateConsultation(ctx, consultation); err != nil {
		return fmt.Errorf("create consultation: %w", err)
	}

	log.Info().Str("consultation_id", consultation.ID).Msg("new prescription consultation")
	return nil
}

func isConsultation(payload WebhookPayload) bool {
	for _, tag := range payload.Tags {
		if tag == "consultation" {
			return true
		}
	}
	return strings.Contains(payload.Text, "Konsultasi ID:")
}

func consultationIDFrom(text string) string {
	match := consultationIDPattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// phoneFromUserID pulls the phone number out of a WhatsApp-channel user id
// of the form "whatsapp:+628...".
func phoneFromUserID(userID, channel string) *string {
	if channel != "whatsapp" {
		return nil
	}
	parts := strings.SplitN(userID, ":", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "+") {
		return nil
	}
	return &parts[1]
}
