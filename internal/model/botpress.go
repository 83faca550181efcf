package model

import "time"

// ConsultationStatus represents the handling state of a prescription
// consultation request.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "PENDING"
	ConsultationStatusResponded ConsultationStatus = "RESPONDED"
	ConsultationStatusClosed    ConsultationStatus = "CLOSED"
)

// BotpressSession tracks a chat-widget conversation, one per Botpress user.
type BotpressSession struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	BotpressUserID string    `json:"botpress_user_id" gorm:"uniqueIndex;size:255;not null"`
	ConversationID string    `json:"conversation_id" gorm:"size:255;not null"`
	PhoneNumber    *string   `json:"phone_number,omitempty" gorm:"size:30"`
	SessionData    *string   `json:"session_data,omitempty" gorm:"type:json"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PrescriptionConsultation is a lens-prescription request raised from the
// chat widget. The ID comes from the widget ("Konsultasi ID: ...") so it is
// a string, not an auto-increment.
type PrescriptionConsultation struct {
	ID                string             `json:"id" gorm:"primaryKey;size:64"`
	CustomerName      string             `json:"customer_name" gorm:"size:255;not null"`
	PhoneNumber       string             `json:"phone_number" gorm:"size:30"`
	Source            string             `json:"source" gorm:"size:30;not null"`
	Status            ConsultationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	BotpressSessionID *uint              `json:"botpress_session_id,omitempty" gorm:"index"`
	ResponseDeadline  time.Time          `json:"response_deadline"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
