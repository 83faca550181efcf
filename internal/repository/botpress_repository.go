package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kacameta/internal/model"
)

// BotpressRepository defines chat-session persistence operations.
type BotpressRepository interface {
	UpsertSession(ctx context.Context, session *model.BotpressSession) error
	FindSessionByUserID(ctx context.Context, botpressUserID string) (*model.BotpressSession, error)
	CreateConsultation(ctx context.Context, consultation *model.PrescriptionConsultation) error
}

type botpressRepository struct {
	db *gorm.DB
}

// NewBotpressRepository builds a GORM-backed repository.
func NewBotpressRepository(db *gorm.DB) BotpressRepository {
	return &botpressRepository{db: db}
}

// UpsertSession inserts a session keyed by the Botpress user id, updating
// the conversation pointer when the user already has one.
func (r *botpressRepository) UpsertSession(ctx context.Context, session *model.BotpressSession) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "botpress_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"conversation_id", "updated_at"}),
	}).Create(session).Error
}

func (r *botpressRepository) FindSessionByUserID(ctx context.Context, botpressUserID string) (*model.BotpressSession, error) {
	var session model.BotpressSession
	if err := r.db.WithContext(ctx).Where("botpress_user_id = ?", botpressUserID).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *botpressRepository) CreateConsultation(ctx context.Context, consultation *model.PrescriptionConsultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}
