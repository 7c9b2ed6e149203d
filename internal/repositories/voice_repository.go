package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lexia/internal/models/db_models"
)

type VoiceRepository interface {
	Insert(ctx context.Context, recording *db_models.VoiceRecording) error
	FindByID(ctx context.Context, id string) (*db_models.VoiceRecording, error)
}

type voiceRepository struct {
	db *gorm.DB
}

func NewVoiceRepository(db *gorm.DB) VoiceRepository {
	return &voiceRepository{db: db}
}

func (r *voiceRepository) Insert(ctx context.Context, recording *db_models.VoiceRecording) error {
	return r.db.WithContext(ctx).Create(recording).Error
}

func (r *voiceRepository) FindByID(ctx context.Context, id string) (*db_models.VoiceRecording, error) {
	var recording db_models.VoiceRecording
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&recording).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recording, nil
}
