package repositories

import (
	"context"

	"gorm.io/gorm"

	"lexia/internal/models/db_models"
)

type ConsultationRepository interface {
	Insert(ctx context.Context, consultation *db_models.Consultation) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Consultation, error)
}

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Insert(ctx context.Context, consultation *db_models.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Consultation, error) {
	var consultations []db_models.Consultation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}
