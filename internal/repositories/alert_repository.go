package repositories

import (
	"context"

	"gorm.io/gorm"

	"lexia/internal/models/db_models"
)

// AlertRepository is insert-and-read only; alert records are immutable.
type AlertRepository interface {
	Insert(ctx context.Context, alert *db_models.EmergencyAlert) error
	ListByUser(ctx context.Context, userID string) ([]db_models.EmergencyAlert, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Insert(ctx context.Context, alert *db_models.EmergencyAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) ListByUser(ctx context.Context, userID string) ([]db_models.EmergencyAlert, error) {
	var alerts []db_models.EmergencyAlert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
