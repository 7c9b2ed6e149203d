package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lexia/internal/models/db_models"
)

// ProcessRepository exposes no delete; process records stay around.
type ProcessRepository interface {
	Insert(ctx context.Context, process *db_models.LegalProcess) error
	FindByID(ctx context.Context, id string) (*db_models.LegalProcess, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.LegalProcess, error)
	Update(ctx context.Context, process *db_models.LegalProcess, columns ...string) error
}

type processRepository struct {
	db *gorm.DB
}

func NewProcessRepository(db *gorm.DB) ProcessRepository {
	return &processRepository{db: db}
}

func (r *processRepository) Insert(ctx context.Context, process *db_models.LegalProcess) error {
	return r.db.WithContext(ctx).Create(process).Error
}

func (r *processRepository) FindByID(ctx context.Context, id string) (*db_models.LegalProcess, error) {
	var process db_models.LegalProcess
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &process, nil
}

func (r *processRepository) ListByUser(ctx context.Context, userID string) ([]db_models.LegalProcess, error) {
	var processes []db_models.LegalProcess
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&processes).Error
	if err != nil {
		return nil, err
	}
	return processes, nil
}

func (r *processRepository) Update(ctx context.Context, process *db_models.LegalProcess, columns ...string) error {
	return r.db.WithContext(ctx).Model(process).Select(columns).Updates(process).Error
}
