package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lexia/internal/models/db_models"
)

type ContactRepository interface {
	ListByUser(ctx context.Context, userID string) ([]db_models.EmergencyContact, error)
	FindByID(ctx context.Context, id string) (*db_models.EmergencyContact, error)
	Insert(ctx context.Context, contact *db_models.EmergencyContact) error
	Update(ctx context.Context, contact *db_models.EmergencyContact, columns ...string) error
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) ListByUser(ctx context.Context, userID string) ([]db_models.EmergencyContact, error) {
	var contacts []db_models.EmergencyContact
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(ctx context.Context, id string) (*db_models.EmergencyContact, error) {
	var contact db_models.EmergencyContact
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Insert(ctx context.Context, contact *db_models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *db_models.EmergencyContact, columns ...string) error {
	return r.db.WithContext(ctx).Model(contact).Select(columns).Updates(contact).Error
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.EmergencyContact{}).Error
}
