package services

import (
	"context"

	"github.com/google/uuid"

	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

type ContactServiceInterface interface {
	ListContacts(ctx context.Context, userID string) ([]db_models.EmergencyContact, error)
	CreateContact(ctx context.Context, userID string, request request_models.CreateContactRequest) (*db_models.EmergencyContact, error)
	UpdateContact(ctx context.Context, userID, contactID string, request request_models.UpdateContactRequest) (*db_models.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID, contactID string) error
}

type ContactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactServiceInterface {
	return &ContactService{contactRepo: contactRepo}
}

func (s *ContactService) ListContacts(ctx context.Context, userID string) ([]db_models.EmergencyContact, error) {
	contacts, err := s.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contacts, nil
}

func (s *ContactService) CreateContact(ctx context.Context, userID string, request request_models.CreateContactRequest) (*db_models.EmergencyContact, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	contact := &db_models.EmergencyContact{
		UserID:          ownerID,
		Name:            request.Name,
		Phone:           request.Phone,
		Relationship:    request.Relationship,
		WhatsappEnabled: request.WhatsappEnabled,
	}
	if err := s.contactRepo.Insert(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contact, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, userID, contactID string, request request_models.UpdateContactRequest) (*db_models.EmergencyContact, error) {
	contact, err := s.ownedContact(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	var columns []string
	if request.Name != nil {
		contact.Name = *request.Name
		columns = append(columns, "name")
	}
	if request.Phone != nil {
		contact.Phone = *request.Phone
		columns = append(columns, "phone")
	}
	if request.Relationship != nil {
		contact.Relationship = *request.Relationship
		columns = append(columns, "relationship")
	}
	if request.WhatsappEnabled != nil {
		contact.WhatsappEnabled = *request.WhatsappEnabled
		columns = append(columns, "whatsapp_enabled")
	}
	if len(columns) == 0 {
		return contact, nil
	}

	if err := s.contactRepo.Update(ctx, contact, columns...); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, userID, contactID string) error {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return err
	}
	if err := s.contactRepo.Delete(ctx, contactID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ownedContact refuses to hand back a contact belonging to someone else.
func (s *ContactService) ownedContact(ctx context.Context, userID, contactID string) (*db_models.EmergencyContact, error) {
	contact, err := s.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if contact == nil || contact.UserID.String() != userID {
		return nil, utils.ErrContactNotFound
	}
	return contact, nil
}
