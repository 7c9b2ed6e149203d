package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexia/internal/models/request_models"
	"lexia/pkg/utils"
)

func TestContactCRUDRoundTrip(t *testing.T) {
	user := testUser()
	svc := NewContactService(&fakeContactRepo{})

	contact, err := svc.CreateContact(context.Background(), user.ID.String(), request_models.CreateContactRequest{
		Name:            "Ana",
		Phone:           "+593991234567",
		Relationship:    "hermana",
		WhatsappEnabled: true,
	})
	require.NoError(t, err)
	assert.True(t, contact.WhatsappEnabled)

	contacts, err := svc.ListContacts(context.Background(), user.ID.String())
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	enabled := false
	updated, err := svc.UpdateContact(context.Background(), user.ID.String(), contact.ID.String(), request_models.UpdateContactRequest{
		WhatsappEnabled: &enabled,
	})
	require.NoError(t, err)
	assert.False(t, updated.WhatsappEnabled)
	assert.Equal(t, "Ana", updated.Name)

	require.NoError(t, svc.DeleteContact(context.Background(), user.ID.String(), contact.ID.String()))
	contacts, err = svc.ListContacts(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactOwnershipEnforced(t *testing.T) {
	owner := testUser()
	stranger := testUser()
	svc := NewContactService(&fakeContactRepo{})

	contact, err := svc.CreateContact(context.Background(), owner.ID.String(), request_models.CreateContactRequest{
		Name:  "Ana",
		Phone: "+593991234567",
	})
	require.NoError(t, err)

	name := "Intrusa"
	_, err = svc.UpdateContact(context.Background(), stranger.ID.String(), contact.ID.String(), request_models.UpdateContactRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrContactNotFound)

	err = svc.DeleteContact(context.Background(), stranger.ID.String(), contact.ID.String())
	assert.ErrorIs(t, err, utils.ErrContactNotFound)
}
