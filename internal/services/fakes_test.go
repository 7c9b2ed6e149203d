package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/pkg/utils"
)

// In-memory stand-ins for the repository and channel interfaces. Each fake
// records what it was asked to do so tests can assert on it.

type fakeUserRepo struct {
	users map[string]*db_models.User
	err   error
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*db_models.User{}}
	for _, user := range users {
		repo.users[user.ID.String()] = user
	}
	return repo
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByGoogleID(_ context.Context, googleID string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.GoogleID == googleID {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User, _ ...string) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID.String()] = user
	return nil
}

type fakeProcessRepo struct {
	processes      map[string]*db_models.LegalProcess
	updatedColumns []string
	err            error
}

func newFakeProcessRepo(processes ...*db_models.LegalProcess) *fakeProcessRepo {
	repo := &fakeProcessRepo{processes: map[string]*db_models.LegalProcess{}}
	for _, process := range processes {
		repo.processes[process.ID.String()] = process
	}
	return repo
}

func (f *fakeProcessRepo) Insert(_ context.Context, process *db_models.LegalProcess) error {
	if f.err != nil {
		return f.err
	}
	if process.ID == uuid.Nil {
		process.ID = uuid.New()
	}
	f.processes[process.ID.String()] = process
	return nil
}

func (f *fakeProcessRepo) FindByID(_ context.Context, id string) (*db_models.LegalProcess, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.processes[id], nil
}

func (f *fakeProcessRepo) ListByUser(_ context.Context, userID string) ([]db_models.LegalProcess, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.LegalProcess
	for _, process := range f.processes {
		if process.UserID.String() == userID {
			out = append(out, *process)
		}
	}
	return out, nil
}

func (f *fakeProcessRepo) Update(_ context.Context, process *db_models.LegalProcess, columns ...string) error {
	if f.err != nil {
		return f.err
	}
	f.updatedColumns = columns
	f.processes[process.ID.String()] = process
	return nil
}

type fakeContactRepo struct {
	contacts []db_models.EmergencyContact
	err      error
}

func (f *fakeContactRepo) ListByUser(_ context.Context, userID string) ([]db_models.EmergencyContact, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.EmergencyContact
	for _, contact := range f.contacts {
		if contact.UserID.String() == userID {
			out = append(out, contact)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id string) (*db_models.EmergencyContact, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.contacts {
		if f.contacts[i].ID.String() == id {
			return &f.contacts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeContactRepo) Insert(_ context.Context, contact *db_models.EmergencyContact) error {
	if f.err != nil {
		return f.err
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeContactRepo) Update(_ context.Context, contact *db_models.EmergencyContact, _ ...string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.contacts {
		if f.contacts[i].ID == contact.ID {
			f.contacts[i] = *contact
		}
	}
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.contacts {
		if f.contacts[i].ID.String() == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAlertRepo struct {
	mu     sync.Mutex
	alerts []*db_models.EmergencyAlert
	err    error
}

func (f *fakeAlertRepo) Insert(_ context.Context, alert *db_models.EmergencyAlert) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeAlertRepo) ListByUser(_ context.Context, userID string) ([]db_models.EmergencyAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.EmergencyAlert
	for _, alert := range f.alerts {
		if alert.UserID.String() == userID {
			out = append(out, *alert)
		}
	}
	return out, nil
}

type fakeConsultationRepo struct {
	consultations []*db_models.Consultation
	err           error
}

func (f *fakeConsultationRepo) Insert(_ context.Context, consultation *db_models.Consultation) error {
	if f.err != nil {
		return f.err
	}
	f.consultations = append(f.consultations, consultation)
	return nil
}

func (f *fakeConsultationRepo) ListByUser(_ context.Context, userID string) ([]db_models.Consultation, error) {
	var out []db_models.Consultation
	for _, consultation := range f.consultations {
		if consultation.UserID.String() == userID {
			out = append(out, *consultation)
		}
	}
	return out, nil
}

type fakeVoiceRepo struct {
	recordings map[string]*db_models.VoiceRecording
}

func (f *fakeVoiceRepo) Insert(_ context.Context, recording *db_models.VoiceRecording) error {
	if recording.ID == uuid.Nil {
		recording.ID = uuid.New()
	}
	if f.recordings == nil {
		f.recordings = map[string]*db_models.VoiceRecording{}
	}
	f.recordings[recording.ID.String()] = recording
	return nil
}

func (f *fakeVoiceRepo) FindByID(_ context.Context, id string) (*db_models.VoiceRecording, error) {
	return f.recordings[id], nil
}

// fakeGenerator scripts the text generator: fixed outputs, optional errors,
// and chunked streaming.
type fakeGenerator struct {
	chunks     []string
	answerErr  error
	degraded   bool
	message    string
	messageErr error
	legalBasis string
	basisErr   error
}

func (f *fakeGenerator) StreamLegalAnswer(_ context.Context, _ utils.LegalAnswerRequest, onChunk func(string)) (utils.LegalAnswerResult, error) {
	if f.answerErr != nil {
		return utils.LegalAnswerResult{}, f.answerErr
	}
	var full string
	for _, chunk := range f.chunks {
		onChunk(chunk)
		full += chunk
	}
	return utils.LegalAnswerResult{Text: full, Degraded: f.degraded}, nil
}

func (f *fakeGenerator) GenerateEmergencyMessage(_ context.Context, _ utils.EmergencyMessageRequest) (string, error) {
	if f.messageErr != nil {
		return "", f.messageErr
	}
	return f.message, nil
}

func (f *fakeGenerator) GenerateLegalBasis(_ context.Context, _ utils.LegalBasisRequest) (string, error) {
	if f.basisErr != nil {
		return "", f.basisErr
	}
	return f.legalBasis, nil
}

type fakeConstitute struct {
	articles []string
	err      error
}

func (f *fakeConstitute) RelevantArticles(_ context.Context, _, _, _ string, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.articles) > limit {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

// fakeWhatsApp succeeds or fails per recipient number.
type fakeWhatsApp struct {
	failFor map[string]bool
	calls   int
}

func (f *fakeWhatsApp) SendEmergencyAlert(_ context.Context, contacts []db_models.EmergencyContact, _ string, _ request_models.Location, _ string) []ChannelResult {
	f.calls++
	results := make([]ChannelResult, 0, len(contacts))
	for _, contact := range contacts {
		result := ChannelResult{Name: contact.Name, Phone: contact.Phone}
		if f.failFor[contact.Phone] {
			result.Error = "twilio: delivery failed"
		} else {
			result.Success = true
		}
		results = append(results, result)
	}
	return results
}

type fakeMail struct {
	mu      sync.Mutex
	sentTo  []string
	failAll bool
}

func (f *fakeMail) SendEmergencyEmail(_ context.Context, to, _, _ string, _ request_models.Location, _ *VoiceAttachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentTo = append(f.sentTo, to)
	if f.failAll {
		return errors.New("smtp: connection refused")
	}
	return nil
}
