package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/internal/models/response_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

// EmitFunc delivers one stream event to the client. It returns false once the
// client is gone; the service then stops emitting but finishes generation.
type EmitFunc func(event response_models.StreamEvent) bool

type ConsultationServiceInterface interface {
	Ask(ctx context.Context, userID string, request request_models.AskRequest, emit EmitFunc) error
	ListConsultations(ctx context.Context, userID string) ([]db_models.Consultation, error)
}

type ConsultationService struct {
	consultationRepo repositories.ConsultationRepository
	generator        utils.TextGeneratorInterface
	constitute       ConstituteServiceInterface
	logger           *zap.SugaredLogger
}

func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	generator utils.TextGeneratorInterface,
	constitute ConstituteServiceInterface,
	logger *zap.SugaredLogger,
) ConsultationServiceInterface {
	return &ConsultationService{
		consultationRepo: consultationRepo,
		generator:        generator,
		constitute:       constitute,
		logger:           logger,
	}
}

// Ask streams one consultation: a citations event, then answer chunks in
// generation order, then a complete event. The consultation row is written
// after generation finishes, never before. A returned error means the caller
// must emit the terminal error event instead.
func (s *ConsultationService) Ask(ctx context.Context, userID string, request request_models.AskRequest, emit EmitFunc) error {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrValidation
	}

	country := defaultString(request.Country, "EC")
	language := defaultString(request.Language, "es")

	articles, err := s.constitute.RelevantArticles(ctx, request.Query, country, language, 3)
	if err != nil {
		s.logger.Warnw("constitutional article lookup failed, answering without excerpts", "error", err)
		articles = nil
	}

	emit(response_models.StreamEvent{
		Type: "citations",
		Data: citationsFor(articles),
	})

	result, err := s.generator.StreamLegalAnswer(ctx, utils.LegalAnswerRequest{
		Query:                  request.Query,
		Country:                country,
		Language:               language,
		ConstitutionalArticles: articles,
	}, func(chunk string) {
		emit(response_models.StreamEvent{Type: "chunk", Data: chunk})
	})
	if err != nil {
		s.logger.Errorw("consultation generation failed", "error", err)
		return utils.ErrExternalService
	}

	consultation := &db_models.Consultation{
		UserID:   ownerID,
		Query:    request.Query,
		Response: result.Text,
		Country:  country,
		Language: language,
	}
	if err := s.consultationRepo.Insert(ctx, consultation); err != nil {
		return utils.ErrDatabaseError
	}

	confidence := 0.92
	if result.Degraded {
		confidence = 0.5
	}
	emit(response_models.StreamEvent{
		Type: "complete",
		Data: response_models.CompletePayload{Confidence: confidence},
	})
	return nil
}

func citationsFor(articles []string) response_models.CitationsPayload {
	citations := make([]response_models.Citation, 0, len(articles))
	for i := range articles {
		relevance := 95 - i*5
		if relevance < 75 {
			relevance = 75
		}
		citations = append(citations, response_models.Citation{
			Title:     citationTitle(i + 1),
			URL:       citationAnchor(i + 1),
			Relevance: relevance,
		})
	}

	if len(citations) == 0 {
		citations = append(citations,
			response_models.Citation{Title: "Constitución Nacional", URL: "#", Relevance: 90},
			response_models.Citation{Title: "Código Civil", URL: "#", Relevance: 85},
		)
	}

	preview := articles
	if len(preview) > 2 {
		preview = preview[:2]
	}
	return response_models.CitationsPayload{
		Citations:              citations,
		ConstitutionalArticles: preview,
	}
}

func citationTitle(n int) string {
	return "Artículo Constitucional " + strconv.Itoa(n)
}

func citationAnchor(n int) string {
	return "#article-" + strconv.Itoa(n)
}

func (s *ConsultationService) ListConsultations(ctx context.Context, userID string) ([]db_models.Consultation, error) {
	consultations, err := s.consultationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return consultations, nil
}
