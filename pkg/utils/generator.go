package utils

import (
	"context"
	"fmt"
	"strings"

	"lexia/internal/models/request_models"
)

// TextGeneratorInterface is the single surface the rest of the app uses to
// talk to an LLM. Streaming answers invoke onChunk once per text fragment in
// generation order; the concatenation of fragments equals the returned text.
type TextGeneratorInterface interface {
	StreamLegalAnswer(ctx context.Context, req LegalAnswerRequest, onChunk func(string)) (LegalAnswerResult, error)
	GenerateEmergencyMessage(ctx context.Context, req EmergencyMessageRequest) (string, error)
	GenerateLegalBasis(ctx context.Context, req LegalBasisRequest) (string, error)
}

type LegalAnswerRequest struct {
	Query                  string
	Country                string
	Language               string
	ConstitutionalArticles []string
}

type LegalAnswerResult struct {
	Text string
	// Degraded marks a response produced without the model finishing
	// cleanly; callers report a lower confidence for these.
	Degraded bool
}

type EmergencyMessageRequest struct {
	UserName string
	Language string
	Location request_models.Location
}

type LegalBasisRequest struct {
	ProcessType            string
	Title                  string
	Description            string
	Language               string
	ConstitutionalArticles []string
}

func buildLegalAnswerPrompt(req LegalAnswerRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a legal assistant for %s. Answer in %s, in plain language a non-lawyer understands.\n", req.Country, req.Language)
	fmt.Fprintf(&b, "Question: %s\n", req.Query)
	if len(req.ConstitutionalArticles) > 0 {
		b.WriteString("Ground your answer on these constitutional excerpts:\n")
		for i, article := range req.ConstitutionalArticles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, article)
		}
	}
	b.WriteString("Do not invent citations. State clearly when professional legal counsel is needed.")
	return b.String()
}

func buildEmergencyMessagePrompt(req EmergencyMessageRequest) string {
	return fmt.Sprintf(
		"Write a short urgent emergency message in %s, sent on behalf of %s to a trusted contact. "+
			"They are at latitude %f, longitude %f (%s) and need immediate help. "+
			"Ask the contact to reach out or alert authorities. Plain text, under 500 characters, no markdown.",
		req.Language, req.UserName,
		req.Location.Latitude, req.Location.Longitude, req.Location.Address,
	)
}

func buildLegalBasisPrompt(req LegalBasisRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the legal basis section for a %s case titled %q, in %s.\n", req.ProcessType, req.Title, req.Language)
	if req.Description != "" {
		fmt.Fprintf(&b, "Case description: %s\n", req.Description)
	}
	if len(req.ConstitutionalArticles) > 0 {
		b.WriteString("Reference these constitutional excerpts where relevant:\n")
		for i, article := range req.ConstitutionalArticles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, article)
		}
	}
	b.WriteString("Two to four paragraphs of formal prose. No markdown headings.")
	return b.String()
}

// FallbackEmergencyMessage is the templated message used when generation
// fails. An alert never waits on the model.
func FallbackEmergencyMessage(req EmergencyMessageRequest) string {
	location := fmt.Sprintf("%f, %f", req.Location.Latitude, req.Location.Longitude)
	if req.Location.Address != "" {
		location = fmt.Sprintf("%s (%s)", req.Location.Address, location)
	}
	if strings.HasPrefix(strings.ToLower(req.Language), "en") {
		return fmt.Sprintf("EMERGENCY: %s needs immediate help. Location: %s. Please contact them or alert the authorities now.", req.UserName, location)
	}
	return fmt.Sprintf("EMERGENCIA: %s necesita ayuda inmediata. Ubicación: %s. Por favor contáctalo o avisa a las autoridades de inmediato.", req.UserName, location)
}

// FallbackLegalBasis is used when generation fails during process creation.
func FallbackLegalBasis(processType string) string {
	return fmt.Sprintf("Proceso de %s conforme a la normativa vigente", processType)
}

// NewTextGenerator picks the provider the way the deployment configured it.
func NewTextGenerator(provider, apiKey, model string) (TextGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini":
		return NewGeminiTextGenerator(apiKey, model)
	case "openai":
		return NewOpenAITextGenerator(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
