package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiTextGenerator implements TextGeneratorInterface using Google's
// Gemini models.
type GeminiTextGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiTextGenerator(apiKey, model string) (TextGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextGenerator{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiTextGenerator) StreamLegalAnswer(ctx context.Context, req LegalAnswerRequest, onChunk func(string)) (LegalAnswerResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return LegalAnswerResult{}, fmt.Errorf("query cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(2048)

	var full strings.Builder
	iter := m.GenerateContentStream(ctx, genai.Text(buildLegalAnswerPrompt(req)))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			// A mid-stream failure still yields whatever text arrived
			if full.Len() > 0 {
				return LegalAnswerResult{Text: full.String(), Degraded: true}, nil
			}
			return LegalAnswerResult{}, fmt.Errorf("gemini stream: %w", err)
		}

		chunk := candidateText(resp)
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	if full.Len() == 0 {
		return LegalAnswerResult{}, fmt.Errorf("no content generated by Gemini")
	}
	return LegalAnswerResult{Text: full.String()}, nil
}

func (c *GeminiTextGenerator) GenerateEmergencyMessage(ctx context.Context, req EmergencyMessageRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetMaxOutputTokens(256)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(buildEmergencyMessagePrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", fmt.Errorf("no content generated by Gemini")
	}
	return strings.TrimSpace(text), nil
}

func (c *GeminiTextGenerator) GenerateLegalBasis(ctx context.Context, req LegalBasisRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SetMaxOutputTokens(1500)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(buildLegalBasisPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", fmt.Errorf("no content generated by Gemini")
	}
	return strings.TrimSpace(text), nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

func (c *GeminiTextGenerator) Close() error {
	return c.client.Close()
}
