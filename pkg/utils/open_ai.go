package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenerator is the alternate provider behind
// TextGeneratorInterface, selected via AI_PROVIDER=openai.
type OpenAITextGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAITextGenerator(apiKey, model string) *OpenAITextGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAITextGenerator) StreamLegalAnswer(ctx context.Context, req LegalAnswerRequest, onChunk func(string)) (LegalAnswerResult, error) {
	if strings.TrimSpace(req.Query) == "" {
		return LegalAnswerResult{}, fmt.Errorf("query cannot be empty")
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildLegalAnswerPrompt(req)},
		},
		MaxTokens: 2048,
		Stream:    true,
	})
	if err != nil {
		return LegalAnswerResult{}, fmt.Errorf("openai stream: %w", err)
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if full.Len() > 0 {
				return LegalAnswerResult{Text: full.String(), Degraded: true}, nil
			}
			return LegalAnswerResult{}, fmt.Errorf("openai stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	if full.Len() == 0 {
		return LegalAnswerResult{}, fmt.Errorf("no content generated by OpenAI")
	}
	return LegalAnswerResult{Text: full.String()}, nil
}

func (c *OpenAITextGenerator) GenerateEmergencyMessage(ctx context.Context, req EmergencyMessageRequest) (string, error) {
	return c.complete(ctx, buildEmergencyMessagePrompt(req), 256, 10*time.Second)
}

func (c *OpenAITextGenerator) GenerateLegalBasis(ctx context.Context, req LegalBasisRequest) (string, error) {
	return c.complete(ctx, buildLegalBasisPrompt(req), 1500, 30*time.Second)
}

func (c *OpenAITextGenerator) complete(ctx context.Context, prompt string, maxTokens int, timeout time.Duration) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
