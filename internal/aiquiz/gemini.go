package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/Feghellere/memoreasy/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client, model: geminiModel}, nil
}

func (p *geminiProvider) Name() string { return p.model }

func (p *geminiProvider) Generate(ctx context.Context, system, user string) (*ProviderResult, error) {
	log := config.WithContext(ctx)

	temperature := float32(0.7)
	topP := float32(0.95)
	topK := float32(40)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
			Temperature:     &temperature,
			TopP:            &topP,
			TopK:            &topK,
			MaxOutputTokens: 8192,
		},
	)
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return nil, fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return nil, errors.New("resposta vazia do modelo")
	}

	truncated := len(result.Candidates) > 0 &&
		result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens
	if truncated {
		log.Warn("Resposta do Gemini truncada por limite de tokens")
	}

	log.Debugf("Resposta bruta do Gemini:\n%s", raw)
	return &ProviderResult{Text: raw, Truncated: truncated}, nil
}
