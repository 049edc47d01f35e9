package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/Feghellere/memoreasy/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

const openaiModel = openai.GPT4oMini

type openaiProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey string) Provider {
	return &openaiProvider{
		client: openai.NewClient(apiKey),
		model:  openaiModel,
	}
}

func (p *openaiProvider) Name() string { return p.model }

func (p *openaiProvider) Generate(ctx context.Context, system, user string) (*ProviderResult, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo da OpenAI")
		return nil, fmt.Errorf("erro na API da OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("resposta inválida da OpenAI")
	}

	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		return nil, errors.New("resposta vazia da OpenAI")
	}

	truncated := choice.FinishReason == openai.FinishReasonLength
	if truncated {
		log.Warn("Resposta da OpenAI truncada por limite de tokens")
	}

	return &ProviderResult{Text: choice.Message.Content, Truncated: truncated}, nil
}
