package aiquiz

import (
	"context"
	"os"

	"github.com/Feghellere/memoreasy/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

// NewAIQuizContainer monta o pipeline de geração a partir das chaves
// presentes no ambiente. A ausência de ambas as chaves não derruba a
// inicialização: o serviço responde o erro de configuração por requisição.
func NewAIQuizContainer(ctx context.Context) *AIQuizContainer {
	log := config.WithContext(ctx)

	var primary, secondary Provider

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		p, err := NewGeminiProvider(ctx, key)
		if err != nil {
			log.WithError(err).Error("Erro ao criar provedor Gemini")
		} else {
			primary = p
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		secondary = NewOpenAIProvider(key)
	}

	if primary == nil && secondary == nil {
		log.Warn("Nenhuma chave de API de IA configurada; geração de quiz indisponível")
	}

	service := NewService(primary, secondary)
	handler := NewHandler(service, NewLogrusSink())

	return &AIQuizContainer{Handler: handler}
}
