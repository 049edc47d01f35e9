package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Feghellere/memoreasy/internal/config"
)

// Orçamentos de tempo por requisição. O prazo do handler fica abaixo do teto
// da plataforma para sempre sobrar espaço de responder um erro estruturado; a
// chamada primária fica abaixo do prazo do handler para sobrar espaço para a
// tentativa secundária.
const (
	HandlerTimeout   = 8 * time.Second
	primaryTimeout   = 7 * time.Second
	secondaryTimeout = 5 * time.Second
)

// GenerationResult é o quiz normalizado mais o contexto usado nas métricas.
type GenerationResult struct {
	Questions []QuizQuestion
	Provider  string
	Details   string
}

type Service interface {
	GenerateQuiz(ctx context.Context, cfg QuizConfig) (*GenerationResult, error)
}

type service struct {
	primary   Provider
	secondary Provider

	primaryTimeout   time.Duration
	secondaryTimeout time.Duration
}

func NewService(primary, secondary Provider) Service {
	return &service{
		primary:          primary,
		secondary:        secondary,
		primaryTimeout:   primaryTimeout,
		secondaryTimeout: secondaryTimeout,
	}
}

// GenerateQuiz roda a máquina de estados da geração: chamada primária,
// recuperação de truncamento quando sinalizada, e uma única tentativa no
// provedor secundário quando a primária falha por transporte, prazo ou parse.
// Erros de validação são terminais e não disparam fallback.
func (s *service) GenerateQuiz(ctx context.Context, cfg QuizConfig) (*GenerationResult, error) {
	log := config.WithContext(ctx)

	if s.primary == nil && s.secondary == nil {
		return nil, ErrNoProvider
	}

	system := BuildSystemPrompt(cfg)
	user := BuildUserPrompt(cfg)

	if s.primary != nil {
		result, err := s.attempt(ctx, s.primary, s.primaryTimeout, system, user, cfg)
		if err == nil {
			return result, nil
		}

		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		if s.secondary == nil {
			return nil, err
		}
		log.WithError(err).Warnf("Fallback para %s após falha no provedor primário", s.secondary.Name())
	}

	result, err := s.attempt(ctx, s.secondary, s.secondaryTimeout, system, user, cfg)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) attempt(ctx context.Context, p Provider, timeout time.Duration, system, user string, cfg QuizConfig) (*GenerationResult, error) {
	log := config.WithContext(ctx)

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := p.Generate(callCtx, system, user)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			return nil, fmt.Errorf("tempo limite excedido na chamada a %s: %w", p.Name(), err)
		}
		return nil, fmt.Errorf("erro no provedor %s: %w", p.Name(), err)
	}

	if res.Truncated {
		log.Warn("Resposta truncada por limite de tokens. Tentando recuperação especial...")

		if rebuilt, rerr := extractCompleteQuestions(res.Text); rerr == nil {
			questions, perr := s.parseAndValidate(ctx, rebuilt, cfg)
			if perr == nil {
				log.Infof("Recuperação bem-sucedida! Extraídas %d questões completas.", len(questions))
				return &GenerationResult{
					Questions: questions,
					Provider:  p.Name(),
					Details:   fmt.Sprintf("recuperadas %d questões da resposta truncada", len(questions)),
				}, nil
			}
			var vErr *ValidationError
			if errors.As(perr, &vErr) {
				return nil, perr
			}
			log.WithError(perr).Warn("Questões extraídas da resposta truncada não validaram; tentando o texto bruto")
		} else {
			log.WithError(rerr).Warn("Falha na recuperação da resposta truncada; tentando o texto bruto")
		}
	}

	questions, err := s.parseAndValidate(ctx, res.Text, cfg)
	if err != nil {
		return nil, err
	}
	return &GenerationResult{Questions: questions, Provider: p.Name()}, nil
}

func (s *service) parseAndValidate(ctx context.Context, text string, cfg QuizConfig) ([]QuizQuestion, error) {
	raw, err := decodeQuiz(text)
	if err != nil {
		return nil, err
	}
	return validateQuiz(ctx, raw, cfg)
}
