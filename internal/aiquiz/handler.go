package aiquiz

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Feghellere/memoreasy/internal/config"
)

type Handler struct {
	service Service
	metrics Sink
}

func NewHandler(s Service, m Sink) *Handler {
	return &Handler{service: s, metrics: m}
}

// GenerateQuiz é o ponto de entrada da geração. Sempre responde JSON bem
// formado dentro do prazo, sucesso ou erro estruturado; nenhuma exceção passa
// desta fronteira.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), HandlerTimeout)
	defer cancel()

	var cfg QuizConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar quiz")
		h.respondError(ctx, w, start, cfg, "", http.StatusBadRequest, "corpo da requisição inválido", err)
		return
	}

	if err := cfg.Normalize(); err != nil {
		log.WithError(err).Warn("Configuração de quiz rejeitada")
		h.respondError(ctx, w, start, cfg, "", http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.service.GenerateQuiz(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar quiz")
		h.respondError(ctx, w, start, cfg, "", http.StatusInternalServerError, "erro ao gerar quiz", err)
		return
	}

	h.metrics.Emit(ctx, Record{
		ElapsedMS:          time.Since(start).Milliseconds(),
		QuestionType:       cfg.QuestionType,
		Difficulty:         cfg.Difficulty,
		RequestedCount:     cfg.QuestionCount,
		AutoCount:          cfg.AutoCount,
		TopicLength:        len(cfg.Topic),
		QuestionsGenerated: len(result.Questions),
		Provider:           result.Provider,
		Status:             StatusSuccess,
		Details:            result.Details,
	})

	config.JSON(w, http.StatusOK, QuizResponse{Questions: result.Questions})
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, start time.Time, cfg QuizConfig, provider string, status int, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}

	h.metrics.Emit(ctx, Record{
		ElapsedMS:          time.Since(start).Milliseconds(),
		QuestionType:       cfg.QuestionType,
		Difficulty:         cfg.Difficulty,
		RequestedCount:     cfg.QuestionCount,
		AutoCount:          cfg.AutoCount,
		TopicLength:        len(cfg.Topic),
		QuestionsGenerated: 0,
		Provider:           provider,
		Status:             StatusError,
		Details:            details,
	})

	config.JSON(w, status, ErrorResponse{Error: message, Details: details})
}
