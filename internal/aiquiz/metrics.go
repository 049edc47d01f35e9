package aiquiz

import (
	"context"

	"github.com/Feghellere/memoreasy/internal/config"
	"github.com/sirupsen/logrus"
)

// Record é o registro estruturado emitido uma vez por requisição de geração.
type Record struct {
	ElapsedMS          int64
	QuestionType       QuestionType
	Difficulty         Difficulty
	RequestedCount     int
	AutoCount          bool
	TopicLength        int
	QuestionsGenerated int
	Provider           string
	Status             string
	Details            string
}

const (
	StatusSuccess = "sucesso"
	StatusError   = "erro"
)

// Sink recebe o registro de métricas. A implementação fica desacoplada do
// handler para permitir outro backend de telemetria sem tocar no fluxo.
type Sink interface {
	Emit(ctx context.Context, rec Record)
}

type logrusSink struct{}

func NewLogrusSink() Sink { return logrusSink{} }

func (logrusSink) Emit(ctx context.Context, rec Record) {
	config.WithContext(ctx).WithFields(logrus.Fields{
		"tipo":             "metricas_quiz",
		"tempo_total_ms":   rec.ElapsedMS,
		"tipo_questao":     rec.QuestionType,
		"dificuldade":      rec.Difficulty,
		"numero_questoes":  rec.RequestedCount,
		"ia_automatica":    rec.AutoCount,
		"tamanho_material": rec.TopicLength,
		"questoes_geradas": rec.QuestionsGenerated,
		"modelo_usado":     rec.Provider,
		"status":           rec.Status,
		"detalhes":         rec.Details,
	}).Info("Métricas da geração de quiz")
}
