package aiquiz

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Feghellere/memoreasy/internal/config"
)

const multipleChoiceOptions = 4

// validateQuiz transforma os registros crus do modelo numa lista de questões
// que satisfaz os invariantes do quiz: 4 alternativas para múltipla escolha,
// ["Verdadeiro","Falso"] para verdadeiro/falso, índice correto dentro do
// intervalo, explicação preenchida, sem perguntas repetidas. Registros ruins
// são pulados um a um; só a ausência total de questões utilizáveis é erro.
func validateQuiz(ctx context.Context, raw *rawQuiz, cfg QuizConfig) ([]QuizQuestion, error) {
	log := config.WithContext(ctx)
	records := raw.records()

	questions := normalizeRecords(ctx, records, false)
	if len(questions) == 0 && len(records) > 0 {
		// Último recurso: aproveita registros sem enunciado em vez de
		// descartar o lote inteiro.
		log.Warn("Nenhuma questão com enunciado válido; tentando recuperação com enunciado genérico")
		questions = normalizeRecords(ctx, records, true)
	}

	questions = dedupeQuestions(questions)

	if len(questions) == 0 {
		return nil, &ValidationError{Reason: "nenhuma questão utilizável na resposta do modelo"}
	}

	if !cfg.AutoCount {
		questions = reconcileCount(ctx, questions, cfg.QuestionCount)
	}

	log.Infof("Quiz validado com %d questões", len(questions))
	return questions, nil
}

func normalizeRecords(ctx context.Context, records []rawQuestion, placeholderPrompt bool) []QuizQuestion {
	log := config.WithContext(ctx)

	var out []QuizQuestion
	for i, rec := range records {
		q, err := normalizeQuestion(rec, placeholderPrompt, i)
		if err != nil {
			log.Warnf("Questão %d descartada: %v", i+1, err)
			continue
		}
		out = append(out, q)
	}
	return out
}

func normalizeQuestion(rec rawQuestion, placeholderPrompt bool, index int) (QuizQuestion, error) {
	prompt := strings.TrimSpace(rec.Prompt)
	if prompt == "" {
		if !placeholderPrompt {
			return QuizQuestion{}, fmt.Errorf("pergunta ausente ou vazia")
		}
		prompt = fmt.Sprintf("Pergunta %d", index+1)
	}

	options := stringOptions(rec.Options)
	answer := strings.TrimSpace(rec.Answer)
	if answer == "" {
		answer = strings.TrimSpace(rec.Resposta)
	}
	idx := coerceIndex(rec.CorrectIndex)

	// Formato alternativo de verdadeiro/falso: só um campo "answer" textual,
	// sem array de alternativas.
	if len(options) == 0 {
		if answer == "" {
			return QuizQuestion{}, fmt.Errorf("alternativas inválidas")
		}
		options = []string{OptionTrue, OptionFalse}
		idx = answerToIndex(answer)
	}

	typ := parseQuestionType(rec.Type)
	if typ == "" {
		typ = classifyOptions(options)
	}

	switch typ {
	case QuestionTypeTrueFalse:
		options, idx = normalizeTrueFalse(options, idx, answer)
	default:
		typ = QuestionTypeMultipleChoice
		options, idx = normalizeMultipleChoice(options, idx)
	}

	if idx < 0 || idx >= len(options) {
		idx = 0
	}

	explanation := strings.TrimSpace(rec.Explanation)
	if explanation == "" {
		explanation = DefaultExplanation
	}

	return QuizQuestion{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: idx,
		Explanation:  explanation,
		Type:         typ,
	}, nil
}

// parseQuestionType aceita as tags atuais e as legadas em português.
func parseQuestionType(s string) QuestionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true-false", "verdadeiro_falso", "verdadeiro-falso":
		return QuestionTypeTrueFalse
	case "multiple-choice", "multipla", "multipla_escolha":
		return QuestionTypeMultipleChoice
	}
	return ""
}

// classifyOptions decide o tipo da questão pelo conteúdo das alternativas.
// As regras são palpites calibrados contra saídas reais dos modelos; mantidas
// isoladas aqui para facilitar ajustes.
func classifyOptions(options []string) QuestionType {
	if len(options) != 2 {
		return QuestionTypeMultipleChoice
	}

	a := strings.ToLower(strings.TrimSpace(options[0]))
	b := strings.ToLower(strings.TrimSpace(options[1]))
	switch {
	case a == "verdadeiro" && b == "falso", a == "falso" && b == "verdadeiro":
		return QuestionTypeTrueFalse
	case a == "v" && b == "f", a == "f" && b == "v":
		return QuestionTypeTrueFalse
	}
	return QuestionTypeMultipleChoice
}

func normalizeMultipleChoice(options []string, idx int) ([]string, int) {
	for len(options) < multipleChoiceOptions {
		options = append(options, fmt.Sprintf("Alternativa %d", len(options)+1))
	}
	if len(options) > multipleChoiceOptions {
		options = options[:multipleChoiceOptions]
		if idx >= multipleChoiceOptions {
			idx = 0
		}
	}
	return options, idx
}

// normalizeTrueFalse força o par canônico de alternativas, recomputando o
// índice a partir da resposta textual quando houver, ou do significado da
// alternativa originalmente marcada.
func normalizeTrueFalse(options []string, idx int, answer string) ([]string, int) {
	newIdx := -1
	switch {
	case answer != "":
		newIdx = answerToIndex(answer)
	case idx >= 0 && idx < len(options):
		switch strings.ToLower(strings.TrimSpace(options[idx])) {
		case "verdadeiro", "v":
			newIdx = 0
		case "falso", "f":
			newIdx = 1
		}
	}
	if newIdx == -1 {
		if idx == 0 || idx == 1 {
			newIdx = idx
		} else {
			newIdx = 0
		}
	}
	return []string{OptionTrue, OptionFalse}, newIdx
}

// answerToIndex mapeia uma resposta textual ("Verdadeiro", "v", "Falso", "f")
// para o índice canônico. Qualquer coisa que não seja verdadeiro vira falso,
// como no comportamento observado dos modelos.
func answerToIndex(answer string) int {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "verdadeiro", "v":
		return 0
	}
	return 1
}

func stringOptions(raw []interface{}) []string {
	var out []string
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// coerceIndex tolera índice como número JSON ou string numérica; -1 quando
// ausente ou irreconhecível.
func coerceIndex(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return -1
}

// dedupeQuestions remove perguntas repetidas comparando o enunciado
// normalizado (minúsculas, sem espaços nas pontas); a primeira ocorrência
// vence.
func dedupeQuestions(questions []QuizQuestion) []QuizQuestion {
	seen := make(map[string]bool, len(questions))
	out := questions[:0]
	for _, q := range questions {
		key := strings.ToLower(strings.TrimSpace(q.Prompt))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

// reconcileCount ajusta a lista ao número pedido: clona questões existentes
// em rodízio com sufixo de variação quando faltam, corta quando sobram. Só
// roda em requisições de contagem explícita.
func reconcileCount(ctx context.Context, questions []QuizQuestion, want int) []QuizQuestion {
	if len(questions) == want {
		return questions
	}

	config.WithContext(ctx).Warnf(
		"Número incorreto de questões: esperado %d, recebido %d. Ajustando...",
		want, len(questions),
	)

	if len(questions) > want {
		return questions[:want]
	}

	originals := make([]QuizQuestion, len(questions))
	copy(originals, questions)
	for len(questions) < want {
		clone := originals[len(questions)%len(originals)]
		clone.Prompt = clone.Prompt + " (variação)"
		questions = append(questions, clone)
	}
	return questions
}
