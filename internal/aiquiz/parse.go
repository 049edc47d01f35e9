package aiquiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Feghellere/memoreasy/internal/jsonrepair"
)

// rawQuiz tolera tanto o container atual quanto o legado em português.
type rawQuiz struct {
	Questions []rawQuestion `json:"questions"`
	Questoes  []rawQuestion `json:"questoes"`
}

func (r *rawQuiz) records() []rawQuestion {
	if len(r.Questions) > 0 {
		return r.Questions
	}
	return r.Questoes
}

// rawQuestion captura o que o modelo devolveu, com tipos frouxos: o índice
// pode vir como número ou string, as alternativas podem conter lixo, e
// questões de verdadeiro/falso às vezes trazem só um campo "answer" singular
// no lugar do array de alternativas.
type rawQuestion struct {
	Prompt       string        `json:"prompt"`
	Options      []interface{} `json:"options"`
	CorrectIndex interface{}   `json:"correctIndex"`
	Explanation  string        `json:"explanation"`
	Type         string        `json:"type"`
	Answer       string        `json:"answer"`
	Resposta     string        `json:"resposta"`
}

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	objectPattern      = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON isola o candidato a JSON do texto do modelo: conteúdo de bloco
// de código markdown (mesmo sem a cerca de fechamento) ou o trecho entre a
// primeira "{" e a última "}".
func extractJSON(text string) string {
	if m := fencedBlockPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if i := strings.Index(text, "```json"); i != -1 {
		return strings.TrimSpace(text[i+len("```json"):])
	}
	if i := strings.Index(text, "```"); i != -1 {
		return strings.TrimSpace(text[i+len("```"):])
	}
	if m := objectPattern.FindString(text); m != "" {
		return m
	}
	return strings.TrimSpace(text)
}

// coerceContainer embrulha um array solto de questões, ou uma questão única,
// no container {"questions": [...]} esperado.
func coerceContainer(s string) string {
	t := strings.TrimSpace(s)
	if strings.Contains(t, `"questions"`) || strings.Contains(t, `"questoes"`) {
		return t
	}
	if !strings.Contains(t, `"prompt"`) && !strings.Contains(t, `"pergunta"`) {
		return t
	}

	switch {
	case strings.HasPrefix(t, "["):
		return `{"questions": ` + t + `}`
	case strings.HasPrefix(t, "{"):
		return `{"questions": [` + t + `]}`
	}
	return t
}

// decodeQuiz transforma o texto bruto do provedor em registros de questão.
// Tenta o parse direto, depois o reparo heurístico, depois a coerção do
// container; esgotadas as tentativas, devolve ParseError.
func decodeQuiz(text string) (*rawQuiz, error) {
	jsonText := extractJSON(text)

	var first rawQuiz
	firstErr := json.Unmarshal([]byte(jsonText), &first)
	if firstErr == nil && len(first.records()) > 0 {
		return &first, nil
	}

	repaired := coerceContainer(jsonrepair.Repair(jsonText))
	var second rawQuiz
	if err := json.Unmarshal([]byte(repaired), &second); err == nil {
		// Container vazio é problema de conteúdo, não de sintaxe: deixa a
		// validação decidir (e ela é terminal nesse caso).
		return &second, nil
	}

	if firstErr == nil {
		return &first, nil
	}
	return nil, &ParseError{Err: firstErr}
}
