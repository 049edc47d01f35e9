package aiquiz

import "errors"

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeTrueFalse      QuestionType = "true-false"
	QuestionTypeMixed          QuestionType = "mixed"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const (
	// MaxQuestions limita a quantidade de questões por requisição.
	MaxQuestions = 20

	OptionTrue  = "Verdadeiro"
	OptionFalse = "Falso"

	// DefaultExplanation substitui explicações ausentes na resposta do modelo.
	DefaultExplanation = "Não foi fornecida uma explicação para esta questão."
)

var ErrEmptyTopic = errors.New("tema inválido ou ausente")

type QuizConfig struct {
	Topic         string       `json:"topic"`
	QuestionCount int          `json:"questionCount"`
	QuestionType  QuestionType `json:"questionType"`
	Difficulty    Difficulty   `json:"difficulty"`
	AutoCount     bool         `json:"autoCount"`
}

// Normalize valida o tema e aplica defaults e limites sobre a configuração.
func (c *QuizConfig) Normalize() error {
	if c.Topic == "" {
		return ErrEmptyTopic
	}

	switch c.QuestionType {
	case QuestionTypeMultipleChoice, QuestionTypeTrueFalse, QuestionTypeMixed:
	default:
		c.QuestionType = QuestionTypeMultipleChoice
	}

	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		c.Difficulty = DifficultyMedium
	}

	if !c.AutoCount {
		if c.QuestionCount < 1 {
			c.QuestionCount = 1
		}
		if c.QuestionCount > MaxQuestions {
			c.QuestionCount = MaxQuestions
		}
	}
	return nil
}

type QuizQuestion struct {
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correctIndex"`
	Explanation  string       `json:"explanation"`
	Type         QuestionType `json:"type"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ProviderResult carrega o texto bruto devolvido por um provedor e se a
// resposta foi cortada pelo teto de tokens de saída.
type ProviderResult struct {
	Text      string
	Truncated bool
}
