package aiquiz_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Feghellere/memoreasy/internal/aiquiz"
)

const validQuizJSON = `{"questions": [
	{"prompt": "Pergunta 1", "options": ["A", "B", "C", "D"], "correctIndex": 0, "explanation": "e1"},
	{"prompt": "Pergunta 2", "options": ["A", "B", "C", "D"], "correctIndex": 1, "explanation": "e2"},
	{"prompt": "Pergunta 3", "options": ["A", "B", "C", "D"], "correctIndex": 2, "explanation": "e3"}
]}`

type fakeProvider struct {
	name      string
	text      string
	truncated bool
	err       error
	calls     int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, system, user string) (*aiquiz.ProviderResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &aiquiz.ProviderResult{Text: f.text, Truncated: f.truncated}, nil
}

func testConfig() aiquiz.QuizConfig {
	return aiquiz.QuizConfig{
		Topic:         "fotossíntese",
		QuestionCount: 3,
		QuestionType:  aiquiz.QuestionTypeMultipleChoice,
		Difficulty:    aiquiz.DifficultyMedium,
	}
}

func TestGenerateQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("SucessoNoPrimario", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", text: validQuizJSON}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "gemini" {
			t.Errorf("Provedor incorreto. Esperado: gemini, Recebido: %s", result.Provider)
		}
		if len(result.Questions) != 3 {
			t.Errorf("Esperadas 3 questões, recebidas %d", len(result.Questions))
		}
		if secondary.calls != 0 {
			t.Errorf("Provedor secundário não deveria ter sido chamado (%d chamadas)", secondary.calls)
		}
	})

	t.Run("FallbackAposErroDeTransporte", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", err: errors.New("connection reset")}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "openai" {
			t.Errorf("Esperado fallback para openai, recebido: %s", result.Provider)
		}
	})

	t.Run("FallbackAposTimeoutDoPrimario", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", err: fmt.Errorf("generate: %w", context.DeadlineExceeded)}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "openai" {
			t.Errorf("Esperado fallback para openai, recebido: %s", result.Provider)
		}
	})

	t.Run("FallbackAposParseIrrecuperavel", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", text: "desculpe, não consegui"}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "openai" {
			t.Errorf("Esperado fallback para openai, recebido: %s", result.Provider)
		}
	})

	t.Run("RecuperacaoDeTruncamentoSemFallback", func(t *testing.T) {
		truncated := `{"questions": [
	{"prompt": "Pergunta 1", "options": ["A", "B", "C", "D"], "correctIndex": 0, "explanation": "e1"},
	{"prompt": "Pergunta 2", "options": ["A", "B", "C", "D"], "correctIndex": 1, "explanation": "e2"},
	{"prompt": "Pergunta 3", "options": ["A", "B", "C", "D"], "correctIndex": 2, "explanation": "e3"},
	{"prompt": "Pergunta cort`
		primary := &fakeProvider{name: "gemini", text: truncated, truncated: true}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "gemini" {
			t.Errorf("Recuperação deveria ficar no primário, recebido: %s", result.Provider)
		}
		if len(result.Questions) != 3 {
			t.Errorf("Esperadas 3 questões recuperadas, recebidas %d", len(result.Questions))
		}
		if !strings.Contains(result.Details, "truncada") {
			t.Errorf("Detalhes deveriam registrar a recuperação: %q", result.Details)
		}
		if secondary.calls != 0 {
			t.Errorf("Provedor secundário não deveria ter sido chamado (%d chamadas)", secondary.calls)
		}
	})

	t.Run("ValidacaoTerminalNaoDisparaFallback", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", text: `{"questions": []}`}
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(primary, secondary)

		_, err := svc.GenerateQuiz(ctx, testConfig())
		var vErr *aiquiz.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Esperado ValidationError, recebido: %v", err)
		}
		if secondary.calls != 0 {
			t.Errorf("Erro de validação é terminal; secundário não deveria ter sido chamado (%d chamadas)", secondary.calls)
		}
	})

	t.Run("AmbosFalham", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", err: errors.New("indisponível")}
		secondary := &fakeProvider{name: "openai", err: errors.New("rate limit")}
		svc := aiquiz.NewService(primary, secondary)

		_, err := svc.GenerateQuiz(ctx, testConfig())
		if err == nil {
			t.Fatal("GenerateQuiz deveria ter falhado com ambos os provedores indisponíveis")
		}
		if !strings.Contains(err.Error(), "openai") {
			t.Errorf("Erro final deveria refletir a última tentativa: %v", err)
		}
	})

	t.Run("PrimarioFalhaSemSecundario", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", text: "desculpe, não consegui"}
		svc := aiquiz.NewService(primary, nil)

		_, err := svc.GenerateQuiz(ctx, testConfig())
		var pErr *aiquiz.ParseError
		if !errors.As(err, &pErr) {
			t.Fatalf("Esperado ParseError, recebido: %v", err)
		}
		if primary.calls != 1 {
			t.Errorf("Primário deveria ser chamado uma única vez, sem nova tentativa (%d chamadas)", primary.calls)
		}
	})

	t.Run("ApenasSecundarioConfigurado", func(t *testing.T) {
		secondary := &fakeProvider{name: "openai", text: validQuizJSON}
		svc := aiquiz.NewService(nil, secondary)

		result, err := svc.GenerateQuiz(ctx, testConfig())
		if err != nil {
			t.Fatalf("GenerateQuiz falhou: %v", err)
		}
		if result.Provider != "openai" {
			t.Errorf("Provedor incorreto. Esperado: openai, Recebido: %s", result.Provider)
		}
	})

	t.Run("NenhumProvedor", func(t *testing.T) {
		svc := aiquiz.NewService(nil, nil)

		_, err := svc.GenerateQuiz(ctx, testConfig())
		if !errors.Is(err, aiquiz.ErrNoProvider) {
			t.Errorf("Esperado ErrNoProvider, recebido: %v", err)
		}
	})
}
