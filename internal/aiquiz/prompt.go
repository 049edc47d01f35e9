package aiquiz

import "fmt"

// O contrato do prompt é o que torna o parse tratável: os campos, a contagem
// exata de alternativas por tipo e a exigência de JSON puro. As heurísticas de
// reparo são rede de segurança, não o mecanismo principal de correção.

func questionTypeInstruction(t QuestionType) string {
	switch t {
	case QuestionTypeTrueFalse:
		return `APENAS questões de verdadeiro ou falso. Use EXATAMENTE "Verdadeiro" e "Falso" como alternativas.`
	case QuestionTypeMixed:
		return "Mix equilibrado de múltipla escolha e verdadeiro/falso."
	default:
		return "APENAS questões de múltipla escolha com EXATAMENTE 4 alternativas."
	}
}

func difficultyInstruction(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "FÁCIL - Questões básicas, conceitos fundamentais, vocabulário simples"
	case DifficultyHard:
		return "DIFÍCIL - Questões complexas, análise profunda, conexões entre múltiplos conceitos"
	default:
		return "MÉDIO - Questões moderadas, análise básica, conexões simples entre conceitos"
	}
}

func countInstruction(cfg QuizConfig) string {
	if cfg.AutoCount {
		return "Determine o número apropriado baseado no conteúdo"
	}
	return fmt.Sprintf("%d", cfg.QuestionCount)
}

func BuildSystemPrompt(cfg QuizConfig) string {
	return fmt.Sprintf(`Você é um assistente especializado em criar quizzes educacionais.
SIGA ESTRITAMENTE estas instruções ao gerar o quiz:

1. Tipo de Questão: %s
2. Dificuldade: %s
3. Número de Questões: %s

REGRAS OBRIGATÓRIAS:
- Cada questão DEVE ter uma explicação detalhada no campo "explanation"
- Para múltipla escolha: SEMPRE 4 alternativas
- Para verdadeiro/falso: Use EXATAMENTE "Verdadeiro" e "Falso" como alternativas
- No modo misto: Mantenha proporção igual entre tipos
- Respeite ESTRITAMENTE o nível de dificuldade solicitado
- Inclua SEMPRE o campo "type" com valor "multiple-choice" ou "true-false"
- O campo "explanation" deve ser o ÚLTIMO campo de cada questão

O formato de resposta DEVE ser um objeto JSON com a seguinte estrutura:
{
  "questions": [
    {
      "prompt": "Texto da pergunta",
      "options": ["A", "B", "C", "D"],
      "correctIndex": 0,
      "type": "multiple-choice",
      "explanation": "Explicação detalhada"
    }
  ]
}`,
		questionTypeInstruction(cfg.QuestionType),
		difficultyInstruction(cfg.Difficulty),
		countInstruction(cfg),
	)
}

func BuildUserPrompt(cfg QuizConfig) string {
	count := countInstruction(cfg)
	if cfg.AutoCount {
		count = "Determine o ideal"
	}

	return fmt.Sprintf(`Crie um quiz sobre: "%s"

PARÂMETROS OBRIGATÓRIOS:
- Tipo: %s
- Dificuldade: %s
- Número de questões: %s

Retorne APENAS o JSON, sem texto adicional.`,
		cfg.Topic, cfg.QuestionType, cfg.Difficulty, count)
}
