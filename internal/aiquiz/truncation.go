package aiquiz

import (
	"errors"
	"regexp"
	"strings"
)

var (
	questionsArrayPattern = regexp.MustCompile(`"(?:questions|questoes)"\s*:\s*\[`)

	// Uma questão completa abre com o campo "prompt" e fecha logo após uma
	// string de "explanation" terminada — o prompt exige "explanation" como
	// último campo justamente para isso.
	completeQuestionPattern = regexp.MustCompile(`(?s)\{\s*"prompt".*?"explanation"\s*:\s*"[^"]*"\s*\}`)
)

var errNoCompleteQuestions = errors.New("não foi possível extrair questões completas")

// extractCompleteQuestions recupera registros íntegros de uma resposta que o
// provedor sinalizou como cortada pelo limite de tokens. Qualquer cauda
// parcial é descartada e o container é remontado ao redor do que sobrou.
// Zero questões completas é falha; o chamador segue para o reparo do texto
// bruto e, depois, para o provedor secundário.
func extractCompleteQuestions(text string) (string, error) {
	switch {
	case strings.Contains(text, "```json"):
		// O bloco é incompleto por construção: corta só a cerca de abertura.
		text = text[strings.Index(text, "```json")+len("```json"):]
	case strings.Contains(text, "```"):
		text = text[strings.Index(text, "```")+len("```"):]
	case strings.Contains(text, "{"):
		text = text[strings.Index(text, "{"):]
	default:
		return "", errors.New("não foi possível identificar JSON na resposta truncada")
	}

	loc := questionsArrayPattern.FindStringIndex(text)
	if loc == nil {
		return "", errors.New("formato de resposta inválido, não encontrou array de questões")
	}
	region := text[loc[1]:]

	var complete []string
	pos := 0
	for _, m := range completeQuestionPattern.FindAllStringIndex(region, -1) {
		if m[0] < pos {
			continue
		}
		complete = append(complete, region[m[0]:m[1]])
		pos = m[1]
	}

	if len(complete) == 0 {
		return "", errNoCompleteQuestions
	}

	return `{"questions": [` + strings.Join(complete, ",") + `]}`, nil
}
