package jsonrepair

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Regras de reescrita aplicadas em ordem sobre texto que não parseia como JSON.
var (
	controlChars     = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)
	unquotedKeys     = regexp.MustCompile(`(['"])?([a-zA-Z0-9_]+)(['"])?\s*:`)
	duplicateCommas  = regexp.MustCompile(`,\s*,`)
	trailingCommaObj = regexp.MustCompile(`,\s*\}`)
	trailingCommaArr = regexp.MustCompile(`,\s*\]`)
	bareWordValue    = regexp.MustCompile(`:\s*([a-zA-Z][a-zA-Z0-9_]*)\s*([,}\]])`)
	doubledQuotes    = regexp.MustCompile(`"([^"]*)""`)
)

// Repair tenta transformar um texto quase-JSON em JSON sintaticamente válido.
// É uma passada heurística de melhor esforço: o resultado tem mais chance de
// parsear que a entrada, mas sem garantia. Entrada já válida é devolvida
// intacta, e a função nunca entra em pânico.
func Repair(text string) (out string) {
	out = text
	defer func() {
		// Qualquer falha interna devolve o melhor texto obtido até aqui.
		_ = recover()
	}()

	if json.Valid([]byte(text)) {
		return text
	}

	s := strings.TrimSpace(text)
	s = controlChars.ReplaceAllString(s, "")
	out = s

	// Isola o objeto entre a primeira "{" e a última "}", descartando prosa
	// antes e depois.
	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first != -1 && last > first {
		s = s[first : last+1]
		out = s
	}
	if json.Valid([]byte(s)) {
		return s
	}

	s = unquotedKeys.ReplaceAllString(s, `"$2":`)
	s = duplicateCommas.ReplaceAllString(s, ",")
	s = trailingCommaObj.ReplaceAllString(s, "}")
	s = trailingCommaArr.ReplaceAllString(s, "]")
	s = quoteBareWords(s)
	s = doubledQuotes.ReplaceAllString(s, `"$1'`)
	s = strings.ReplaceAll(s, `""`, `"`)
	out = s

	s = balance(s)
	// O fechamento acrescentado pode deixar uma vírgula pendurada para trás.
	s = trailingCommaObj.ReplaceAllString(s, "}")
	s = trailingCommaArr.ReplaceAllString(s, "]")
	return s
}

// quoteBareWords envolve em aspas valores soltos tipo palavra, preservando os
// literais JSON.
func quoteBareWords(s string) string {
	return bareWordValue.ReplaceAllStringFunc(s, func(m string) string {
		sub := bareWordValue.FindStringSubmatch(m)
		word, closer := sub[1], sub[2]
		switch word {
		case "true", "false", "null":
			return m
		}
		return `:"` + word + `"` + closer
	})
}

// balance confere a profundidade de {} e [] no texto inteiro, acrescentando os
// fechamentos faltantes na ordem de aninhamento e aparando fechamentos sem
// abertura correspondente no final. Delimitadores dentro de strings são
// ignorados; uma string deixada aberta por truncamento é fechada antes.
func balance(s string) string {
	var stack []rune
	inString, escaped := false, false
	extraBraces, extraBrackets := 0, 0

	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, r)
		case '}':
			if n := len(stack); n > 0 && stack[n-1] == '{' {
				stack = stack[:n-1]
			} else {
				extraBraces++
			}
		case ']':
			if n := len(stack); n > 0 && stack[n-1] == '[' {
				stack = stack[:n-1]
			} else {
				extraBrackets++
			}
		}
	}

	if inString {
		s += `"`
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}

	for extraBraces > 0 || extraBrackets > 0 {
		switch {
		case extraBraces > 0 && strings.HasSuffix(s, "}"):
			s = s[:len(s)-1]
			extraBraces--
		case extraBrackets > 0 && strings.HasSuffix(s, "]"):
			s = s[:len(s)-1]
			extraBrackets--
		default:
			return s
		}
	}
	return s
}
