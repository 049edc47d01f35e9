package aiquiz

import (
	"errors"
	"fmt"
)

// ErrNoProvider indica que nenhuma chave de provedor está configurada no
// ambiente. É detectado por requisição, nunca nas etapas de inicialização.
var ErrNoProvider = errors.New("nenhum serviço de IA disponível")

// ParseError indica que o texto do provedor não virou JSON utilizável mesmo
// após reparo e recuperação de truncamento. Dispara fallback para o provedor
// secundário quando houver.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("falha ao processar resposta da IA: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indica que o JSON parseado não rendeu nenhuma questão
// utilizável após a normalização. É terminal: o mesmo conteúdo não melhora
// repetindo a geração em outro provedor.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erro ao validar quiz: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("erro ao validar quiz: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }
