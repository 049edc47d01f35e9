package aiquiz

import "context"

// Provider é um serviço externo de geração de texto. Implementações devolvem
// o texto cru do modelo; parse e validação acontecem fora, no serviço.
type Provider interface {
	Name() string
	Generate(ctx context.Context, system, user string) (*ProviderResult, error)
}
