package llm

import (
	"context"

	"scripture-llm/internal/domain"
)

// Response es la salida cruda del modelo más su consumo de tokens.
type Response struct {
	Text  string
	Usage domain.TokenUsage
}

// Client define la interfaz para generar texto con un LLM.
// El prompt viaja como un único mensaje de rol user; el servicio no
// interpreta su contenido, solo la respuesta.
type Client interface {
	Generate(ctx context.Context, prompt string) (Response, error)
}
