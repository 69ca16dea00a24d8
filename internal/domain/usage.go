package domain

import "time"

// TokenUsage son los tokens consumidos por una llamada al LLM.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// UsageRecord es una fila de consumo: una llamada al LLM con su costo calculado.
type UsageRecord struct {
	ID           string    `json:"id"`
	Endpoint     string    `json:"endpoint"`
	Model        string    `json:"model"`
	InputTokens  int64     `json:"input_tokens"`
	OutputTokens int64     `json:"output_tokens"`
	CostUSD      float64   `json:"cost_usd"`
	CreatedAt    time.Time `json:"created_at"`
}

// UsageSummary agrega el consumo de un día calendario.
type UsageSummary struct {
	Day          string  `json:"day"`
	Calls        int64   `json:"calls"`
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}
