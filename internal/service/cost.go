package service

import "scripture-llm/internal/domain"

// CostRates son las tarifas por millón de tokens, fijadas por configuración.
type CostRates struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost aplica la fórmula lineal de costo a un consumo de tokens.
func (r CostRates) Cost(u domain.TokenUsage) float64 {
	inCost := (float64(u.InputTokens) / 1e6) * r.InputPerMTok
	outCost := (float64(u.OutputTokens) / 1e6) * r.OutputPerMTok
	return inCost + outCost
}
