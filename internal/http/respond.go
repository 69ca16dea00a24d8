package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scripture-llm/internal/domain"
)

// statusForKind mapea la taxonomía de errores del dominio a códigos HTTP.
func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidFormat, domain.KindUnknownBook, domain.KindUnsupportedTranslation:
		return http.StatusBadRequest
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	case domain.KindUpstreamUnavailable, domain.KindExtractionFailed, domain.KindMalformedPayload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError responde el error estructurado. Los detalles internos quedan
// en el log, nunca en el body.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	message := "internal error"
	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err), zap.String("kind", string(kind)))
	} else {
		logger.Warn("request rejected", zap.Error(err), zap.String("kind", string(kind)))
	}

	c.JSON(status, gin.H{"error": message, "kind": kind})
}
