package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scripture-llm/internal/bible"
	"scripture-llm/internal/service"
)

// PassageHandler expone los endpoints que no pasan por el LLM.
type PassageHandler struct {
	logger             *zap.Logger
	svc                *service.InterpretService
	defaultTranslation string
}

func NewPassageHandler(logger *zap.Logger, svc *service.InterpretService, defaultTranslation string) *PassageHandler {
	return &PassageHandler{logger: logger, svc: svc, defaultTranslation: defaultTranslation}
}

// Compare maneja POST /api/compare.
func (h *PassageHandler) Compare(c *gin.Context) {
	var req struct {
		Reference    string   `json:"reference" binding:"required"`
		Translations []string `json:"translations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference and translations are required"})
		return
	}

	res, err := h.svc.Compare(c.Request.Context(), req.Reference, req.Translations)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Translations maneja GET /api/translations.
func (h *PassageHandler) Translations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"translations": bible.SupportedTranslations(),
		"default":      h.defaultTranslation,
	})
}

// Usage maneja GET /api/usage.
func (h *PassageHandler) Usage(c *gin.Context) {
	summary, err := h.svc.Usage(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
