package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scripture-llm/internal/service"
)

// InterpretHandler expone los endpoints que pasan por el LLM.
type InterpretHandler struct {
	logger *zap.Logger
	svc    *service.InterpretService
}

func NewInterpretHandler(logger *zap.Logger, svc *service.InterpretService) *InterpretHandler {
	return &InterpretHandler{logger: logger, svc: svc}
}

// Analyze maneja POST /api/analyze.
func (h *InterpretHandler) Analyze(c *gin.Context) {
	var req struct {
		Reference   string `json:"reference" binding:"required"`
		Translation string `json:"translation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	res, err := h.svc.Analyze(c.Request.Context(), req.Reference, req.Translation)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Search maneja POST /api/search.
func (h *InterpretHandler) Search(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	res, err := h.svc.Search(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CrossReferences maneja POST /api/cross-references.
func (h *InterpretHandler) CrossReferences(c *gin.Context) {
	var req struct {
		Reference string `json:"reference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid cross references request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	res, err := h.svc.CrossReferences(c.Request.Context(), req.Reference)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// WordStudy maneja POST /api/word-study.
func (h *InterpretHandler) WordStudy(c *gin.Context) {
	var req struct {
		Reference string `json:"reference" binding:"required"`
		Word      string `json:"word" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid word study request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference and word are required"})
		return
	}

	res, err := h.svc.WordStudy(c.Request.Context(), req.Reference, req.Word)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Daily maneja GET /api/daily.
func (h *InterpretHandler) Daily(c *gin.Context) {
	verse, err := h.svc.Daily(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verse": verse})
}
