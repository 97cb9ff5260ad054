package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/packlens/backend/internal/domain"
	"github.com/packlens/backend/internal/logging"
	"github.com/packlens/backend/internal/usecase"
)

// Version is reported by the health check
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classificationService *usecase.ClassificationService
	logger                zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(classificationService *usecase.ClassificationService) *Handler {
	return &Handler{
		classificationService: classificationService,
		logger:                logging.GetLogger("http"),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "packlens-backend",
		"version": Version,
	})
}

// Classify handles single-title classification requests
func (h *Handler) Classify(c *gin.Context) {
	var req domain.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a non-empty \"title\""})
		return
	}

	result, err := h.classificationService.Classify(c.Request.Context(), req.Title)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyBatch handles multi-title classification requests
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req domain.BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a \"titles\" array"})
		return
	}

	results, err := h.classificationService.ClassifyBatch(c.Request.Context(), req.Titles)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.BatchClassifyResponse{Results: results})
}

// Rules lists the classifier rules in evaluation order
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules":        h.classificationService.Rules(),
		"fragments":    h.classificationService.FragmentCount(),
		"maxBatchSize": h.classificationService.MaxBatchSize(),
	})
}

// writeError maps domain errors to HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrBatchTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Classification failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
