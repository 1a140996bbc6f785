package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-engine/internal/engine"
	"persona-engine/internal/repository"
	"persona-engine/internal/service"
)

// AssessmentHandler exposes assessment submission and retrieval.
type AssessmentHandler struct {
	logger *zap.Logger
	svc    *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc}
}

// SubmitAssessment handles POST /assessments. The raw response map goes
// to the engine untouched; an out-of-range answer is the caller's error.
// Insufficient data is not an error: it comes back as a stored result
// with needs_retake set.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var req struct {
		Responses map[string]int `json:"responses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec, err := h.svc.Submit(c.Request.Context(), req.Responses)
	if err != nil {
		if errors.Is(err, engine.ErrResponseOutOfRange) {
			h.logger.Warn("out-of-range response", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("submit assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score assessment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assessment": rec})
}

// GetAssessment handles GET /assessments/:id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		h.logger.Error("get assessment failed", zap.Error(err), zap.String("assessment_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessment": rec})
}

// GetSimilar handles GET /assessments/:id/similar.
func (h *AssessmentHandler) GetSimilar(c *gin.Context) {
	id := c.Param("id")
	k, err := strconv.Atoi(c.DefaultQuery("k", "5"))
	if err != nil || k < 1 || k > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid k"})
		return
	}

	similar, err := h.svc.FindSimilar(c.Request.Context(), id, k)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAssessmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		case errors.Is(err, service.ErrProfileNotComparable):
			c.JSON(http.StatusConflict, gin.H{"error": "profile has unmeasured traits"})
		default:
			h.logger.Error("find similar failed", zap.Error(err), zap.String("assessment_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar profiles"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"similar": similar})
}
