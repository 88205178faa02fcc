package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/llm"
	"styleup-backend/internal/recommend"
	"styleup-backend/internal/shared/server/respond"
	"styleup-backend/internal/shared/telemetry"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mw...), h.explain)
	rg.POST("/chat-styleup", handlers...)
}

type explainRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Outfit json.RawMessage `json:"outfit"`
}

func (h *Handler) explain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}
	c.Set("userId", req.UserID)

	// Clients echo back a recommendation; unknown shapes degrade to an empty outfit.
	rec, err := recommend.DecodeRecommendation(req.Outfit)
	if err != nil {
		telemetry.Warn("chat.outfit_malformed", map[string]any{
			"request_id": c.GetString("requestId"),
			"user_id":    req.UserID,
			"error":      err,
		})
	}
	outfit := outfitFrom(rec)

	text, err := h.Svc.Explain(c.Request.Context(), req.UserID, outfit)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to explain outfit", nil)
		}
		return
	}
	respond.OK(c, gin.H{"explanation": text})
}

func outfitFrom(rec recommend.Recommendation) llm.Outfit {
	return llm.Outfit{
		ID:          rec.ID,
		Category:    rec.Category,
		Color:       rec.Color,
		Occasion:    rec.Occasion,
		Comfort:     rec.Comfort,
		Score:       rec.Score,
		Explanation: rec.Explanation,
	}
}
