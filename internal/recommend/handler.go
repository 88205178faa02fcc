package recommend

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend-outfit", h.recommend)
	rg.POST("/rank", h.rank)
}

type recommendRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Occasion string `json:"occasion" binding:"required"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}
	c.Set("userId", req.UserID)

	recs, err := h.Svc.Recommend(c.Request.Context(), req.UserID, req.Occasion)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build recommendations", nil)
		}
		return
	}
	respond.OK(c, gin.H{"recommendations": recs})
}

type rankRequest struct {
	User     json.RawMessage `json:"user"`
	Items    json.RawMessage `json:"items"`
	Occasion string          `json:"occasion"`
}

// rank scores caller-supplied records without touching storage.
func (h *Handler) rank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}
	prefs, err := DecodePreferences(req.User)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	items, err := DecodeItems(req.Items)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, gin.H{"recommendations": RankObserved(prefs, items, req.Occasion)})
}
