package wardrobe

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"styleup-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/add-wardrobe", h.add)
	rg.GET("/wardrobe", h.list)
}

type addRequest struct {
	Category string `json:"category" binding:"required"`
	Color    string `json:"color" binding:"required"`
	Occasion string `json:"occasion" binding:"required"`
	Comfort  int    `json:"comfort" binding:"required,min=1,max=10"`
	Tags     string `json:"tags"`
}

func (h *Handler) add(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}
	c.Set("userId", userID)

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}

	item, err := h.Svc.Add(c.Request.Context(), userID, Item{
		Category: req.Category,
		Color:    req.Color,
		Occasion: req.Occasion,
		Comfort:  req.Comfort,
		Tags:     req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to add wardrobe item", nil)
		}
		return
	}
	respond.OK(c, gin.H{"item_id": item.ID})
}

func (h *Handler) list(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	c.Set("userId", userID)
	items, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list wardrobe", nil)
		return
	}
	respond.OK(c, gin.H{"items": items})
}
