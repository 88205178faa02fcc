package users

import (
	"errors"
	"net/http"

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
	rg.POST("/register", h.register)
	rg.GET("/users/:id", h.get)
}

type registerRequest struct {
	Name           string   `json:"name" binding:"required"`
	HeightCm       *int     `json:"height_cm" binding:"omitempty,min=0,max=300"`
	BodyType       string   `json:"body_type"`
	Style          string   `json:"style"`
	FavoriteColors []string `json:"favorite_colors"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}
	user, err := h.Svc.Register(c.Request.Context(), User{
		Name:           req.Name,
		HeightCm:       req.HeightCm,
		BodyType:       req.BodyType,
		Style:          req.Style,
		FavoriteColors: req.FavoriteColors,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register user", nil)
		return
	}
	c.Set("userId", user.ID)
	respond.OK(c, gin.H{"user_id": user.ID})
}

func (h *Handler) get(c *gin.Context) {
	user, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		}
		return
	}
	respond.OK(c, user)
}
