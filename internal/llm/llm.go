package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Explainer produces a short natural-language justification for an outfit.
type Explainer interface {
	Explain(ctx context.Context, input OutfitInput) (string, error)
}

// Profile is the user context sent alongside an outfit.
type Profile struct {
	Name           string   `json:"name"`
	HeightCm       *int     `json:"height_cm,omitempty"`
	BodyType       string   `json:"body_type"`
	Style          string   `json:"style"`
	FavoriteColors []string `json:"favorite_colors"`
}

// Outfit is a recommended item as returned to clients.
type Outfit struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Occasion    string  `json:"occasion"`
	Comfort     float64 `json:"comfort"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// OutfitInput captures what an Explainer needs.
type OutfitInput struct {
	Profile Profile
	Outfit  Outfit
}

// ErrUnavailable is returned when the upstream explainer is short-circuited.
var ErrUnavailable = errors.New("llm explainer unavailable")

const defaultReason = "it suits your preferences"

// TemplateExplainer renders a deterministic sentence without calling out.
type TemplateExplainer struct{}

// Explain never fails.
func (TemplateExplainer) Explain(ctx context.Context, input OutfitInput) (string, error) {
	_ = ctx
	return Template(input.Outfit), nil
}

// Template renders the fallback explanation for outfit.
func Template(outfit Outfit) string {
	category := strings.TrimSpace(outfit.Category)
	if category == "" {
		category = "outfit"
	}
	reason := strings.TrimSpace(outfit.Explanation)
	if reason == "" {
		reason = defaultReason
	}
	if color := strings.TrimSpace(outfit.Color); color != "" {
		return fmt.Sprintf("This %s in %s is recommended because %s.", category, color, reason)
	}
	return fmt.Sprintf("This %s is recommended because %s.", category, reason)
}

var _ Explainer = TemplateExplainer{}
