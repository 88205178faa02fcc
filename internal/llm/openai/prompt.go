package openai

import (
	"fmt"
	"strconv"
	"strings"

	"styleup-backend/internal/llm"
)

// BuildPrompt renders the user message for one outfit.
func BuildPrompt(input llm.OutfitInput) string {
	p := input.Profile
	o := input.Outfit
	height := "unknown"
	if p.HeightCm != nil {
		height = strconv.Itoa(*p.HeightCm)
	}
	var b strings.Builder
	b.WriteString("You are StyleUp, a helpful fashion assistant.\n")
	fmt.Fprintf(&b, "User profile: name=%s, height=%s, body_type=%s, style=%s, favorite_colors=%s.\n",
		p.Name, height, p.BodyType, p.Style, strings.Join(p.FavoriteColors, ", "))
	fmt.Fprintf(&b, "Outfit: category=%s, color=%s, occasion=%s, comfort=%s.\n",
		o.Category, o.Color, o.Occasion, strconv.FormatFloat(o.Comfort, 'f', -1, 64))
	b.WriteString("Explain in 2-3 short sentences why this outfit is a good match for the user, focusing on style, color, and comfort. Keep language simple and non-technical.")
	return b.String()
}
