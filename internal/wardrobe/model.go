package wardrobe

import (
	"time"

	"styleup-backend/internal/recommend"
)

// Item is one wardrobe piece owned by a user.
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category" validate:"required"`
	Color     string    `json:"color" validate:"required"`
	Occasion  string    `json:"occasion" validate:"required"`
	Comfort   int       `json:"comfort" validate:"min=1,max=10"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Rankable converts the item into the ranker's input shape.
func (it Item) Rankable() recommend.Item {
	return recommend.Item{
		ID:       it.ID,
		Category: it.Category,
		Color:    it.Color,
		Occasion: it.Occasion,
		Comfort:  it.Comfort,
		Tags:     it.Tags,
	}
}

// Rankables converts a slice of items, preserving order.
func Rankables(items []Item) []recommend.Item {
	out := make([]recommend.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it.Rankable())
	}
	return out
}
