package users

import (
	"time"

	"styleup-backend/internal/recommend"
)

// User is a registered style profile.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HeightCm       *int      `json:"height_cm,omitempty"`
	BodyType       string    `json:"body_type"`
	Style          string    `json:"style"`
	FavoriteColors []string  `json:"favorite_colors"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Preferences projects the profile onto the fields the ranker reads.
func (u User) Preferences() recommend.Preferences {
	return recommend.Preferences{
		FavoriteColors: append([]string(nil), u.FavoriteColors...),
		Style:          u.Style,
		BodyType:       u.BodyType,
	}
}
