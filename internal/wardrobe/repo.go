package wardrobe

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput = errors.New("invalid wardrobe item")
	ErrUserNotFound = errors.New("user not found")
)

// Repo persists wardrobe items. ListByUser returns items in insertion order.
type Repo interface {
	Create(ctx context.Context, item Item) error
	ListByUser(ctx context.Context, userID string) ([]Item, error)
}
