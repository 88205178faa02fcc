package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserLookup reports whether a user exists.
type UserLookup interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

var validate = validator.New()

type Service struct {
	Repo  Repo
	Users UserLookup
	now   func() time.Time
}

func NewService(repo Repo, users UserLookup) *Service {
	return &Service{Repo: repo, Users: users, now: time.Now}
}

// Add validates item and stores it for userID.
func (s *Service) Add(ctx context.Context, userID string, item Item) (Item, error) {
	if s == nil || s.Repo == nil || s.Users == nil {
		return Item{}, errors.New("wardrobe service not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Item{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	ok, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return Item{}, fmt.Errorf("lookup user: %w", err)
	}
	if !ok {
		return Item{}, ErrUserNotFound
	}

	item.Category = strings.TrimSpace(item.Category)
	item.Color = strings.TrimSpace(item.Color)
	item.Occasion = strings.TrimSpace(item.Occasion)
	item.Tags = strings.TrimSpace(item.Tags)
	if err := validate.Struct(item); err != nil {
		return Item{}, fmt.Errorf("%w: %s", ErrInvalidInput, describeValidation(err))
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	item.ID = uuid.NewString()
	item.UserID = userID
	item.CreatedAt = now().UTC()
	if err := s.Repo.Create(ctx, item); err != nil {
		return Item{}, fmt.Errorf("create wardrobe item: %w", err)
	}
	return item, nil
}

// ListByUser returns userID's items in insertion order.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("wardrobe service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "min", "max":
			parts = append(parts, field+" must be between 1 and 10")
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
