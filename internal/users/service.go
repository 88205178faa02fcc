package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Register validates and stores a new profile, assigning its ID.
func (s *Service) Register(ctx context.Context, user User) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if user.HeightCm != nil && *user.HeightCm < 0 {
		return User{}, fmt.Errorf("%w: height_cm must not be negative", ErrInvalidInput)
	}
	user.BodyType = strings.TrimSpace(user.BodyType)
	user.Style = strings.TrimSpace(user.Style)
	colors := make([]string, 0, len(user.FavoriteColors))
	for _, c := range user.FavoriteColors {
		if c = strings.TrimSpace(c); c != "" {
			colors = append(colors, c)
		}
	}
	user.FavoriteColors = colors

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	user.ID = uuid.NewString()
	user.CreatedAt = now().UTC()
	user.UpdatedAt = user.CreatedAt
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

// Exists reports whether userID is registered.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := s.GetByID(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
		return false, nil
	default:
		return false, err
	}
}
