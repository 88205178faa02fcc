package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"styleup-backend/internal/shared/metrics"
	"styleup-backend/internal/shared/telemetry"
)

var (
	ErrInvalidInput = errors.New("invalid recommendation request")
	ErrUserNotFound = errors.New("user not found")
)

// ProfileSource loads the preferences of a registered user. It returns
// ErrUserNotFound when the user does not exist.
type ProfileSource interface {
	Preferences(ctx context.Context, userID string) (Preferences, error)
}

// WardrobeSource lists a user's wardrobe in insertion order.
type WardrobeSource interface {
	Items(ctx context.Context, userID string) ([]Item, error)
}

// Service loads a user's profile and wardrobe and ranks it.
type Service struct {
	Profiles ProfileSource
	Wardrobe WardrobeSource
}

func NewService(profiles ProfileSource, wardrobe WardrobeSource) *Service {
	return &Service{Profiles: profiles, Wardrobe: wardrobe}
}

// Recommend returns up to TopK ranked outfits for userID and occasion.
func (s *Service) Recommend(ctx context.Context, userID, occasion string) ([]Recommendation, error) {
	if s == nil || s.Profiles == nil || s.Wardrobe == nil {
		return nil, errors.New("recommend service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if occasion == "" {
		return nil, fmt.Errorf("%w: occasion is required", ErrInvalidInput)
	}

	prefs, err := s.Profiles.Preferences(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.RecommendationsTotal.WithLabelValues("user_not_found").Inc()
			return nil, err
		}
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load profile: %w", err)
	}
	items, err := s.Wardrobe.Items(ctx, userID)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load wardrobe: %w", err)
	}

	return RankObserved(prefs, items, occasion), nil
}

// RankObserved runs Rank and records its timing and outcome.
func RankObserved(prefs Preferences, items []Item, occasion string) []Recommendation {
	start := time.Now()
	recs := Rank(prefs, items, occasion)
	elapsed := time.Since(start)
	metrics.ObserveRank(len(items), len(recs), elapsed)
	telemetry.Debug("recommend.ranked", map[string]any{
		"occasion":    occasion,
		"candidates":  len(items),
		"results":     len(recs),
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})
	return recs
}
