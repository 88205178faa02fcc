package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"styleup-backend/internal/llm"
	"styleup-backend/internal/shared/metrics"
	"styleup-backend/internal/shared/telemetry"
)

var (
	ErrInvalidInput = errors.New("invalid chat request")
	ErrUserNotFound = errors.New("user not found")
)

// ProfileSource loads the profile sent to the explainer. It returns
// ErrUserNotFound when the user does not exist.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (llm.Profile, error)
}

// Service explains outfits, falling back to a template when the explainer fails.
type Service struct {
	Profiles  ProfileSource
	Explainer llm.Explainer
}

func NewService(profiles ProfileSource, explainer llm.Explainer) *Service {
	if explainer == nil {
		explainer = llm.TemplateExplainer{}
	}
	return &Service{Profiles: profiles, Explainer: explainer}
}

// Explain returns a justification for outfit. Explainer errors are logged and
// answered with the template text rather than surfaced.
func (s *Service) Explain(ctx context.Context, userID string, outfit llm.Outfit) (string, error) {
	if s == nil || s.Profiles == nil {
		return "", errors.New("chat service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	profile, err := s.Profiles.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("load profile: %w", err)
	}

	explainer := s.Explainer
	if explainer == nil {
		explainer = llm.TemplateExplainer{}
	}
	text, err := explainer.Explain(ctx, llm.OutfitInput{Profile: profile, Outfit: outfit})
	if err != nil || strings.TrimSpace(text) == "" {
		fields := map[string]any{"user_id": userID, "outfit_id": outfit.ID}
		if err != nil {
			fields["error"] = err
		}
		telemetry.Warn("chat.explain_fallback", fields)
		metrics.ExplanationsTotal.WithLabelValues("template").Inc()
		return llm.Template(outfit), nil
	}
	if _, ok := explainer.(llm.TemplateExplainer); ok {
		metrics.ExplanationsTotal.WithLabelValues("template").Inc()
	} else {
		metrics.ExplanationsTotal.WithLabelValues("llm").Inc()
	}
	return text, nil
}
