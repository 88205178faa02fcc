package chat

import (
	"context"
	"errors"
	"testing"

	"styleup-backend/internal/llm"
)

type stubProfiles map[string]llm.Profile

func (s stubProfiles) Profile(ctx context.Context, userID string) (llm.Profile, error) {
	p, ok := s[userID]
	if !ok {
		return llm.Profile{}, ErrUserNotFound
	}
	return p, nil
}

type stubExplainer struct {
	text string
	err  error
	got  llm.OutfitInput
}

func (s *stubExplainer) Explain(ctx context.Context, input llm.OutfitInput) (string, error) {
	s.got = input
	return s.text, s.err
}

var shirt = llm.Outfit{ID: "w1", Category: "shirt", Color: "blue", Explanation: "high comfort"}

func TestExplainUsesExplainer(t *testing.T) {
	exp := &stubExplainer{text: "Looks great."}
	svc := NewService(stubProfiles{"u1": {Name: "Ada", Style: "casual"}}, exp)

	text, err := svc.Explain(context.Background(), "u1", shirt)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if text != "Looks great." {
		t.Fatalf("unexpected text %q", text)
	}
	if exp.got.Profile.Name != "Ada" || exp.got.Outfit.Category != "shirt" {
		t.Fatalf("explainer got unexpected input %+v", exp.got)
	}
}

func TestExplainFallsBackToTemplate(t *testing.T) {
	cases := map[string]*stubExplainer{
		"error":       {err: errors.New("timeout")},
		"unavailable": {err: llm.ErrUnavailable},
		"blank":       {text: "  "},
	}
	for name, exp := range cases {
		exp := exp
		t.Run(name, func(t *testing.T) {
			svc := NewService(stubProfiles{"u1": {}}, exp)
			text, err := svc.Explain(context.Background(), "u1", shirt)
			if err != nil {
				t.Fatalf("Explain: %v", err)
			}
			if want := "This shirt in blue is recommended because high comfort."; text != want {
				t.Fatalf("expected %q, got %q", want, text)
			}
		})
	}
}

func TestExplainDefaultsToTemplateExplainer(t *testing.T) {
	svc := NewService(stubProfiles{"u1": {}}, nil)
	text, err := svc.Explain(context.Background(), "u1", llm.Outfit{Category: "coat", Color: "red"})
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if text != "This coat in red is recommended because it suits your preferences." {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExplainErrors(t *testing.T) {
	svc := NewService(stubProfiles{}, &stubExplainer{text: "x"})
	if _, err := svc.Explain(context.Background(), "ghost", shirt); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Explain(context.Background(), "", shirt); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
