package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"styleup-backend/internal/llm"
	"styleup-backend/internal/shared/telemetry"
)

const (
	systemPrompt = "You are a concise fashion assistant."
	maxTokens    = 150
	temperature  = 0.3
	defaultModel = "gpt-4o-mini"
)

// Explainer implements llm.Explainer with OpenAI or Azure OpenAI chat completions.
type Explainer struct {
	client  *goopenai.Client
	model   string
	timeout time.Duration
}

// Options configures the explainer.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// AzureOptions configures an Azure OpenAI deployment.
type AzureOptions struct {
	APIBase    string
	APIKey     string
	Deployment string
	APIVersion string
	Timeout    time.Duration
}

// NewExplainer builds an explainer against the public OpenAI API.
func NewExplainer(opts Options) (*Explainer, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	cfg := goopenai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultModel
	}
	return &Explainer{
		client:  goopenai.NewClientWithConfig(cfg),
		model:   model,
		timeout: normalizeTimeout(opts.Timeout),
	}, nil
}

// NewAzureExplainer builds an explainer against an Azure OpenAI deployment.
func NewAzureExplainer(opts AzureOptions) (*Explainer, error) {
	if strings.TrimSpace(opts.APIBase) == "" || strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_API_BASE and AZURE_OPENAI_KEY are required")
	}
	deployment := strings.TrimSpace(opts.Deployment)
	if deployment == "" {
		return nil, fmt.Errorf("AZURE_OPENAI_DEPLOYMENT is required")
	}
	cfg := goopenai.DefaultAzureConfig(opts.APIKey, opts.APIBase)
	if opts.APIVersion != "" {
		cfg.APIVersion = opts.APIVersion
	}
	cfg.AzureModelMapperFunc = func(string) string { return deployment }
	return &Explainer{
		client:  goopenai.NewClientWithConfig(cfg),
		model:   deployment,
		timeout: normalizeTimeout(opts.Timeout),
	}, nil
}

// Explain asks the model for a two to three sentence justification.
func (e *Explainer) Explain(ctx context.Context, input llm.OutfitInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: e.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: BuildPrompt(input)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", fmt.Errorf("openai complete: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	telemetry.Info("llm.response", map[string]any{
		"model":             e.model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})
	return text, nil
}

func normalizeTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 20 * time.Second
	}
	return d
}

var _ llm.Explainer = (*Explainer)(nil)
