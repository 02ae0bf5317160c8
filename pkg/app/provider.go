package app

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/mindmate/pkg/companion"
	"tableflip.dev/mindmate/pkg/companion/anthropic"
	"tableflip.dev/mindmate/pkg/companion/gemini"
)

// Provider names a companion backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// NewCollaborator builds the configured backend. API keys come from
// GEMINI_API_KEY or ANTHROPIC_API_KEY.
func NewCollaborator(ctx context.Context, provider Provider, model string) (companion.Collaborator, error) {
	switch provider {
	case "", ProviderGemini:
		c, err := gemini.New(ctx, os.Getenv("GEMINI_API_KEY"), model)
		if err != nil {
			return nil, err
		}
		return c, nil
	case ProviderAnthropic:
		c, err := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"), model)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("app: unknown ai provider %q", provider)
	}
}
