package openrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	assert.InDelta(t, 0.15+0.60, CalculateCost("openai/gpt-4o-mini", 1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.0, CalculateCost("openai/gpt-4o-mini", 0, 0), 1e-9)
	assert.Equal(t, DefaultPricingFallback, CalculateCost("unknown/model", 100, 100))
}

func TestGetPricing(t *testing.T) {
	p, ok := GetPricing(DefaultModel)
	assert.True(t, ok)
	assert.Equal(t, 0.15, p.PromptPrice)

	_, ok = GetPricing("unknown/model")
	assert.False(t, ok)
}
