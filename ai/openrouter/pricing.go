package openrouter

// ModelPricing is USD per million tokens.
type ModelPricing struct {
	PromptPrice     float64
	CompletionPrice float64
}

// modelPricing covers the models milassist is usually pointed at. Used only
// for the cost estimate in debug logs.
var modelPricing = map[string]ModelPricing{
	"openai/gpt-4o":                    {PromptPrice: 2.50, CompletionPrice: 10.00},
	"openai/gpt-4o-mini":               {PromptPrice: 0.15, CompletionPrice: 0.60},
	"anthropic/claude-3.5-sonnet":      {PromptPrice: 3.00, CompletionPrice: 15.00},
	"anthropic/claude-3-haiku":         {PromptPrice: 0.25, CompletionPrice: 1.25},
	"google/gemini-flash-1.5":          {PromptPrice: 0.075, CompletionPrice: 0.30},
	"meta-llama/llama-3.1-8b-instruct": {PromptPrice: 0.055, CompletionPrice: 0.055},
}

// DefaultPricingFallback is the per-request estimate for unknown models.
const DefaultPricingFallback = 0.01

// CalculateCost estimates the USD cost of one call.
func CalculateCost(model string, promptTokens, completionTokens int) float64 {
	p, ok := modelPricing[model]
	if !ok {
		return DefaultPricingFallback
	}
	return float64(promptTokens)/1_000_000*p.PromptPrice +
		float64(completionTokens)/1_000_000*p.CompletionPrice
}

// GetPricing returns the pricing for model, if known.
func GetPricing(model string) (ModelPricing, bool) {
	p, ok := modelPricing[model]
	return p, ok
}
