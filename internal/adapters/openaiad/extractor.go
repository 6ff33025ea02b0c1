package openaiad

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a travel intent extraction system. Extract structured information from user travel requests.

CRITICAL: For location extraction:
- Extract the most specific location mentioned (city, region, or country)
- Use the exact name as mentioned (e.g., "Maldives", "Paris", "New York", "Orlando")
- If multiple locations are mentioned, use the primary destination
- If location is ambiguous, extract what the user likely means
- Common locations: Maldives, Paris, Rome, New York, Orlando, Tokyo, Dubai, Cancun, Maui, Hawaii, etc.

For mood: Choose from: adventure, relaxing, romantic, family, nightlife, culture, beach, mountain
For party: Extract number of adults and children (if mentioned)
For budget: value (<$150/night), mid ($150-350), premium ($350-700), luxury ($700+)

Return valid JSON only.`

// Extractor asks a chat model for a constrained JSON intent document.
// Decoding settings are fixed and low-temperature to keep extraction
// stable across identical prompts.
type Extractor struct {
	cl    *openai.Client
	model string
}

func New(apiKey, model string) (*Extractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Extractor{cl: openai.NewClient(apiKey), model: model}, nil
}

// ExtractIntent returns the raw JSON document produced by the model.
// Parsing, validation and defaulting happen in the app layer.
func (e *Extractor) ExtractIntent(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := e.cl.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`Extract travel intent from this request: %q

Return JSON with: mood, location (as string - city/region/country name), party (object with adults and optional kids), dates (optional), budget (optional), nonNegotiables (array), interests (array).`, prompt),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    0.2,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("empty completion")
	}
	return []byte(resp.Choices[0].Message.Content), nil
}
