package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiExtractor implements IntentExtractor using Google's Gemini models.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExtractor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)

	return &GeminiExtractor{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiExtractor) Close() {
	p.client.Close()
}

func (p *GeminiExtractor) ModelName() string { return geminiModel }

// ExtractSlots asks Gemini for the slot candidates found in one message.
func (p *GeminiExtractor) ExtractSlots(ctx context.Context, message string, history []string, now time.Time) (*SlotCandidates, error) {
	prompt := fmt.Sprintf("%s\n\nUser Message: %s", buildSystemPrompt(history, now), message)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	cleanJSON := cleanJSONString(responseText.String())

	var result SlotCandidates
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return &result, nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(history []string, now time.Time) string {
	historyText := "NONE"
	if len(history) > 0 {
		historyText = strings.Join(history, "\n")
	}

	return fmt.Sprintf(`Role: You are the slot-extraction core for a private-jet charter quoting service.
Context:
- Current Date: %s (%s)
- Recent Conversation:
%s

TASK: Extract ONLY the trip slots present in the current user message. Do not
invent values; omit any slot the message does not mention.

RULES:
1. Airports: resolve city names to IATA codes when confident (e.g. "Boston" -> "BOS",
   "LA" -> "LAX", "Vegas" -> "LAS"). If the user gives a 3-letter code, return it
   uppercased even if you do not recognize it.
2. Dates: resolve relative phrases against the Current Date. A bare weekday means
   the NEXT occurrence of that weekday strictly after today. Output YYYY-MM-DD.
3. "round trip" with no return date -> "round_trip": true, leave return_date null.
4. Passenger phrases ("for 6 people", "change to 4 passengers") -> "passengers".
5. Size phrases: "bigger/larger aircraft" -> "size_steps": 1, "smaller" -> -1.
   Never set passengers from a size phrase.

Output JSON Schema:
{
  "origin": "IATA code or null",
  "destination": "IATA code or null",
  "departure_date": "YYYY-MM-DD or null",
  "return_date": "YYYY-MM-DD or null",
  "round_trip": boolean,
  "passengers": integer or null,
  "size_steps": integer (default 0)
}
`, now.Format("2006-01-02"), now.Weekday(), historyText)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
