package ai

import (
	"context"
	"time"
)

// IntentExtractor defines the contract for the optional model-assisted slot
// extraction collaborator. Implementations may be swapped (Gemini, OpenAI,
// etc.); callers must treat any error as "use the rule-based path instead".
type IntentExtractor interface {
	// ExtractSlots analyzes a user message plus short conversation history
	// and returns structured slot candidates. now anchors relative dates.
	ExtractSlots(ctx context.Context, message string, history []string, now time.Time) (*SlotCandidates, error)

	// ModelName identifies the backing model for status reporting.
	ModelName() string
}
