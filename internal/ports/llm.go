package ports

import "context"

// InterpretInput holds everything the LLM needs to enrich a reading.
// DraftText is the template-composed interpretation the LLM may improve
// on; callers fall back to it when the LLM is unavailable.
type InterpretInput struct {
	Spread    string
	Category  string
	Question  string
	Strength  string
	Pattern   string
	Cards     []CardInput
	DraftText string
}

// CardInput is a simplified card representation for the LLM prompt.
type CardInput struct {
	Name          string
	LocalizedName string
	PositionLabel string
	Orientation   string
	Keywords      []string
	Meaning       string
}

// InterpretOutput is the structured interpretation returned by the LLM.
type InterpretOutput struct {
	Text       string `json:"text"`
	Style      string `json:"style"`
	Disclaimer string `json:"disclaimer"`
	Model      string `json:"-"`
}

// Interpreter generates a tarot interpretation via an LLM.
type Interpreter interface {
	Interpret(ctx context.Context, in InterpretInput) (InterpretOutput, error)
}
