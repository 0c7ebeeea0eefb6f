// Package detection merges the raw outputs of the vision backends into a
// deduplicated list of detection candidates.
package detection

// Method identifies how a candidate was detected.
type Method string

const (
	MethodLabel    Method = "label"
	MethodObject   Method = "object"
	MethodText     Method = "text"
	MethodAIPrompt Method = "ai-prompt"
)

// Source tags attached to candidates.
const (
	SourceVision   = "vision-detected"
	SourceAIPrompt = "ai-prompt-detected"
)

// Candidate is a transient, unconfirmed item produced by the reconciliation
// pipeline. It is never persisted directly; the user confirms candidates
// before they become inventory items.
type Candidate struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Emoji      string  `json:"emoji,omitempty"`
	Confidence int     `json:"confidence"`
	ExpiryDate string  `json:"expiryDate,omitempty"`
	Method     Method  `json:"detectionMethod"`
	Source     string  `json:"source"`
}
