package models

import "fmt"

// Target is the audience a text is rewritten for.
type Target string

const (
	TargetUpward   Target = "Upward"
	TargetLateral  Target = "Lateral"
	TargetExternal Target = "External"
)

// Targets lists every known target in display order.
var Targets = []Target{TargetUpward, TargetLateral, TargetExternal}

var targetDescriptions = map[Target]string{
	TargetUpward:   "To a superior: respectful, concise, conclusion first.",
	TargetLateral:  "To a peer: friendly, clear, cooperative.",
	TargetExternal: "To a customer: polite, professional, service oriented.",
}

// ParseTarget matches s exactly against the known targets.
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown target %q", s)
}

func (t Target) Description() string {
	return targetDescriptions[t]
}

type ConvertRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// ConvertInput is a ConvertRequest that passed validation.
type ConvertInput struct {
	Text   string
	Target Target
}

type ConvertResponse struct {
	OriginalText  string `json:"original_text"`
	ConvertedText string `json:"converted_text"`
	Target        Target `json:"target"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type TargetInfo struct {
	ID          Target `json:"id"`
	Description string `json:"description"`
}

type ProviderStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type HealthResponse struct {
	Status   string         `json:"status"`
	Provider ProviderStatus `json:"provider"`
}
