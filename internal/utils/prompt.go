package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tone-converter-service/internal/models"
)

const upwardPrompt = `You rewrite workplace messages that will be sent to a superior (manager, team lead, executive).
Rewrite the user's text so that it:
- is respectful and polite without being servile,
- states the conclusion or request first, then the supporting details,
- is concise and removes filler, emotion and ambiguity,
- keeps every fact, number, date and name from the original.
Reply in the same language as the user's text. Output only the rewritten message, with no preamble or explanation.`

const lateralPrompt = `You rewrite workplace messages that will be sent to a peer or colleague on another team.
Rewrite the user's text so that it:
- is friendly and cooperative while staying professional,
- makes the request, its reason and any deadline explicit,
- avoids blame and sounds like an invitation to work together,
- keeps every fact, number, date and name from the original.
Reply in the same language as the user's text. Output only the rewritten message, with no preamble or explanation.`

const externalPrompt = `You rewrite messages that will be sent to an external customer or client.
Rewrite the user's text so that it:
- is courteous, professional and service oriented,
- acknowledges the customer's situation before giving information,
- explains next steps clearly and avoids internal jargon,
- keeps every fact, number, date and name from the original.
Reply in the same language as the user's text. Output only the rewritten message, with no preamble or explanation.`

// PromptSet maps each target to its system prompt. It is not modified after load.
type PromptSet struct {
	prompts map[models.Target]string
}

func DefaultPrompts() *PromptSet {
	return &PromptSet{prompts: map[models.Target]string{
		models.TargetUpward:   upwardPrompt,
		models.TargetLateral:  lateralPrompt,
		models.TargetExternal: externalPrompt,
	}}
}

// LoadPrompts returns the default prompts, replacing each one with
// <dir>/<target>.txt (lowercase target name) when that file exists.
func LoadPrompts(dir string) (*PromptSet, error) {
	set := DefaultPrompts()
	if dir == "" {
		return set, nil
	}

	for _, target := range models.Targets {
		path := filepath.Join(dir, strings.ToLower(string(target))+".txt")
		prompt, err := LoadPromptFromFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load prompt for %s: %w", target, err)
		}
		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			return nil, fmt.Errorf("load prompt for %s: %s is empty", target, path)
		}
		set.prompts[target] = prompt
	}

	return set, nil
}

// Resolve returns the system prompt for target.
func (p *PromptSet) Resolve(target models.Target) (string, bool) {
	prompt, ok := p.prompts[target]
	return prompt, ok
}

func LoadPromptFromFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
