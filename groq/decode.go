package groq

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripFences removes a markdown code fence wrapper, with or without a
// language tag, tolerating its absence.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// DecodeMap parses possibly fence-wrapped LLM output as a JSON object.
// Fails closed with ErrDecode: garbled or truncated text is never coerced
// into a partial result.
func DecodeMap(text string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return out, nil
}

// DecodeInto parses possibly fence-wrapped LLM output into v. Same failure
// contract as DecodeMap.
func DecodeInto(text string, v any) error {
	if err := json.Unmarshal([]byte(stripFences(text)), v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
