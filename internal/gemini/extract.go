package gemini

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject pulls the first top-level JSON object out of free-form
// model output: everything from the first '{' to the last '}'. Prose before
// or after the braces is tolerated; absent or malformed JSON yields a
// ParseError.
func ExtractJSONObject(text string) (map[string]interface{}, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &ParseError{Reason: "no JSON object in response"}
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, &ParseError{Reason: "invalid JSON object", Err: err}
	}
	return obj, nil
}
