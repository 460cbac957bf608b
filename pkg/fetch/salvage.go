package fetch

import (
	"encoding/json"
	"regexp"
)

// titlePattern matches a "title": "..." field, tolerating escaped quotes
// inside the value.
var titlePattern = regexp.MustCompile(`"title"\s*:\s*"((?:[^"\\]|\\.)*)"`)

// salvageTitle recovers a minimal {"struct":{"title":...}} object from a body
// that failed full JSON decoding. Returns nil when no title can be found.
func salvageTitle(body []byte) json.RawMessage {
	m := titlePattern.FindSubmatch(body)
	if m == nil {
		return nil
	}

	var title string
	if err := json.Unmarshal([]byte(`"`+string(m[1])+`"`), &title); err != nil {
		return nil
	}

	out, err := json.Marshal(map[string]any{
		"struct": map[string]string{"title": title},
	})
	if err != nil {
		return nil
	}
	return out
}
