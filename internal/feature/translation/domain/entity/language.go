package entity

import (
	"encoding/json"
	"fmt"
)

// Language is a UI language the app can be shown in.
type Language struct {
	Code string
	Name string
}

// DefaultLanguage is the code of the canonical table.
const DefaultLanguage = "en"

// Languages lists the supported languages, English first.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
	{Code: "ml", Name: "Malayalam"},
}

// LookupLanguage returns the language for code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Merge overlays a JSON object of translated strings onto base. Only keys
// that exist in UITexts and carry a string value are taken; everything else
// keeps the base value. It returns the merged table and how many keys were
// replaced.
func Merge(base UITexts, translated []byte) (UITexts, int, error) {
	var incoming map[string]any
	if err := json.Unmarshal(translated, &incoming); err != nil {
		return base, 0, fmt.Errorf("translation is not a JSON object: %w", err)
	}

	b, err := json.Marshal(base)
	if err != nil {
		return base, 0, err
	}
	table := map[string]string{}
	if err := json.Unmarshal(b, &table); err != nil {
		return base, 0, err
	}

	merged := 0
	for key, v := range incoming {
		if _, known := table[key]; !known {
			continue
		}
		if s, ok := v.(string); ok {
			table[key] = s
			merged++
		}
	}

	b, err = json.Marshal(table)
	if err != nil {
		return base, 0, err
	}
	var out UITexts
	if err := json.Unmarshal(b, &out); err != nil {
		return base, 0, err
	}
	return out, merged, nil
}
