package model

import (
	"encoding/json"
	"strings"
)

// FlexBool is a boolean that tolerates the loose encodings clients send:
// native JSON booleans, the strings "true"/"1"/"yes" (case-insensitive), and
// numbers (nonzero means true). Unrecognized values leave Valid false so the
// field's default applies, same as if it were omitted.
type FlexBool struct {
	Bool  bool
	Valid bool
}

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		f.Bool, f.Valid = t, true
	case string:
		f.Bool, f.Valid = ParseBool(t), true
	case float64:
		f.Bool, f.Valid = t != 0, true
	}
	return nil
}

// Or returns the parsed value, or fallback if none was supplied.
func (f FlexBool) Or(fallback bool) bool {
	if f.Valid {
		return f.Bool
	}
	return fallback
}

// ParseBool interprets a boolean query or body string. Only "true", "1" and
// "yes" (case-insensitive) are truthy; every other string is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// IntOrDefault returns the dereferenced pointer value, or the fallback if nil.
func IntOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
