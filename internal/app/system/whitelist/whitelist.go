// internal/app/system/whitelist/whitelist.go

// Package whitelist checks registration whitelists. The availability editor
// stores whitelist text verbatim; this is the one place the text is parsed.
package whitelist

import "strings"

// Allows reports whether email appears in the whitelist text. Entries are
// separated by any combination of commas, semicolons, spaces, or newlines,
// and matching is case-insensitive. Empty whitelist text allows everyone.
func Allows(text, email string) bool {
	entries := Entries(text)
	if len(entries) == 0 {
		return true
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range entries {
		if e == email {
			return true
		}
	}
	return false
}

// Entries splits whitelist text into normalized (lowercased) entries.
func Entries(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToLower(f))
	}
	return out
}
