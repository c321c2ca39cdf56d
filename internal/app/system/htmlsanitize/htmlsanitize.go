// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from author-entered text before it is
// stored. Course, unit, and lesson titles are plain text in the console;
// anything that survives bluemonday's strict policy is safe to echo back.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Sanitize removes all HTML from s and trims surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
