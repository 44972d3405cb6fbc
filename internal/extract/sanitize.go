// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Policy controls post-extraction text normalization. The zero value leaves
// text untouched; DefaultPolicy matches what downstream text-oriented
// consumers expect.
type Policy struct {
	// StripNonASCII removes every code point outside the 7-bit ASCII range.
	StripNonASCII bool

	// CollapseWhitespace replaces every whitespace run, newlines included,
	// with a single space. This flattens the document to one line.
	CollapseWhitespace bool
}

// DefaultPolicy returns the standard sanitization: ASCII-only, single-line.
func DefaultPolicy() Policy {
	return Policy{StripNonASCII: true, CollapseWhitespace: true}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize applies the policy to text. It is idempotent.
func Sanitize(text string, policy Policy) string {
	if policy.StripNonASCII {
		text = strings.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		}, text)
	}
	if policy.CollapseWhitespace {
		text = whitespaceRun.ReplaceAllString(text, " ")
	}
	return strings.TrimSpace(text)
}
