// Package format holds the small string helpers shared by the lead pipeline.
package format

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five markup-significant characters in s.
// It is not idempotent: an already escaped entity is escaped again.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Phone renders a North American number as (AAA) PPP-LLLL. A leading
// country code of 1 is dropped. Input that does not reduce to exactly
// ten digits is returned unchanged.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return raw
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}
