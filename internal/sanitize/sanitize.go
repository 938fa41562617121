// Package sanitize normalizes untrusted form field values. All functions are
// pure: non-string input yields the field kind's empty representation and
// never panics, so handlers can feed raw decoded values straight through.
package sanitize

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
)

var (
	phoneAllowed = regexp.MustCompile(`[^0-9+\-\s]`)
	emailStrip   = regexp.MustCompile("[^a-z0-9!#$%&'*+\\-/=?^_`{|}~.@\\[\\]]")
	tagPattern   = regexp.MustCompile(`(?i)</?([a-zA-Z][a-zA-Z0-9]*)\b[^>]*/?>`)
)

// Tags preserved by LimitedHTML: basic inline and structural markup only.
var allowedTags = map[string]bool{
	"p": true, "br": true, "strong": true, "em": true, "u": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "a": true, "img": true,
}

func asString(value interface{}) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// String trims whitespace, removes backslash escaping, HTML-escapes the
// result, and truncates to maxLen runes. Non-string input yields "".
func String(value interface{}, maxLen int) string {
	s, ok := asString(value)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	s = stripSlashes(s)
	s = html.EscapeString(s)
	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = string(runes[:maxLen])
		}
	}
	return s
}

// Email lower-cases and strips unsafe characters, then validates the result
// has RFC address shape. Invalid or non-string input yields "" — callers must
// treat empty as missing, not as a sanitized empty address.
func Email(value interface{}) string {
	s, ok := asString(value)
	if !ok {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = emailStrip.ReplaceAllString(s, "")

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ""
	}
	// mail.ParseAddress accepts domains without a dot; real submitters
	// always have one.
	at := strings.LastIndex(s, "@")
	if !strings.Contains(s[at+1:], ".") {
		return ""
	}
	return s
}

// maxPhoneLen matches the inquiries.phone column width.
const maxPhoneLen = 30

// Phone strips every character except digits, '+', '-', and whitespace, then
// truncates to the storage width. It does not validate country code.
func Phone(value interface{}) string {
	s, ok := asString(value)
	if !ok {
		return ""
	}
	s = phoneAllowed.ReplaceAllString(s, "")
	runes := []rune(s)
	if len(runes) > maxPhoneLen {
		s = string(runes[:maxPhoneLen])
	}
	return s
}

// LimitedHTML strips all markup except the inline/structural allow-list.
// Used for rich content fields (product descriptions), never for inquiry
// message bodies.
func LimitedHTML(value interface{}) string {
	s, ok := asString(value)
	if !ok {
		return ""
	}
	return tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagPattern.FindStringSubmatch(tag)
		if len(m) == 2 && allowedTags[strings.ToLower(m[1])] {
			return tag
		}
		return ""
	})
}

// stripSlashes removes one level of backslash escaping, mirroring the
// normalization the legacy intake applied before storage.
func stripSlashes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
