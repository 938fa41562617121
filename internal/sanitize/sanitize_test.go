package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringTrimsEscapesAndTruncates(t *testing.T) {
	assert.Equal(t, "hello", String("  hello  ", 100))
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", String("<b>hi</b>", 100))
	assert.Equal(t, `it&#39;s fine`, String(`it\'s fine`, 100))
	assert.Equal(t, "abc", String("abcdef", 3))
	assert.Equal(t, "", String("", 100))
}

func TestStringNonStringInput(t *testing.T) {
	assert.Equal(t, "", String(nil, 100))
	assert.Equal(t, "", String(42, 100))
	assert.Equal(t, "", String([]string{"x"}, 100))
	assert.Equal(t, "", String(map[string]string{"a": "b"}, 100))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", Email("  A@B.COM  "))
	assert.Equal(t, "dealer.west@example.co.in", Email("Dealer.West@Example.co.in"))
	assert.Equal(t, "", Email("not-an-email"))
	assert.Equal(t, "", Email("missing@dot"))
	assert.Equal(t, "", Email("two@@example.com"))
	assert.Equal(t, "", Email(""))
	assert.Equal(t, "", Email(nil))
	assert.Equal(t, "", Email(123))
}

func TestEmailStripsUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "ascriptb@example.com", Email("a<script>b@example.com"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+91 1234567890", Phone("+91 1234567890"))
	assert.Equal(t, "98-765-43210", Phone("98-765-43210ext"))
	assert.Equal(t, "022 456789", Phone("(022) 456789"))
	assert.Equal(t, "", Phone(nil))
	assert.Equal(t, "", Phone(9.5))
}

func TestPhoneTruncatesToStorageWidth(t *testing.T) {
	long := strings.Repeat("9", 40)
	got := Phone(long)
	assert.Len(t, got, 30)
	assert.Equal(t, strings.Repeat("9", 30), got)
}

func TestLimitedHTML(t *testing.T) {
	assert.Equal(t, "<p>ok</p>", LimitedHTML("<p>ok</p>"))
	// Disallowed tags are stripped; their inner text survives.
	assert.Equal(t, "<strong>bold</strong> evil()plain", LimitedHTML("<strong>bold</strong> <script>evil()</script>plain"))
	assert.Equal(t, `<a href="https://example.com">link</a>`, LimitedHTML(`<a href="https://example.com">link</a>`))
	assert.Equal(t, "<h2>Details</h2><ul><li>one</li></ul>", LimitedHTML("<h2>Details</h2><ul><li>one</li></ul>"))
	assert.Equal(t, "text", LimitedHTML("<div>text</div>"))
	assert.Equal(t, "", LimitedHTML(nil))
	assert.Equal(t, "", LimitedHTML(77))
}
