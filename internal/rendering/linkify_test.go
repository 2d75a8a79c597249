package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL_Empty(t *testing.T) {
	assert.Equal(t, "#", ResolveURL(""))
}

func TestResolveURL_AlreadyAbsolute(t *testing.T) {
	assert.Equal(t, "https://example.com", ResolveURL("https://example.com"))
	assert.Equal(t, "http://example.com", ResolveURL("http://example.com"))
	assert.Equal(t, "HTTPS://EXAMPLE.COM", ResolveURL("HTTPS://EXAMPLE.COM"))
}

func TestResolveURL_BareHost(t *testing.T) {
	assert.Equal(t, "https://www.example.com", ResolveURL("www.example.com"))
	assert.Equal(t, "https://example.com/page", ResolveURL("example.com/page"))
}

func TestMailtoURI_TrimsInput(t *testing.T) {
	assert.Equal(t, "mailto:a@b.co", MailtoURI("  a@b.co  "))
}

func TestTelURI_StripsFormatting(t *testing.T) {
	assert.Equal(t, "tel:+15550100", TelURI("+1 (555) 0100"))
	assert.Equal(t, "tel:5550100", TelURI("555-0100 ext. "))
}

func TestTelURI_PlusOnlyKeptAtStart(t *testing.T) {
	assert.Equal(t, "tel:15550100", TelURI("1+555+0100"))
}

func TestLinkify_PlainText(t *testing.T) {
	assert.Equal(t, "hello world", Linkify("hello world"))
}

func TestLinkify_EscapesSurroundingText(t *testing.T) {
	result := Linkify("Visit www.example.com now <b>")

	assert.Contains(t, result, `<a href="https://www.example.com" target="_blank" rel="noopener">www.example.com</a>`)
	assert.Contains(t, result, "&lt;b&gt;")
	assert.True(t, strings.HasPrefix(result, "Visit "))
}

func TestLinkify_BareHTTPURL(t *testing.T) {
	result := Linkify("see https://x.io/a for details")
	assert.Contains(t, result, `<a href="https://x.io/a" target="_blank" rel="noopener">https://x.io/a</a>`)
}

func TestLinkify_MarkdownLink(t *testing.T) {
	result := Linkify("[Docs](https://x.io/a)")

	assert.Equal(t, `<a href="https://x.io/a" target="_blank" rel="noopener">Docs</a>`, result)
	// The URL inside the markdown target must not be linkified a second time.
	assert.Equal(t, 1, strings.Count(result, "<a "))
}

func TestLinkify_MarkdownWithWWWTarget(t *testing.T) {
	result := Linkify("[Site](www.example.com/path)")
	assert.Equal(t, `<a href="https://www.example.com/path" target="_blank" rel="noopener">Site</a>`, result)
}

func TestLinkify_MarkdownAndBareURLMix(t *testing.T) {
	result := Linkify("[Docs](https://x.io/a) and www.other.org")

	assert.Contains(t, result, `<a href="https://x.io/a" target="_blank" rel="noopener">Docs</a>`)
	assert.Contains(t, result, `<a href="https://www.other.org" target="_blank" rel="noopener">www.other.org</a>`)
	assert.Equal(t, 2, strings.Count(result, "<a "))
}

func TestLinkify_InjectedAnchorIsEscaped(t *testing.T) {
	result := Linkify(`<a href="https://evil.io">x</a>`)

	assert.NotContains(t, result, `<a href="https://evil.io">`)
	assert.Contains(t, result, "&lt;a href=")
}
