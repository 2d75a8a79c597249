// Package rendering provides functionality to render resume previews as HTML documents.
package rendering

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	httpPrefixRegex = regexp.MustCompile(`(?i)^https?://`)
	markdownRegex   = regexp.MustCompile(`(?i)\[([^\]]+)\]\(((?:https?://|www\.)[^\s)]+)\)`)
	bareURLRegex    = regexp.MustCompile(`(?i)((?:https?://|www\.)[^\s<]+)`)
)

// ResolveURL normalizes a user-entered URL to an absolute href.
// Empty input yields a dead anchor; http(s) URLs pass through unchanged;
// anything else gets an https prefix.
func ResolveURL(url string) string {
	if url == "" {
		return "#"
	}
	if httpPrefixRegex.MatchString(url) {
		return url
	}
	return "https://" + url
}

// MailtoURI builds a mailto: URI from a raw email field.
func MailtoURI(email string) string {
	return "mailto:" + strings.TrimSpace(email)
}

// TelURI builds a tel: URI from a raw phone field, keeping only digits and a
// leading plus sign.
func TelURI(phone string) string {
	var digits strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else if r == '+' && i == 0 {
			digits.WriteRune(r)
		}
	}
	return "tel:" + digits.String()
}

// Linkify escapes text and converts markdown-style [label](url) spans and bare
// URLs into anchors opening in a new tab.
//
// Escaping runs first so user HTML cannot break out of the document; the
// anchor markup itself is inserted afterwards. Markdown spans are extracted
// into placeholder tokens before the bare-URL pass so a URL inside a markdown
// target is not linkified twice, then substituted back.
func Linkify(text string) string {
	escaped := EscapeHTML(text)

	var markdownLinks []string
	processed := markdownRegex.ReplaceAllStringFunc(escaped, func(span string) string {
		groups := markdownRegex.FindStringSubmatch(span)
		label, url := groups[1], groups[2]
		token := fmt.Sprintf("\x00MD_LINK_%d\x00", len(markdownLinks))
		markdownLinks = append(markdownLinks,
			fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, ResolveURL(url), label))
		return token
	})

	processed = bareURLRegex.ReplaceAllStringFunc(processed, func(match string) string {
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, ResolveURL(match), match)
	})

	for idx, html := range markdownLinks {
		token := fmt.Sprintf("\x00MD_LINK_%d\x00", idx)
		processed = strings.ReplaceAll(processed, token, html)
	}

	return processed
}
