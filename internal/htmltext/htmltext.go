// Package htmltext extracts the visible text of an HTML document so it
// can be fed through the normalization pipeline like plain text.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML from r and returns its visible text. Text nodes
// are joined with single spaces; script and style subtrees are skipped.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " "), nil
}

// ExtractString is Extract over a string, falling back to the raw input
// when parsing fails.
func ExtractString(s string) string {
	text, err := Extract(strings.NewReader(s))
	if err != nil {
		return s
	}
	return text
}
