package textsource

import (
	"strings"

	"golang.org/x/net/html"
)

// extractHTML returns the visible text of an HTML document, one space
// between text nodes.
func extractHTML(name string, data []byte) (string, error) {
	text, err := decode(name, data)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return "", newError(KindFormat, name, err)
	}

	var b strings.Builder
	collectText(doc, &b)
	return strings.TrimSpace(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "svg", "iframe", "template":
			return
		}
	case html.DocumentNode:
	default:
		// Comments and doctypes carry no visible text.
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
