package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// Elements whose payload must never leak into the plain-text output.
const strippedSelector = "script, style, iframe, img, noscript"

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "div": true, "dd": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// A single decode-and-strip pass is not a fixpoint: double-encoded markup
// decodes to literal tags that only the next pass would strip. Each pass
// resolves two encoding levels, so a small bound covers anything a real
// feed produces.
const maxSanitizePasses = 4

// Sanitizer converts raw, possibly HTML-bearing entry content into clean
// plain text. Run is idempotent: sanitizing already-clean text is a no-op.
type Sanitizer struct{}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

func (s *Sanitizer) Run(raw string) string {
	out := raw
	for i := 0; i < maxSanitizePasses; i++ {
		next := s.clean(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func (s *Sanitizer) clean(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	decoded := html.UnescapeString(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return collapseLines(decoded)
	}

	doc.Find(strippedSelector).Remove()

	var b strings.Builder
	for _, node := range doc.Nodes {
		writeVisibleText(&b, node)
	}

	return collapseLines(b.String())
}

// writeVisibleText walks the node tree emitting text content, mapping
// block-element boundaries to newlines so paragraphs do not run together.
func writeVisibleText(b *strings.Builder, n *xhtml.Node) {
	if n.Type == xhtml.TextNode {
		b.WriteString(n.Data)
		return
	}

	block := n.Type == xhtml.ElementNode && blockTags[n.Data]
	if block {
		b.WriteByte('\n')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeVisibleText(b, c)
	}

	if block {
		b.WriteByte('\n')
	}
}

func collapseLines(text string) string {
	lines := strings.Split(text, "\n")

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
