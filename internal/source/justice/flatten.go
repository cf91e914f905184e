package justice

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Elements whose text continues the surrounding line.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "em": true, "i": true, "small": true,
	"span": true, "strong": true, "sub": true, "sup": true, "u": true,
}

// Flatten returns the visible text of an HTML page as one line: block
// boundaries become spaces, non-breaking spaces are dropped, whitespace runs
// collapse to a single space and the result is NFC normalized.
func Flatten(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript, template").Remove()
	var b strings.Builder
	for _, n := range doc.Find("body").Nodes {
		collectText(n, &b)
	}
	text := strings.ReplaceAll(b.String(), "\u00a0", " ")
	text = norm.NFC.String(text)
	return strings.Join(strings.Fields(text), " "), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}
	block := n.Type == html.ElementNode && !inlineElements[n.Data]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if block {
		b.WriteByte(' ')
	}
}
