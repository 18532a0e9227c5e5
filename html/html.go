package html

import (
	"strings"

	"golang.org/x/net/html"
)

// Text returns the textual content of a rendered HTML fragment and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript. <br> elements become newlines; other markup is dropped,
// so "1.5×10<sup>6</sup> m" flattens to "1.5×106 m".
//
// Renderers use it to fall back from self-rendering magnitudes to plain
// text; tests use it to check that emitted fragments parse cleanly.
func Text(fragment string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), nil)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteByte('\n')
	} else if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
