// Package richtext derives plain-text views from the HTML produced by the
// blog editor.  The editor itself runs in the browser; the server never
// rewrites the markup, it only reads it.
package richtext

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WordsPerMinute is the reading speed used by ReadTime.
const WordsPerMinute = 200

var (
	blockSplit = regexp.MustCompile(`(?i)<p>|<div>|<br>|</p>|</div>|<li>|</li>`)
	anyTag     = regexp.MustCompile(`<[^>]*>`)
)

// Paragraphs returns the trimmed text of every top-level node of the HTML
// fragment, skipping empty ones.  When the fragment yields nothing but is not
// blank, the markup is split on block tags instead.
func Paragraphs(fragment string) []string {
	out := []string{}
	for _, n := range parseFragment(fragment) {
		if n.Type == html.CommentNode {
			continue
		}
		if text := strings.TrimSpace(textContent(n)); text != "" {
			out = append(out, text)
		}
	}
	if len(out) == 0 && strings.TrimSpace(fragment) != "" {
		return splitOnBlocks(fragment)
	}
	return out
}

// PlainText joins Paragraphs with blank lines.
func PlainText(fragment string) string {
	return strings.Join(Paragraphs(fragment), "\n\n")
}

// ReadTime estimates reading time as "N min", never less than one minute.
func ReadTime(fragment string) string {
	words := 0
	for _, p := range Paragraphs(fragment) {
		words += len(strings.Fields(p))
	}
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}

func parseFragment(fragment string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil
	}
	return nodes
}

// textContent concatenates descendant text the way the DOM property does.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			continue
		}
		b.WriteString(textContent(c))
	}
	return b.String()
}

func splitOnBlocks(fragment string) []string {
	out := []string{}
	for _, part := range blockSplit.Split(fragment, -1) {
		part = strings.TrimSpace(anyTag.ReplaceAllString(part, ""))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
