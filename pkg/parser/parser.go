// Package parser extracts countable text from HTML documents.
package parser

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Parser turns HTML into plain text lines, one per text node.
type Parser struct {
	// Readable keeps only the main article as detected by go-readability,
	// dropping navigation, sidebars and footers.
	Readable bool
}

// ExtractLines returns the visible text of the document, one normalized line per
// text node. Script and style contents are skipped. pageURL is only used to resolve
// relative links in readable mode and may be nil.
func (p *Parser) ExtractLines(r io.Reader, pageURL *url.URL) ([]string, error) {
	var lines []string

	if p.Readable {
		if pageURL == nil {
			pageURL = &url.URL{}
		}
		// Let go-readability find the main content
		rp := readability.NewParser()
		article, err := rp.Parse(r, pageURL)
		if err != nil {
			return nil, fmt.Errorf("readability: %w", err)
		}
		if title := normalizeText(article.Title); title != "" {
			lines = append(lines, title)
		}
		r = strings.NewReader(article.Content)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script,style,noscript,template").Remove()

	doc.Find("*").Contents().Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) != "#text" {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	return lines, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	// Return the result, trimming the final space
	return strings.TrimSpace(b.String())
}
