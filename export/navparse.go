package export

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/contour/model"
)

// tocItemPattern splits a rendered list item back into its text and page
// number.
var tocItemPattern = regexp.MustCompile(`^(.*)\s+\(page (\d+)\)$`)

// ParseHTMLTOC reads an HTML table of contents produced by HTMLTOC back
// into an outline. The first h1 becomes the title; list nesting depth maps
// to heading level, clamped to H3. It is the inverse of HTMLTOC for any
// cleaned outline.
func ParseHTMLTOC(r io.Reader) (model.DocumentOutline, error) {
	root, err := html.Parse(r)
	if err != nil {
		return model.DocumentOutline{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	outline := model.DocumentOutline{
		Title:   "Untitled Document",
		Outline: []model.OutlineEntry{},
	}

	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1":
				if title := strings.TrimSpace(nodeText(n)); title != "" {
					outline.Title = title
				}
				return
			case "ul", "ol":
				depth++
			case "li":
				if entry, ok := parseItem(n, depth); ok {
					outline.Outline = append(outline.Outline, entry)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, depth)
		}
	}
	walk(root, 0)

	return outline, nil
}

// parseItem extracts one entry from a list item's direct text, ignoring
// any nested lists that carry deeper entries.
func parseItem(n *html.Node, depth int) (model.OutlineEntry, bool) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		b.WriteString(nodeText(c))
	}

	m := tocItemPattern.FindStringSubmatch(strings.TrimSpace(b.String()))
	if m == nil {
		return model.OutlineEntry{}, false
	}
	page, err := strconv.Atoi(m[2])
	if err != nil || page < 1 {
		return model.OutlineEntry{}, false
	}

	level := model.HeadingLevel(depth)
	if level > model.LevelH3 {
		level = model.LevelH3
	}
	if !level.Valid() {
		return model.OutlineEntry{}, false
	}

	return model.OutlineEntry{
		Level: level,
		Text:  strings.TrimSpace(m[1]),
		Page:  page,
	}, true
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
