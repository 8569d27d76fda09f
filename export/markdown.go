package export

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/tsawler/contour/model"
)

// MarkdownTOC renders the outline as a markdown table of contents: the
// title as a top-level heading followed by a nested bullet list, each
// entry carrying its page number.
func MarkdownTOC(outline model.DocumentOutline) string {
	outline = Clean(outline)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", outline.Title)

	if len(outline.Outline) > 0 {
		b.WriteString("\n")
	}
	for _, e := range outline.Outline {
		indent := strings.Repeat("  ", int(e.Level)-1)
		fmt.Fprintf(&b, "%s- %s (page %d)\n", indent, e.Text, e.Page)
	}
	return b.String()
}

// HTMLTOC renders the outline as an HTML fragment by converting the
// markdown table of contents.
func HTMLTOC(outline model.DocumentOutline) (string, error) {
	var buf strings.Builder
	if err := goldmark.Convert([]byte(MarkdownTOC(outline)), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}
