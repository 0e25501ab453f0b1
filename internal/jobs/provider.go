package jobs

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Provider is one external job board.
type Provider interface {
	Name() string
	Search(ctx context.Context, query, location string) ([]Job, error)
}

// cleanDescription strips HTML markup from a provider description. Boards
// return descriptions as HTML fragments more often than plain text.
func cleanDescription(raw string) string {
	if !strings.ContainsAny(raw, "<>") {
		return collapseWhitespace(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return collapseWhitespace(raw)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
