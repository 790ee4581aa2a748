// Package assistant produces chat replies for the marketplace widget.
package assistant

import (
	"context"
	"strings"
)

// Page is the page context a chat message was sent from.
type Page string

const (
	PageBuyer  Page = "buyer"
	PageSeller Page = "seller"
	PageHome   Page = "home"
)

// ParsePage maps a client-supplied tag onto a known Page. Anything
// unrecognised is treated as the home page.
func ParsePage(tag string) Page {
	switch Page(strings.ToLower(strings.TrimSpace(tag))) {
	case PageBuyer:
		return PageBuyer
	case PageSeller:
		return PageSeller
	default:
		return PageHome
	}
}

// Prompt is one user message together with its page context.
type Prompt struct {
	Message string
	Page    Page
}

// Replier turns a prompt into assistant text.
type Replier interface {
	Reply(ctx context.Context, p Prompt) (string, error)
}
