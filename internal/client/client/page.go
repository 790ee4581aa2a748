package client

import (
	"strings"

	"github.com/dmitrijs2005/fruitie/internal/client/chat"
)

// DetectPage derives the page context from a URL path: any path mentioning
// "buyer" is the buyer page, "seller" the seller page, everything else home.
func DetectPage(path string) chat.Page {
	switch {
	case strings.Contains(path, "buyer"):
		return chat.PageBuyer
	case strings.Contains(path, "seller"):
		return chat.PageSeller
	default:
		return chat.PageHome
	}
}
