package chat

import "strings"

// Page is the page context the chat is opened from.
type Page string

const (
	PageBuyer  Page = "buyer"
	PageSeller Page = "seller"
	PageHome   Page = "home"
)

// ParsePage maps a tag onto a known page; anything else is home.
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

// FallbackText is shown in place of a reply whenever the request fails.
const FallbackText = "⚠️ Sorry, I couldn't reach the AI service. Please try again shortly."

var greetings = map[Page]string{
	PageBuyer:  "👋 Hi! I'm your Fruitie AI assistant. I can help you find the best fruits, compare seller prices, or estimate quantities. What are you looking for today?",
	PageSeller: "👋 Hi! I'm your Fruitie AI assistant. I can help you price your produce, find transport options, or understand payment methods. How can I help?",
	PageHome:   "👋 Welcome to Fruitie! I'm your AI assistant. Ask me anything about buying or selling fresh fruit on the platform.",
}

// Greeting returns the welcome text for page, falling back to the home
// greeting for unknown pages.
func Greeting(page Page) string {
	if g, ok := greetings[page]; ok {
		return g
	}
	return greetings[PageHome]
}
