package assistant

import (
	"context"
	"strings"
)

// CannedReplier answers from fixed text. The server falls back to it when
// no Gemini key is configured so the widget stays usable in development.
type CannedReplier struct{}

var cannedReplies = map[Page]string{
	PageBuyer:  "Browse the listings to compare seller prices per kilo, then contact the seller to agree on quantity and delivery.",
	PageSeller: "List your produce with a price per kilo and your location. Buyers will contact you to arrange payment and transport.",
	PageHome:   "Fruitie connects fruit buyers with local sellers. Open the buyer page to shop or the seller page to list your harvest.",
}

func (CannedReplier) Reply(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lower := strings.ToLower(p.Message)
	if strings.Contains(lower, "price") || strings.Contains(lower, "cost") {
		if p.Page == PageSeller {
			return "Check what similar sellers nearby charge and price slightly below to attract first buyers.", nil
		}
		return "Prices vary by season and seller. Compare a few listings before you buy.", nil
	}

	if s, ok := cannedReplies[p.Page]; ok {
		return s, nil
	}
	return cannedReplies[PageHome], nil
}
