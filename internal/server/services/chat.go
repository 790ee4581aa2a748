package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/dmitrijs2005/fruitie/internal/server/assistant"
)

// MaxChatMessageLength bounds one incoming chat message, in characters.
const MaxChatMessageLength = 2000

// ChatService serves the assistant endpoint.
type ChatService struct {
	replier assistant.Replier
	timeout time.Duration
	logger  logging.Logger
}

func NewChatService(r assistant.Replier, timeout time.Duration, l logging.Logger) *ChatService {
	return &ChatService{replier: r, timeout: timeout, logger: l}
}

// Reply validates message, resolves page to a known tag and asks the
// replier for an answer within the configured timeout.
func (s *ChatService) Reply(ctx context.Context, message, page string) (string, error) {
	message = strings.TrimSpace(message)

	verr := common.NewValidationError()
	if message == "" {
		verr.Add("message", "is required")
	} else if utf8.RuneCountInString(message) > MaxChatMessageLength {
		verr.Add("message", fmt.Sprintf("must be at most %d characters", MaxChatMessageLength))
	}
	if err := verr.OrNil(); err != nil {
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	p := assistant.Prompt{Message: message, Page: assistant.ParsePage(page)}
	reply, err := s.replier.Reply(ctx, p)
	if err != nil {
		s.logger.Error(ctx, "assistant reply failed", "page", string(p.Page), "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrAssistantUnavailable, err)
	}

	return reply, nil
}
