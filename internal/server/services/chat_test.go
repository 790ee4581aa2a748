package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/common"
	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/dmitrijs2005/fruitie/internal/server/assistant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplier struct {
	got   assistant.Prompt
	reply string
	err   error
	block bool
}

func (f *fakeReplier) Reply(ctx context.Context, p assistant.Prompt) (string, error) {
	f.got = p
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func TestChatService_Reply(t *testing.T) {
	r := &fakeReplier{reply: "Try mangoes."}
	s := NewChatService(r, time.Second, logging.NewNopLogger())

	got, err := s.Reply(context.Background(), "  what is fresh?  ", "buyer")
	require.NoError(t, err)
	assert.Equal(t, "Try mangoes.", got)
	assert.Equal(t, assistant.Prompt{Message: "what is fresh?", Page: assistant.PageBuyer}, r.got)
}

func TestChatService_UnknownPageBecomesHome(t *testing.T) {
	r := &fakeReplier{reply: "ok"}
	s := NewChatService(r, time.Second, logging.NewNopLogger())

	_, err := s.Reply(context.Background(), "hi", "checkout")
	require.NoError(t, err)
	assert.Equal(t, assistant.PageHome, r.got.Page)
}

func TestChatService_Validation(t *testing.T) {
	s := NewChatService(&fakeReplier{}, time.Second, logging.NewNopLogger())

	_, err := s.Reply(context.Background(), "   ", "home")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Reply(context.Background(), strings.Repeat("a", MaxChatMessageLength+1), "home")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Reply(context.Background(), strings.Repeat("a", MaxChatMessageLength), "home")
	assert.NoError(t, err)
}

func TestChatService_ReplierFailure(t *testing.T) {
	s := NewChatService(&fakeReplier{err: errBoom{}}, time.Second, logging.NewNopLogger())

	_, err := s.Reply(context.Background(), "hi", "home")
	assert.ErrorIs(t, err, common.ErrAssistantUnavailable)
}

func TestChatService_Timeout(t *testing.T) {
	s := NewChatService(&fakeReplier{block: true}, 20*time.Millisecond, logging.NewNopLogger())

	start := time.Now()
	_, err := s.Reply(context.Background(), "hi", "home")
	assert.ErrorIs(t, err, common.ErrAssistantUnavailable)
	assert.Less(t, time.Since(start), time.Second)
}
