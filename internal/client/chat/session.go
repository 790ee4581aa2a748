package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/google/uuid"
)

// Transport delivers one message and returns the assistant's reply.
type Transport interface {
	SendChat(ctx context.Context, message string, page Page) (string, error)
}

// ErrNoTransport is reported for sends on a session built without a Transport.
var ErrNoTransport = errors.New("chat: no transport configured")

type noTransport struct{}

func (noTransport) SendChat(context.Context, string, Page) (string, error) {
	return "", ErrNoTransport
}

// State is the visible state of a session.
type State int

const (
	StateClosed State = iota
	StateOpenIdle
	StateOpenAwaiting
)

func (s State) String() string {
	switch s {
	case StateOpenIdle:
		return "open/idle"
	case StateOpenAwaiting:
		return "open/awaiting"
	default:
		return "closed"
	}
}

// Key is a keyboard action the session reacts to.
type Key int

const (
	KeyEnter Key = iota
	KeyEscape
)

// View is an immutable snapshot of a session for rendering.
type View struct {
	Open     bool
	Awaiting bool
	Input    string
	Page     Page
	Messages []Message
}

// State collapses the view into one of the three session states. A closed
// session that still has a request in flight reports StateClosed.
func (v View) State() State {
	switch {
	case !v.Open:
		return StateClosed
	case v.Awaiting:
		return StateOpenAwaiting
	default:
		return StateOpenIdle
	}
}

type Options struct {
	Page Page
	// A nil Transport makes every send end in the fallback message.
	Transport  Transport
	Logger     logging.Logger
	MaxHistory int
	// Clock defaults to time.Now.
	Clock func() time.Time
	// OnChange receives a fresh View after every transition. It is called
	// without the session lock held and may run on the transport goroutine.
	OnChange func(View)
}

// Session is one chat widget instance. All methods are safe for
// concurrent use.
type Session struct {
	mu sync.Mutex

	page      Page
	transport Transport
	logger    logging.Logger
	clock     func() time.Time
	onChange  func(View)

	open     bool
	awaiting bool
	welcomed bool
	input    string
	log      *Log
}

func NewSession(opts Options) *Session {
	s := &Session{
		page:      ParsePage(string(opts.Page)),
		transport: opts.Transport,
		logger:    opts.Logger,
		clock:     opts.Clock,
		onChange:  opts.OnChange,
		log:       NewLog(opts.MaxHistory),
	}
	if s.transport == nil {
		s.transport = noTransport{}
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

// Open shows the chat. The first open of a session appends the page greeting.
func (s *Session) Open() {
	s.mu.Lock()
	if s.open {
		s.mu.Unlock()
		return
	}
	s.open = true
	if !s.welcomed {
		s.welcomed = true
		s.appendLocked(RoleAssistant, Greeting(s.page), "")
	}
	v := s.viewLocked()
	s.mu.Unlock()

	s.notify(v)
}

// Close hides the chat. A request already in flight keeps running and its
// reply still lands in the log.
func (s *Session) Close() {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return
	}
	s.open = false
	v := s.viewLocked()
	s.mu.Unlock()

	s.notify(v)
}

func (s *Session) Toggle() {
	if s.Snapshot().Open {
		s.Close()
		return
	}
	s.Open()
}

// HandleKey maps Escape to Close and Enter to Send.
func (s *Session) HandleKey(k Key) {
	switch k {
	case KeyEscape:
		s.Close()
	case KeyEnter:
		s.Send(context.Background())
	}
}

func (s *Session) SetInput(text string) {
	s.mu.Lock()
	s.input = text
	v := s.viewLocked()
	s.mu.Unlock()

	s.notify(v)
}

// Send dispatches the current input. It does nothing and returns false when
// the chat is closed, the input is blank or a reply is still pending.
// Otherwise the user message is logged at once and the returned channel
// closes after the reply (or the fallback error) has been appended.
func (s *Session) Send(ctx context.Context) (<-chan struct{}, bool) {
	s.mu.Lock()
	text := strings.TrimSpace(s.input)
	if !s.open || s.awaiting || text == "" {
		s.mu.Unlock()
		return nil, false
	}

	sent := s.appendLocked(RoleUser, text, "")
	s.input = ""
	s.awaiting = true
	page := s.page
	v := s.viewLocked()
	s.mu.Unlock()

	s.notify(v)

	done := make(chan struct{})
	go func() {
		defer close(done)

		reply, err := s.transport.SendChat(ctx, text, page)

		s.mu.Lock()
		if err != nil {
			s.logger.Error(ctx, "chat request failed", "kind", ErrorKind(err), "message_id", sent.ID, "error", err)
			s.appendLocked(RoleError, FallbackText, sent.ID)
		} else {
			s.appendLocked(RoleAssistant, reply, sent.ID)
		}
		s.awaiting = false
		v := s.viewLocked()
		s.mu.Unlock()

		s.notify(v)
	}()

	return done, true
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) appendLocked(role Role, text, replyTo string) Message {
	m := Message{
		ID:      uuid.NewString(),
		Role:    role,
		Text:    text,
		Time:    s.clock(),
		ReplyTo: replyTo,
	}
	s.log.Append(m)
	return m
}

func (s *Session) viewLocked() View {
	return View{
		Open:     s.open,
		Awaiting: s.awaiting,
		Input:    s.input,
		Page:     s.page,
		Messages: s.log.Messages(),
	}
}

func (s *Session) notify(v View) {
	if s.onChange != nil {
		s.onChange(v)
	}
}

// ErrorKind names the failure class of a transport error for logging.
// Errors that expose Kind() string report it; anything else is "unknown".
func ErrorKind(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "unknown"
}
