package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/fruitie/internal/client/chat"
	"github.com/dmitrijs2005/fruitie/internal/client/client"
	"github.com/dmitrijs2005/fruitie/internal/client/config"
	"github.com/dmitrijs2005/fruitie/internal/logging"
)

type App struct {
	config *config.Config
	api    client.Client
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	mu        sync.Mutex
	session   *chat.Session
	shown     map[string]bool
	wasOpen   bool
	userEmail string
}

// NewApp builds a terminal client talking to c.ServerURL.
func NewApp(c *config.Config, logger logging.Logger) *App {
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, api, logger, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	a := &App{
		config: c,
		api:    api,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.session = a.newSession(parsePage(c.Page))
	return a
}

// parsePage accepts a page tag or a frontend path such as
// /frontend/seller/seller.html.
func parsePage(tag string) chat.Page {
	if strings.Contains(tag, "/") {
		return client.DetectPage(tag)
	}
	return chat.ParsePage(tag)
}

func (a *App) newSession(page chat.Page) *chat.Session {
	var s *chat.Session
	s = chat.NewSession(chat.Options{
		Page:       page,
		Transport:  a.api,
		Logger:     a.logger.With("page", string(page)),
		MaxHistory: a.config.MaxHistory,
		OnChange:   func(v chat.View) { a.onChange(s, v) },
	})
	return s
}

// Run starts the REPL and returns when the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "client started", "server", a.config.ServerURL, "page", a.config.Page)
	printlnFn("Welcome to Fruitie (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) getStatus() string {
	a.mu.Lock()
	email := a.userEmail
	a.mu.Unlock()

	v := a.currentSession().Snapshot()
	s := string(v.Page) + " " + v.State().String()
	if email != "" {
		s = email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) currentSession() *chat.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) isLoggedIn() bool { return a.api.LoggedIn() }

func (a *App) chatOpen() bool { return a.currentSession().Snapshot().Open }

func (a *App) OpenChat() { a.currentSession().Open() }

func (a *App) CloseChat() { a.currentSession().HandleKey(chat.KeyEscape) }

func (a *App) ToggleChat() { a.currentSession().Toggle() }

// Say sends text and waits for the reply or for ctx to end.
func (a *App) Say(ctx context.Context, text string) error {
	s := a.currentSession()
	v := s.Snapshot()
	switch {
	case !v.Open:
		printlnFn("The chat is closed, type 'open' first.")
		return nil
	case v.Awaiting:
		printlnFn("Still waiting for the assistant…")
		return nil
	}

	s.SetInput(text)
	done, ok := s.Send(ctx)
	if !ok {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (a *App) History() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := a.session.Snapshot()
	v.Open = true
	return chat.Render(a.out, v)
}

// SetPage switches the page context. A new page starts a new session, so
// its greeting is shown on the next open.
func (a *App) SetPage(tag string) error {
	page := parsePage(tag)

	a.mu.Lock()
	if a.session.Snapshot().Page == page {
		a.mu.Unlock()
		printlnFn("Already on the", page, "page")
		return nil
	}
	wasOpen := a.wasOpen
	a.session = a.newSession(page)
	a.shown = nil
	a.wasOpen = false
	s := a.session
	a.mu.Unlock()

	printlnFn("Switched to the", page, "page")
	if wasOpen {
		s.Open()
	}
	return nil
}

// onChange prints messages the user has not seen yet and announces
// open/close transitions. Replies that land while the chat is closed are
// printed on the next open. Views from a session replaced by SetPage are
// dropped.
func (a *App) onChange(s *chat.Session, v chat.View) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s != a.session {
		return
	}

	if v.Open != a.wasOpen {
		a.wasOpen = v.Open
		if !v.Open {
			fmt.Fprintln(a.out, "(chat closed)")
			return
		}
		fmt.Fprintf(a.out, "── Fruitie assistant · %s ──\n", v.Page)
	}
	if !v.Open {
		return
	}

	seen := make(map[string]bool, len(v.Messages))
	printed := false
	for _, m := range v.Messages {
		seen[m.ID] = true
		if a.shown[m.ID] {
			continue
		}
		fmt.Fprintln(a.out, chat.FormatMessage(m))
		printed = true
	}
	// evicted ids drop out so the set stays bounded by the log
	a.shown = seen

	if v.Awaiting && printed {
		fmt.Fprintln(a.out, "   AI is typing…")
	}
}
