package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	open bool

	calls []string
	said  []string
	pages []string
}

func (f *fakeExec) chatOpen() bool { return f.open }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) OpenChat()   { f.calls = append(f.calls, "open"); f.open = true }
func (f *fakeExec) CloseChat()  { f.calls = append(f.calls, "close"); f.open = false }
func (f *fakeExec) ToggleChat() { f.calls = append(f.calls, "toggle"); f.open = !f.open }
func (f *fakeExec) Say(ctx context.Context, text string) error {
	f.calls = append(f.calls, "say")
	f.said = append(f.said, text)
	return nil
}
func (f *fakeExec) History() error { f.calls = append(f.calls, "history"); return nil }
func (f *fakeExec) SetPage(tag string) error {
	f.calls = append(f.calls, "page")
	f.pages = append(f.pages, tag)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func runLines(exec execIface, lines ...string) {
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, in)
}

func TestRunREPL_ChatCommands(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	runLines(exec,
		"open",
		"say is this price fair?",
		"how much for apples",
		"esc",
		"toggle",
		"history",
		"page seller",
		"close",
		"exit",
		"open",
	)

	assert.Equal(t, []string{"open", "say", "say", "close", "toggle", "history", "page", "close"}, exec.calls)
	assert.Equal(t, []string{"is this price fair?", "how much for apples"}, exec.said)
	assert.Equal(t, []string{"seller"}, exec.pages)
}

func TestRunREPL_AccountCommands(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	runLines(exec, "register", "login", "profile", "quit")

	assert.Equal(t, []string{"register", "login", "profile"}, exec.calls)
}

func TestRunREPL_PlainTextWhileClosedIsUnknown(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	runLines(exec, "hello there", "say", "page")

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Unknown command: hello")
	assert.Contains(t, joined, "Usage: say <text>")
	assert.Contains(t, joined, "Usage: page <buyer|seller|home>")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := bufio.NewReader(strings.NewReader("open\n"))
	runREPL(ctx, exec, func() string { return "" }, in)

	assert.Empty(t, exec.calls)
}

func TestRunREPL_HelpAndBlankLines(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	runLines(exec, "", "   ", "help")

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, "\n"), "Available commands")
}
