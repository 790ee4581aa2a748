package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	chatOpen() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	OpenChat()
	CloseChat()
	ToggleChat()
	Say(ctx context.Context, text string) error
	History() error
	SetPage(tag string) error
}

const helpText = `Available commands:
  open | close | esc | toggle   show or hide the assistant
  say <text>                    send a message (plain text works while the chat is open)
  history                       print the chat log
  page <buyer|seller|home>      switch page context (starts a new chat)
  register | login | profile    account
  exit | quit                   leave the program`

// runREPL reads one command per line and dispatches it to a. While the
// chat is open, a line that is not a command is sent as a message. The
// loop ends on EOF, context cancellation or "exit"/"quit". Handler errors are reported by the
// handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("fruitie %s> ", statusFn()))
		raw, err := reader.ReadString('\n')
		if err != nil && raw == "" {
			return
		}
		line := strings.TrimSpace(raw)
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "open":
			a.OpenChat()

		case "close", "esc":
			a.CloseChat()

		case "toggle":
			a.ToggleChat()

		case "say":
			if rest == "" {
				printlnFn("Usage: say <text>")
				continue
			}
			_ = a.Say(ctx, rest)

		case "history":
			_ = a.History()

		case "page":
			if rest == "" {
				printlnFn("Usage: page <buyer|seller|home>")
				continue
			}
			_ = a.SetPage(rest)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if a.chatOpen() {
				_ = a.Say(ctx, line)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}
