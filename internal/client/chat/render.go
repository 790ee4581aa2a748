package chat

import (
	"fmt"
	"io"
	"strings"
)

const timeLayout = "15:04"

var roleLabels = map[Role]string{
	RoleAssistant: "AI",
	RoleUser:      "You",
	RoleError:     "!!",
}

// FormatMessage renders one log line without a trailing newline.
func FormatMessage(m Message) string {
	return fmt.Sprintf("[%s] %s: %s", m.Time.Format(timeLayout), roleLabels[m.Role], m.Text)
}

// Render writes v to w. It is a pure function of the view.
func Render(w io.Writer, v View) error {
	var b strings.Builder

	if !v.Open {
		b.WriteString("(chat closed, type 'open' to talk to the assistant)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "── Fruitie assistant · %s ──\n", v.Page)
	for _, m := range v.Messages {
		b.WriteString(FormatMessage(m))
		b.WriteByte('\n')
	}
	if v.Awaiting {
		b.WriteString("   AI is typing…\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
