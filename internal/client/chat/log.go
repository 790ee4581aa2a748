package chat

// DefaultMaxHistory is the number of messages kept when no bound is given.
const DefaultMaxHistory = 50

// Log is an append-only message list that drops its oldest entries once
// it grows past max.
type Log struct {
	max  int
	msgs []Message
}

func NewLog(max int) *Log {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &Log{max: max, msgs: make([]Message, 0, max)}
}

// Append adds m and returns how many old messages were evicted.
func (l *Log) Append(m Message) int {
	l.msgs = append(l.msgs, m)

	excess := len(l.msgs) - l.max
	if excess <= 0 {
		return 0
	}

	n := copy(l.msgs, l.msgs[excess:])
	clear(l.msgs[n:])
	l.msgs = l.msgs[:n]
	return excess
}

// Messages returns a copy of the log in display order.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *Log) Len() int { return len(l.msgs) }

func (l *Log) Max() int { return l.max }
