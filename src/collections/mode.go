package collections

import (
	"fmt"
	"strings"
)

// Mode fixes which end operations a MiddleList accepts. The zero value is not a valid mode.
type Mode int

const (
	modeUnset Mode = iota
	StackMode
	QueueMode
)

func (m Mode) String() string {
	switch m {
	case StackMode:
		return "stack"
	case QueueMode:
		return "queue"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	return m == StackMode || m == QueueMode
}

// ParseMode matches "stack" or "queue", ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack":
		return StackMode, nil
	case "queue":
		return QueueMode, nil
	}
	return modeUnset, fmt.Errorf("unknown mode %q: %w", s, ErrInvalidConfiguration)
}
