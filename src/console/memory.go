package console

import "github.com/tintty/tintty/src/attr"

// Memory is an in-process Device. It stores the attribute word without
// touching a real console, which makes it both the test double for
// exact before/after assertions and the fallback device when color
// output is disabled.
type Memory struct {
	Word    attr.Word
	History []attr.Word // every word applied, in order

	// Fail makes every call report ErrTerminalUnavailable
	Fail bool
}

func (m *Memory) Attributes() (attr.Word, error) {
	if m.Fail {
		return 0, ErrTerminalUnavailable
	}
	return m.Word, nil
}

func (m *Memory) SetAttributes(w attr.Word) error {
	if m.Fail {
		return ErrTerminalUnavailable
	}
	m.Word = w
	m.History = append(m.History, w)
	return nil
}
