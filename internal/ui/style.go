package ui

import (
	"fmt"
	"io"
	"strings"
)

// Tone classifies a message for styling.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneError
)

// Message is a block of output lines sharing one tone.
type Message struct {
	Tone  Tone
	Lines []string
}

func (m Message) String() string {
	return strings.Join(m.Lines, "\n")
}

// Painter writes messages, colored with the theme when enabled.
type Painter struct {
	theme Theme
	color bool
}

func NewPainter(theme Theme, color bool) Painter {
	return Painter{theme: theme, color: color}
}

// Paint returns s styled for tone, or s unchanged when color is off.
func (p Painter) Paint(tone Tone, s string) string {
	if !p.color {
		return s
	}
	switch tone {
	case ToneSuccess:
		return p.theme.Success.Render(s)
	case ToneError:
		return p.theme.Err.Render(s)
	default:
		return s
	}
}

// Write prints every line of m to w.
func (p Painter) Write(w io.Writer, m Message) error {
	for _, ln := range m.Lines {
		if _, err := fmt.Fprintln(w, p.Paint(m.Tone, ln)); err != nil {
			return err
		}
	}
	return nil
}
