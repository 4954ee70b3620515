package glyph

import (
	"fmt"

	"tableflip.dev/ritual/pkg/progress"
)

// Glyph is a mark printed in front of an item.
type Glyph struct {
	Key       string
	Symbol    string
	Meaning   string
	Signifier bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var (
	Remaining = Glyph{
		Key:     "remaining",
		Symbol:  "•",
		Meaning: "still to do today",
	}
	Completed = Glyph{
		Key:     "completed",
		Symbol:  "✓",
		Meaning: "target reached today",
	}
	Skipped = Glyph{
		Key:     "skipped",
		Symbol:  "–",
		Meaning: "skipped for today, keeps the category from starting over",
	}
	Favorite = Glyph{
		Key:       "favorite",
		Symbol:    "★",
		Meaning:   "in your favorites",
		Signifier: true,
	}
	Overridden = Glyph{
		Key:       "edited",
		Symbol:    "(edited)",
		Meaning:   "catalog item you edited, revert to undo",
		Signifier: true,
	}
	Custom = Glyph{
		Key:       "custom",
		Symbol:    "(custom)",
		Meaning:   "item you added",
		Signifier: true,
	}
)

func DefaultGlyphs() []Glyph {
	return []Glyph{Remaining, Completed, Skipped, Favorite, Overridden, Custom}
}

// ForState returns the mark of a progress state.
func ForState(s progress.State) Glyph {
	switch s {
	case progress.StateCompleted:
		return Completed
	case progress.StateSkipped:
		return Skipped
	}
	return Remaining
}
