package booking

import (
	"fmt"
	"strings"
)

// LegacyNotes renders the session metadata in the plain-text convention the
// reporting endpoints consume: a "Type:" header line, an enumerated exercise
// list, then any free-text notes.
func LegacyNotes(b *Booking) string {
	var sb strings.Builder

	sb.WriteString("Type: ")
	sb.WriteString(b.SessionType)

	for i, ex := range b.Exercises {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, ex)
	}

	if notes := strings.TrimSpace(b.Notes); notes != "" {
		sb.WriteString("\n")
		sb.WriteString(notes)
	}

	return sb.String()
}
