package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyNotes(t *testing.T) {
	t.Run("Full Session", func(t *testing.T) {
		b := &Booking{
			SessionType: "Strength",
			Exercises:   []string{"Squats", "Deadlift", "Bench Press"},
			Notes:       "Focus on form.",
		}

		expected := "Type: Strength\n" +
			"1. Squats\n" +
			"2. Deadlift\n" +
			"3. Bench Press\n" +
			"Focus on form."
		assert.Equal(t, expected, LegacyNotes(b))
	})

	t.Run("No Exercises", func(t *testing.T) {
		b := &Booking{
			SessionType: "Cardio",
			Notes:       "Easy pace.",
		}

		assert.Equal(t, "Type: Cardio\nEasy pace.", LegacyNotes(b))
	})

	t.Run("No Free Text", func(t *testing.T) {
		b := &Booking{
			SessionType: "Mobility",
			Exercises:   []string{"Hip openers"},
		}

		assert.Equal(t, "Type: Mobility\n1. Hip openers", LegacyNotes(b))
	})

	t.Run("Whitespace Only Notes Omitted", func(t *testing.T) {
		b := &Booking{
			SessionType: "Strength",
			Notes:       "   \n  ",
		}

		assert.Equal(t, "Type: Strength", LegacyNotes(b))
	})
}
