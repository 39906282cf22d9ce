package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func session(day, start, end string, weeks ...int) Session {
	return Session{
		Type:      "Lecture",
		Day:       day,
		StartTime: start,
		EndTime:   end,
		Weeks:     weeks,
	}
}

func TestHasTimeClash(t *testing.T) {
	t.Run("Different days never clash", func(t *testing.T) {
		a := session("Monday", "0900", "1000", 1, 2, 3)
		b := session("Tuesday", "0900", "1000", 1, 2, 3)

		assert.False(t, HasTimeClash(a, b))
	})

	t.Run("Day tokens are compared on their normalized 3-letter code", func(t *testing.T) {
		a := session("Monday", "0900", "1000")
		b := session("MON", "0930", "1030")

		assert.True(t, HasTimeClash(a, b))
	})

	t.Run("Touching intervals do not overlap", func(t *testing.T) {
		a := session("Monday", "0900", "1000", 1)
		b := session("Monday", "1000", "1100", 1)

		assert.False(t, HasTimeClash(a, b))
	})

	t.Run("Overlapping intervals with intersecting weeks clash", func(t *testing.T) {
		a := session("Monday", "0900", "1100", 1, 3, 5)
		b := session("Monday", "1000", "1200", 5, 7)

		assert.True(t, HasTimeClash(a, b))
	})

	t.Run("Overlapping intervals with disjoint weeks do not clash", func(t *testing.T) {
		a := session("Monday", "0900", "1100", 1, 3, 5)
		b := session("Monday", "1000", "1200", 2, 4, 6)

		assert.False(t, HasTimeClash(a, b))
	})

	t.Run("An empty week set conservatively clashes", func(t *testing.T) {
		a := session("Monday", "0900", "1100")
		b := session("Monday", "1000", "1200", 2, 4)

		assert.True(t, HasTimeClash(a, b))
		assert.True(t, HasTimeClash(b, a))
	})

	t.Run("Empty time tokens normalize to midnight", func(t *testing.T) {
		a := session("Monday", "", "0930", 1)
		b := session("Monday", "0900", "1000", 1)

		assert.True(t, HasTimeClash(a, b))
	})

	t.Run("Clash detection is symmetric", func(t *testing.T) {
		pairs := [][2]Session{
			{session("Monday", "0900", "1000", 1), session("Monday", "0930", "1030", 1)},
			{session("Monday", "0900", "1000", 1), session("Tuesday", "0900", "1000", 1)},
			{session("Wed", "0800", "1200"), session("Wednesday", "1000", "1100", 9)},
			{session("Friday", "1400", "1500", 1, 2), session("Friday", "1430", "1600", 3, 4)},
			{session("Thu", "1000", "1100", 7), session("Thu", "1000", "1100", 7)},
		}

		for _, pair := range pairs {
			assert.Equal(t, HasTimeClash(pair[0], pair[1]), HasTimeClash(pair[1], pair[0]))
		}
	})
}
