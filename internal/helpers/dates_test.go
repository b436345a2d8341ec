package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 0, DaysBetween(day("2024-03-10"), day("2024-03-10")))
	assert.Equal(t, 9, DaysBetween(day("2024-03-01"), day("2024-03-10")))
	assert.Equal(t, -3, DaysBetween(day("2024-03-10"), day("2024-03-07")))
	// leap day
	assert.Equal(t, 2, DaysBetween(day("2024-02-28"), day("2024-03-01")))
}

func TestEachDay(t *testing.T) {
	start := time.Date(2024, 1, 30, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC)

	var got []string
	EachDay(start, end, func(d time.Time) { got = append(got, d.Format(DateLayout)) })

	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, got)
}

func TestEachDay_EmptyWhenReversed(t *testing.T) {
	calls := 0
	EachDay(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), func(time.Time) { calls++ })
	assert.Zero(t, calls)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("31/12/2024")
	assert.Error(t, err)
}

func TestPgDateConversions(t *testing.T) {
	local := time.Date(2024, 5, 6, 23, 30, 0, 0, time.FixedZone("WAT", 3600))

	pg := ToPgDate(local)
	assert.True(t, pg.Valid)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), FromPgDate(pg))

	assert.False(t, ToPgText("").Valid)
	assert.Equal(t, "note", ToPgText("note").String)
}
