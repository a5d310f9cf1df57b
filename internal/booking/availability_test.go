package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityFromMonday(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

	days := Availability(monday)
	require.Len(t, days, 44)

	assert.Equal(t, "2025-01-07", days[0].Date)
	assert.Equal(t, StatusAvailable, days[0].Status) // Tuesday
	assert.Equal(t, StatusLimited, days[1].Status)   // Wednesday
	assert.Equal(t, StatusAvailable, days[2].Status) // Thursday
	assert.Equal(t, StatusLimited, days[3].Status)   // Friday
	assert.Equal(t, StatusAvailable, days[4].Status) // Saturday
	assert.Equal(t, StatusLimited, days[5].Status)   // Sunday
	assert.Equal(t, StatusLimited, days[6].Status)   // Monday
}

func TestAvailabilityWeeklyPattern(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	days := Availability(monday)

	available := 0
	for _, day := range days {
		parsed, err := time.Parse("2006-01-02", day.Date)
		require.NoError(t, err)
		switch parsed.Weekday() {
		case time.Tuesday, time.Thursday, time.Saturday:
			assert.Equal(t, StatusAvailable, day.Status, day.Date)
			available++
		default:
			assert.Equal(t, StatusLimited, day.Status, day.Date)
		}
	}
	// 44 days starting on a Tuesday cover six full weeks plus Tue/Wed; six
	// weeks hold 18 open days and the tail adds one more.
	assert.Equal(t, 19, available)
}

func TestAvailabilityDeterministic(t *testing.T) {
	today := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, Availability(today), Availability(today))
}
