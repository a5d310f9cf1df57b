package booking

import "time"

const horizonDays = 44

const (
	StatusAvailable = "available"
	StatusLimited   = "limited"
)

type DayAvailability struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Availability returns the rolling booking window: the 44 days after today,
// with Tuesdays, Thursdays and Saturdays open for booking and every other
// day limited. Purely derived from the reference date, nothing persisted.
func Availability(today time.Time) []DayAvailability {
	days := make([]DayAvailability, 0, horizonDays)
	for offset := 1; offset <= horizonDays; offset++ {
		day := today.AddDate(0, 0, offset)
		status := StatusLimited
		switch day.Weekday() {
		case time.Tuesday, time.Thursday, time.Saturday:
			status = StatusAvailable
		}
		days = append(days, DayAvailability{
			Date:   day.Format("2006-01-02"),
			Status: status,
		})
	}
	return days
}
