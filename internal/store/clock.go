package store

import "time"

// ISOLayout is the timestamp format used throughout the engine. Fixed-width
// millisecond UTC so that lexicographic order equals chronological order.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// dayLayout is the day-truncated prefix of ISOLayout.
const dayLayout = "2006-01-02"

// Clock produces the current timestamp as an ISOLayout string.
// Injected so tests can replay fixed schedules.
type Clock func() string

// NowISO is the production clock.
func NowISO() string {
	return time.Now().UTC().Format(ISOLayout)
}

// Day truncates an ISOLayout timestamp to its calendar day.
func Day(ts string) string {
	if len(ts) < len(dayLayout) {
		return ts
	}
	return ts[:len(dayLayout)]
}

// NextDay returns the calendar day one day after the given day string, or
// "" if the input does not parse.
func NextDay(day string) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(dayLayout)
}
