package tag

import "time"

func parseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseDateTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
