package utils

import "time"

// DaysSince returns the number of whole days elapsed since an RFC3339
// timestamp. Unparseable or future timestamps yield 0.
func DaysSince(timestamp string) int {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return 0
	}
	elapsed := time.Now().UTC().Sub(t)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed.Hours() / 24)
}
