package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// unparseableDistance ranks a candidate whose date cannot be read behind every
// candidate whose date can.
const unparseableDistance = 999

// parseSlashDate reads a d/m/yyyy date. Out-of-range day or month values roll
// over the way time.Date normalizes them.
func parseSlashDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// daysBetween returns the whole number of days between two dates, rounded up.
func daysBetween(a, b time.Time) int {
	return int(math.Ceil(math.Abs(b.Sub(a).Hours()) / 24))
}
