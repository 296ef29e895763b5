// utils/timeago.go
package utils

import (
	"fmt"
	"time"
)

var timeAgoUnits = []struct {
	threshold int64
	name      string
}{
	{60, "second"},
	{60, "minute"},
	{24, "hour"},
	{30, "day"},
	{12, "month"},
	{0, "year"}, // no upper bound
}

// TimeAgo renders the elapsed time between t and now as "<N> <unit>[s] ago",
// walking the unit cascade until the remainder falls under the next
// threshold. A zero remainder at the smallest unit yields "0 seconds ago".
// Elapsed time is not clamped, so a future t produces a negative count.
func TimeAgo(t, now time.Time) string {
	counter := int64(now.Sub(t).Seconds())

	i := 0
	for i < len(timeAgoUnits)-1 && counter >= timeAgoUnits[i].threshold {
		counter /= timeAgoUnits[i].threshold
		i++
	}

	label := timeAgoUnits[i].name
	if counter != 1 {
		label += "s"
	}
	return fmt.Sprintf("%d %s ago", counter, label)
}
