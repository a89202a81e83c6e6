package face

import (
	"strconv"
	"time"
)

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{
	"SUNDAY",
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
}

// WeekdayName returns the upper-case English name of d, or "" when d is out of range.
func WeekdayName(d time.Weekday) string {
	if d < 0 || int(d) >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[d]
}

// FormatTime renders a 24-hour HH:MM clock.
func FormatTime(hour, minute int) string {
	return pad2(hour) + ":" + pad2(minute)
}

// FormatDate renders DD/MM.
func FormatDate(day int, month time.Month) string {
	return pad2(day) + "/" + pad2(int(month))
}

// FormatWalked renders meters as kilometers with one truncated decimal.
func FormatWalked(meters int32) string {
	km := meters / 1000
	tenths := 10 * (meters % 1000) / 1000
	return strconv.Itoa(int(km)) + "." + strconv.Itoa(int(tenths))
}

// FormatSleepHours renders whole hours, truncated.
func FormatSleepHours(seconds int32) string {
	return strconv.Itoa(int(seconds / 3600))
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
