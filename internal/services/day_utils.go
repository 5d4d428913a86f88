package services

import "time"

// DayLayout is the canonical day-string format. Every date in the system is
// a plain "YYYY-MM-DD" string; lexicographic order equals chronological
// order, so range checks and due checks compare strings directly.
const DayLayout = "2006-01-02"

func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayLayout, value)
}

func IsValidDay(value string) bool {
	_, err := ParseDay(value)
	return err == nil
}

func FormatDay(value time.Time) string {
	return value.Format(DayLayout)
}

func Today(location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return FormatDay(time.Now().In(location))
}

// AddDays shifts a day string by n calendar days. An unparseable input is
// returned unchanged so the walkers stay total.
func AddDays(day string, n int) string {
	parsed, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(parsed.AddDate(0, 0, n))
}

func PrevDay(day string) string {
	return AddDays(day, -1)
}

func NextDay(day string) string {
	return AddDays(day, 1)
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day string) string {
	parsed, err := ParseDay(day)
	if err != nil {
		return day
	}
	offset := (int(parsed.Weekday()) + 6) % 7
	return FormatDay(parsed.AddDate(0, 0, -offset))
}

func MonthStart(day string) string {
	parsed, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC))
}

func YearStart(day string) string {
	parsed, err := ParseDay(day)
	if err != nil {
		return day
	}
	return FormatDay(time.Date(parsed.Year(), time.January, 1, 0, 0, 0, 0, time.UTC))
}

// DaysBetween counts calendar days in the inclusive range [start, end].
// Returns 0 when the range is empty or malformed.
func DaysBetween(start string, end string) int {
	startDate, err := ParseDay(start)
	if err != nil {
		return 0
	}
	endDate, err := ParseDay(end)
	if err != nil {
		return 0
	}
	diff := int(endDate.Sub(startDate).Hours()/24) + 1
	if diff < 0 {
		return 0
	}
	return diff
}

// EachDay lists every day string in the inclusive range [start, end].
func EachDay(start string, end string) []string {
	total := DaysBetween(start, end)
	days := make([]string, 0, total)
	day := start
	for i := 0; i < total; i++ {
		days = append(days, day)
		day = NextDay(day)
	}
	return days
}
