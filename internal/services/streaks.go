package services

import "sort"

// CurrentStreak counts consecutive days the habit was marked true, walking
// backward from today. An unmarked or false today does not break the streak:
// the day is still in progress, so the walk skips to yesterday. Every
// earlier day must be an explicit true. An unparseable today returns 0:
// PrevDay leaves such a string unchanged, so the walk could not advance.
func CurrentStreak(days map[string]HabitFlags, habitKey string, today string) int {
	if !IsValidDay(today) {
		return 0
	}
	streak := 0
	day := today
	for {
		flags, present := days[day]
		if present && flags.Has(habitKey) {
			streak++
			day = PrevDay(day)
			continue
		}
		if day == today {
			day = PrevDay(day)
			continue
		}
		return streak
	}
}

// BestStreak finds the longest run of true marks over the user's logged
// days, in chronological order. Days with no entry are not visited, so a
// gap in logging does not reset the run; only an explicit false does.
func BestStreak(days map[string]HabitFlags, habitKey string) int {
	sorted := sortedDayKeys(days)
	best := 0
	current := 0
	for _, day := range sorted {
		if days[day].Has(habitKey) {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}

func sortedDayKeys(days map[string]HabitFlags) []string {
	keys := make([]string, 0, len(days))
	for day := range days {
		keys = append(keys, day)
	}
	sort.Strings(keys)
	return keys
}
