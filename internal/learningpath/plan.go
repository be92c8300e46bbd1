package learningpath

// DayPlan is one day's slice of the learning path
type DayPlan struct {
	Day        string     `json:"day"`
	Activities []Activity `json:"activities"`
}

const activitiesPerDay = 2

// GroupByDay splits activities into three days: two, two, then the rest.
// Days are always present, possibly empty.
func GroupByDay(activities []Activity) []DayPlan {
	days := []DayPlan{
		{Day: "day1", Activities: window(activities, 0, activitiesPerDay)},
		{Day: "day2", Activities: window(activities, activitiesPerDay, 2*activitiesPerDay)},
		{Day: "day3", Activities: window(activities, 2*activitiesPerDay, len(activities))},
	}
	return days
}

func window(activities []Activity, from, to int) []Activity {
	if from > len(activities) {
		from = len(activities)
	}
	if to > len(activities) {
		to = len(activities)
	}
	out := make([]Activity, to-from)
	copy(out, activities[from:to])
	return out
}
