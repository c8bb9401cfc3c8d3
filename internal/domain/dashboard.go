package domain

// DashboardSnapshot is recomputed on demand and never persisted.
type DashboardSnapshot struct {
	TodayCount               int                 `json:"todayCount"`
	MonthCount               int                 `json:"monthCount"`
	WeeklyTrend              []DailyCount        `json:"weeklyTrend"` // 7 entries, oldest first
	SatisfactionDistribution []SatisfactionCount `json:"satisfactionDistribution"`
	AverageDaily             float64             `json:"averageDaily"`
}

// DailyCount is one bucket of the weekly trend.
type DailyCount struct {
	DayLabel string `json:"day"`  // short Indonesian weekday name
	Date     string `json:"date"` // calendar date, YYYY-MM-DD
	Count    int    `json:"guests"`
}

// SatisfactionCount is one non-empty slice of the satisfaction chart.
type SatisfactionCount struct {
	Level string `json:"name"`
	Count int    `json:"value"`
}

// MaxDailyCount returns the largest weekly bucket, never less than 1,
// so that callers can scale bar widths without dividing by zero.
func (s *DashboardSnapshot) MaxDailyCount() int {
	top := 1
	for _, d := range s.WeeklyTrend {
		if d.Count > top {
			top = d.Count
		}
	}
	return top
}
