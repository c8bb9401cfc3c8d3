package service

import (
	"time"

	"bukutamu/internal/domain"
)

// AggregateDashboard computes the dashboard from guests fetched for ref's month.
// It is pure: the caller decides which records to pass in and what "now" is.
//
// MonthCount is len(guests); records are not re-filtered by month.
// Day boundaries are taken in ref's location.
func AggregateDashboard(guests []*domain.Guest, ref time.Time) domain.DashboardSnapshot {
	loc := ref.Location()
	todayStart := startOfDay(ref)

	trend := weeklyBuckets(ref)
	index := make(map[string]int, len(trend))
	for i, d := range trend {
		index[d.Date] = i
	}

	levels := make(map[string]int, len(domain.SatisfactionLevels))
	for _, l := range domain.SatisfactionLevels {
		levels[l] = 0
	}

	today := 0
	for _, g := range guests {
		if g == nil {
			continue
		}
		if !g.CreatedAt.Before(todayStart) {
			today++
		}
		if i, ok := index[dateKey(g.CreatedAt.In(loc))]; ok {
			trend[i].Count++
		}
		if g.Satisfaction != nil {
			if _, ok := levels[*g.Satisfaction]; ok {
				levels[*g.Satisfaction]++
			}
		}
	}

	distribution := make([]domain.SatisfactionCount, 0, len(domain.SatisfactionLevels))
	for _, l := range domain.SatisfactionLevels {
		if levels[l] > 0 {
			distribution = append(distribution, domain.SatisfactionCount{Level: l, Count: levels[l]})
		}
	}

	month := len(guests)
	return domain.DashboardSnapshot{
		TodayCount:               today,
		MonthCount:               month,
		WeeklyTrend:              trend,
		SatisfactionDistribution: distribution,
		AverageDaily:             averageDaily(month, ref),
	}
}

// weeklyBuckets returns ref-6 .. ref as empty calendar-day buckets, oldest first.
func weeklyBuckets(ref time.Time) []domain.DailyCount {
	y, m, d := ref.Date()
	out := make([]domain.DailyCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := time.Date(y, m, d-i, 0, 0, 0, 0, ref.Location())
		out = append(out, domain.DailyCount{
			DayLabel: weekdayLabels[day.Weekday()],
			Date:     dateKey(day),
		})
	}
	return out
}

func averageDaily(monthCount int, ref time.Time) float64 {
	if monthCount == 0 {
		return 0
	}
	return float64(monthCount) / float64(ref.Day())
}
