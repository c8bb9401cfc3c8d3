package service

import (
	"fmt"
	"time"
)

// Indonesian month names, January first.
var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Short Indonesian weekday names indexed by time.Weekday (Sunday first).
var weekdayLabels = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// dateKey is the calendar-date string used for day buckets.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthName(m time.Month) string {
	return monthNames[m-1]
}

// formatVisitDate renders t as "dd MMMM yyyy, HH:mm" with Indonesian month names.
func formatVisitDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %04d, %02d:%02d", t.Day(), monthName(t.Month()), t.Year(), t.Hour(), t.Minute())
}
