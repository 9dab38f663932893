//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"fmt"
	"time"
)

// CalendarDay is one row of the date dimension.
type CalendarDay struct {
	DateID    int
	Date      time.Time
	Day       int
	Week      int
	Month     int
	MonthName string
	Quarter   int
	Year      int
	IsWeekend bool
}

// DateKey formats a date as a YYYYMMDD integer.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// YearMonth returns the YYYYMM part of a date key.
func YearMonth(dateID int) int {
	return dateID / 100
}

// DateFromKey parses a YYYYMMDD key.
func DateFromKey(dateID int) time.Time {
	return time.Date(dateID/10000, time.Month(dateID/100%100), dateID%100, 0, 0, 0, 0, time.UTC)
}

// truncateDay drops the clock part of t, keeping its calendar date.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sundayWeek is the week of the year with weeks starting on Sunday. Days
// before the first Sunday of the year are in week 0.
func sundayWeek(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

// yearsBefore moves t back by years, clamping to the last day of the month
// when that day does not exist, so Feb 29 becomes Feb 28.
func yearsBefore(t time.Time, years int) time.Time {
	d := t.AddDate(-years, 0, 0)
	if d.Day() != t.Day() {
		d = d.AddDate(0, 0, -d.Day())
	}
	return d
}

// BuildCalendar returns one row per day from today minus years through
// today, ascending.
func BuildCalendar(years int, today time.Time) []CalendarDay {
	if years < 0 {
		years = 0
	}
	end := truncateDay(today)
	start := yearsBefore(end, years)

	days := make([]CalendarDay, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		days = append(days, CalendarDay{
			DateID:    DateKey(d),
			Date:      d,
			Day:       d.Day(),
			Week:      sundayWeek(d),
			Month:     int(d.Month()),
			MonthName: fmt.Sprintf("Tháng %d", int(d.Month())),
			Quarter:   (int(d.Month())-1)/3 + 1,
			Year:      d.Year(),
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
		})
	}
	return days
}

// months returns the distinct year-months of the calendar, ascending.
func months(cal []CalendarDay) []int {
	var out []int
	for _, d := range cal {
		ym := YearMonth(d.DateID)
		if len(out) == 0 || out[len(out)-1] != ym {
			out = append(out, ym)
		}
	}
	return out
}
