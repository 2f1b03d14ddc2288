// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
// Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
// week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func (d Date) ISOWeek() (year Year, week int) {
	// Weeks begin on Monday. Every week belongs to the year of its Thursday,
	// so shift to the Thursday of the same week.
	abs := d.abs() + uint64(Thursday-d.Weekday())
	y, _, _, yday := absDate(abs, false)
	return Year(y), yday/7 + 1
}

// ISOWeekDate returns the ISO 8601 week date of d.
func (d Date) ISOWeekDate() ISOWeekDate {
	y, w := d.ISOWeek()
	return ISOWeekDate{year: y, week: w, weekday: d.Weekday()}
}

// ISOWeekDate returns the ISO 8601 week date of the date of dt.
func (dt DateTime) ISOWeekDate() ISOWeekDate {
	return dt.Date().ISOWeekDate()
}

// An ISOWeekDate is a date in the ISO 8601 week numbering: a week-based year,
// a week in [1, 53] and a weekday.
type ISOWeekDate struct {
	year    Year
	week    int
	weekday Weekday
}

// ISOWeekDateOf returns the given week date. The fields are not checked;
// Date resolves them in the same way as Normalize does.
func ISOWeekDateOf(year Year, week int, weekday Weekday) ISOWeekDate {
	return ISOWeekDate{year: year, week: week, weekday: weekday}
}

// Year returns the week-based year of w, which differs from the calendar year
// for some days around New Year.
func (w ISOWeekDate) Year() Year {
	return w.year
}

// Week returns the week of the year of w.
func (w ISOWeekDate) Week() int {
	return w.week
}

// Weekday returns the day of the week of w.
func (w ISOWeekDate) Weekday() Weekday {
	return w.weekday
}

// Date returns the calendar date of w.
func (w ISOWeekDate) Date() Date {
	// January 4 is always in week 1.
	first := Of(w.year, January, 4).PrevWeekday(Monday)
	return first.AddDays(7*(w.week-1) + int(w.weekday-Monday))
}

// String returns w in the ISO 8601 extended form, like "2018-W16-1".
func (w ISOWeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", w.year, w.week, w.weekday)
}
