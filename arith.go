// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// AddDays returns the date n days after d. n may be negative. An invalid d is
// normalized first, so the result is always valid.
func (d Date) AddDays(n int) Date {
	return fromDayNumber(d.days() + n)
}

// SubDays returns the date n days before d.
func (d Date) SubDays(n int) Date {
	return d.AddDays(-n)
}

// AddWeeks returns the date n weeks after d. It is the same as d.AddDays(7*n).
func (d Date) AddWeeks(n int) Date {
	return d.AddDays(7 * n)
}

// SubWeeks returns the date n weeks before d.
func (d Date) SubWeeks(n int) Date {
	return d.AddDays(-7 * n)
}

// AddMonths adds n calendar months to d.
//
// The month is shifted, carrying into the year, and the day of the month is
// kept. If that day does not exist in the target month, the result is the last
// day of that month instead:
//
//	Of(2019, 1, 31).AddMonths(1) == Of(2019, 2, 28)
//
// The same happens to a day field that is out of range to begin with, so the
// result is always valid.
func (d Date) AddMonths(n int) Date {
	y, m := norm(int(d.year), int(d.month)-1+n, 12)
	r := Date{year: Year(y), month: Month(m + 1), day: d.day}
	if !r.Valid() {
		r.day = Day(daysIn(r.month, y))
	}
	return r
}

// SubMonths subtracts n calendar months from d. It is d.AddMonths(-n) and not
// an inverse of AddMonths.
func (d Date) SubMonths(n int) Date {
	return d.AddMonths(-n)
}

// AddYears adds n calendar years to d. It is d.AddMonths(12*n), so February 29
// becomes February 28 in non-leap years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// SubYears subtracts n calendar years from d.
func (d Date) SubYears(n int) Date {
	return d.AddMonths(-12 * n)
}

// Normalize returns the valid date denoted by d.
//
// An out of range month is carried into the year first. An out of range day is
// then carried through the real lengths of the following (or preceding)
// months, so that
//
//	Normalize(Of(2015, 55, 250)) == Of(2020, 3, 6)
//	Normalize(Of(2019, 3, 0)) == Of(2019, 2, 28)
//
// A valid d is returned unchanged.
func Normalize(d Date) Date {
	if d.Valid() {
		return d
	}
	return fromDayNumber(d.days())
}

// Normalize is shorthand for Normalize(d).
func (d Date) Normalize() Date {
	return Normalize(d)
}

// DaysUntil returns the number of days from d to e. It is negative if e is
// before d. Both dates are normalized first.
func (d Date) DaysUntil(e Date) int {
	return e.days() - d.days()
}

// MonthsUntil returns the number of whole calendar months from d to e, that is
// the n with the largest magnitude such that d.AddMonths(n) does not pass e. It
// is negative if e is before d. Both dates are normalized first.
func (d Date) MonthsUntil(e Date) int {
	a, b := Normalize(d), Normalize(e)
	n := (int(b.year)-int(a.year))*12 + int(b.month) - int(a.month)
	switch {
	case n > 0 && a.AddMonths(n).After(b):
		n--
	case n < 0 && a.AddMonths(n).Before(b):
		n++
	}
	return n
}

// YearsUntil returns the number of whole calendar years from d to e. It is
// negative if e is before d.
func (d Date) YearsUntil(e Date) int {
	return d.MonthsUntil(e) / 12
}
