// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar implements calendrical arithmetic on civil dates and
// date-times in the proleptic Gregorian calendar.
//
// The package provides four value types:
//
//   - Date is a (year, month, day) triple. It may hold an invalid triple, such
//     as February 30 or month 55. Such dates are never rejected at
//     construction; use [Date.Valid] to check them and [Normalize] to resolve
//     them, or [FromYMD] to reject them up front.
//   - DateTime is a valid Date plus a time of day, kept in [0, 24h) at all
//     times.
//   - DateRange and DateTimeRange are finite intervals of either. Their
//     endpoints are not required to be ordered.
//
// Arithmetic comes in two flavours. Days and weeks are chronological: they
// move along the timeline of days and adding then subtracting the same amount
// always gets back to the start. Months and years are calendrical: they keep
// the day of the month (and the time of day) and clamp to the last day of the
// target month when that day does not exist there. As a consequence
//
//	Of(2016, 2, 29).AddYears(1).SubYears(1) == Of(2016, 2, 28)
//
// Calendrical arithmetic is therefore not invertible.
//
// The calendar code is adapted from package time, so it makes the same
// assumptions and has the same edge-cases. Very large years silently overflow.
package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// Computations on days are adapted from the standard library. See this comment
// for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and times before it will not compute correctly, but
	// otherwise can be changed at will.
	absoluteZeroYear = -292277022399

	// The year of internal day number zero.
	internalYear = 1

	// Offsets to convert between internal or absolute day numbers.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Internal day number of 1970-01-01.
	unixToInternal = 1969*365 + 1969/4 - 1969/100 + 1969/400

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// Year is a calendar year. Year 0 is 1 BC, year -1 is 2 BC and so on.
type Year int

// Month is a month of the year. Values outside [January, December] are
// representable, they only make the containing Date invalid.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// String returns the English name of the month ("January", "February", ...).
func (m Month) String() string {
	return time.Month(m).String()
}

// Day is a day of the month.
type Day int

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// daysIn returns the length of month m of the given year. m must be in
// [January, December].
func daysIn(m Month, year int) int {
	if m == February && isLeap(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// absDate computes the year, day of year and when full=true, the month and day
// in which an absolute day number occurs.
func absDate(abs uint64, full bool) (year int, month Month, day int, yday int) {
	d := abs

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if isLeap(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			month = February
			day = 29
			return
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceEpoch takes a year and returns the number of days from the absolute
// epoch to the start of that year. This is basically (year - zeroYear) * 365,
// but accounting for leap days.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	return d
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// dayNumber returns the internal day number (days since 0001-01-01) of the
// given triple. Out of range months and days are carried, so that October 32
// is the same day as November 1 and month 0 is December of the previous year.
func dayNumber(year, month, day int) int {
	m := month - 1
	year, m = norm(year, m, 12)
	month = m + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if isLeap(year) && month >= int(March) {
		d++
	}
	d += day - 1

	return d - internalToAbsolute
}

// fromDayNumber returns the valid Date with the given internal day number.
func fromDayNumber(n int) Date {
	year, month, day, _ := absDate(uint64(n+internalToAbsolute), true)
	return Date{year: Year(year), month: month, day: Day(day)}
}

// A Date is a year, month and day in the proleptic Gregorian calendar.
//
// A Date is not necessarily valid: Of(2019, 2, 29) and Of(2015, 55, 250) are
// both Dates. Valid reports whether the triple names a real day. Arithmetic on
// days and weeks always produces a valid Date.
//
// Dates can be compared with ==, which compares the triples field by field.
// The zero value is not a valid date.
type Date struct {
	year  Year
	month Month
	day   Day
}

// Of returns the Date with the given fields. It never fails and never
// normalizes: Of(2019, 2, 29) is an invalid Date, not March 1.
func Of(year Year, month Month, day Day) Date {
	return Date{year: year, month: month, day: day}
}

// FromYMD returns the Date with the given fields, or a *ValidationError if
// they do not name a real day.
func FromYMD(year, month, day int) (Date, error) {
	d := Of(Year(year), Month(month), Day(day))
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Today returns the current date in the given location, as read from
// SystemClock.
func Today(loc *time.Location) Date {
	return TodayFrom(SystemClock, loc)
}

// days returns the internal day number of d. Invalid dates are carried as in
// dayNumber.
func (d Date) days() int {
	return dayNumber(int(d.year), int(d.month), int(d.day))
}

// abs returns the absolute day number of d.
func (d Date) abs() uint64 {
	return uint64(d.days() + internalToAbsolute)
}

// Year returns the year field of d.
func (d Date) Year() Year {
	return d.year
}

// Month returns the month field of d.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day field of d.
func (d Date) Day() Day {
	return d.day
}

// Date returns the fields of d.
func (d Date) Date() (year Year, month Month, day Day) {
	return d.year, d.month, d.day
}

// Valid reports whether d names a real day: its month is in [1, 12] and its
// day is in [1, n], where n is the length of that month in that year.
func (d Date) Valid() bool {
	if d.month < January || d.month > December {
		return false
	}
	return 1 <= d.day && int(d.day) <= daysIn(d.month, int(d.year))
}

// Validate returns a *ValidationError naming the first field of d that is out
// of range, or nil if d is valid.
func (d Date) Validate() error {
	if d.month < January || d.month > December {
		return &ValidationError{
			Type:   "Date",
			Field:  "Month",
			Reason: "out of range [1, 12]",
			Value:  int(d.month),
		}
	}
	if n := daysIn(d.month, int(d.year)); d.day < 1 || int(d.day) > n {
		return &ValidationError{
			Type:   "Date",
			Field:  "Day",
			Reason: fmt.Sprintf("out of range [1, %d] for %v %d", n, d.month, d.year),
			Value:  int(d.day),
		}
	}
	return nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week of d. An invalid d is normalized first.
func (d Date) Weekday() Weekday {
	// Absolute day zero is January 1 of a year that is 1 mod 400, a Monday.
	return Monday + Weekday(d.abs()%7)
}

// YearDay returns the day of the year of d, in the range [1,365] for non-leap
// years, and [1,366] in leap years. An invalid d is normalized first.
func (d Date) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}

// LastDayOfMonth returns the last day of the month of d. The day field of d
// is ignored; an out of range month is carried into the year first.
func (d Date) LastDayOfMonth() Date {
	y, m := norm(int(d.year), int(d.month)-1, 12)
	month := Month(m + 1)
	return Date{year: Year(y), month: month, day: Day(daysIn(month, y))}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after e. Dates are ordered by year, then month, then day, without
// normalizing, so the order is defined for invalid dates as well.
func (d Date) Compare(e Date) int {
	if c := cmp.Compare(d.year, e.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, e.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, e.day)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return d.Compare(e) < 0
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return d.Compare(e) > 0
}

// Equal reports whether d and e have the same fields. It is equivalent to
// d == e.
func (d Date) Equal(e Date) bool {
	return d == e
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	return fmt.Sprintf("calendar.Of(%d, %d, %d)", d.year, d.month, d.day)
}

// String returns d in the form "dd.MM.yyyy".
//
// The returned string is meant for display; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Time returns the given moment on d in the given location. An invalid d is
// normalized by package time.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), hour, min, sec, nsec, loc)
}
