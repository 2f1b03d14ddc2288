// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"time"
)

const day = 24 * time.Hour

// A DateTime is a valid Date together with a time of day in [0, 24h), with
// nanosecond precision. It does not carry a location.
//
// DateTimes can be compared with ==. The zero value is midnight of
// January 1, year 1.
type DateTime struct {
	days int           // internal day number
	tod  time.Duration // since midnight, in [0, day)
}

// splitDay splits x into whole days and a remainder in [0, day).
func splitDay(x time.Duration) (int, time.Duration) {
	n, r := x/day, x%day
	if r < 0 {
		n--
		r += day
	}
	return int(n), r
}

// floorDiv returns the quotient and remainder of a/b, rounding toward negative
// infinity. b must be positive.
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// DateTimeOf returns the moment sinceMidnight after the start of d. Any excess
// outside of [0, 24h) is carried into the date, so
//
//	DateTimeOf(Of(2019, 3, 31), 25*time.Hour) == DateTimeOf(Of(2019, 4, 1), time.Hour)
//
// An invalid d is normalized.
func DateTimeOf(d Date, sinceMidnight time.Duration) DateTime {
	n, tod := splitDay(sinceMidnight)
	return DateTime{days: d.days() + n, tod: tod}
}

// Midnight returns the start of d.
func (d Date) Midnight() DateTime {
	return DateTime{days: d.days()}
}

// FromTime returns the wall clock reading of t in its own location.
func FromTime(t time.Time) DateTime {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	tod := time.Duration(h)*time.Hour +
		time.Duration(mi)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
	return DateTime{days: dayNumber(y, int(m), d), tod: tod}
}

// FromUnix returns the DateTime sec seconds after 1970-01-01T00:00:00 UTC, as
// seen at the given offset from UTC in seconds.
func FromUnix(sec int64, offsetFromUTC int) DateTime {
	days, rem := floorDiv(sec+int64(offsetFromUTC), 86400)
	return DateTime{
		days: unixToInternal + int(days),
		tod:  time.Duration(rem) * time.Second,
	}
}

// FromTimestamp returns the DateTime count units after 1970-01-01T00:00:00.
// Coarse units overflow silently when count is out of range.
func FromTimestamp(count int64, u Unit) DateTime {
	if u.den == 1 {
		return FromUnix(count*u.num, 0)
	}
	// Sub-second units, so num is one.
	days, rem := floorDiv(count, 86400*u.den/u.num)
	tod := Duration{Count: rem, Unit: u}.Convert(Nanoseconds)
	return DateTime{
		days: unixToInternal + int(days),
		tod:  time.Duration(tod.Count),
	}
}

// Now returns the current date and time in the given location, as read from
// SystemClock.
func Now(loc *time.Location) DateTime {
	return NowFrom(SystemClock, loc)
}

// Date returns the date of dt.
func (dt DateTime) Date() Date {
	return fromDayNumber(dt.days)
}

// Year returns the year of dt.
func (dt DateTime) Year() Year {
	return dt.Date().year
}

// Month returns the month of dt.
func (dt DateTime) Month() Month {
	return dt.Date().month
}

// Day returns the day of the month of dt.
func (dt DateTime) Day() Day {
	return dt.Date().day
}

// Weekday returns the day of the week of dt.
func (dt DateTime) Weekday() Weekday {
	return dt.Date().Weekday()
}

// TimeOfDay returns the time elapsed since midnight, in [0, 24h).
func (dt DateTime) TimeOfDay() time.Duration {
	return dt.tod
}

// Hour returns the hour of dt, in [0, 23].
func (dt DateTime) Hour() int {
	return int(dt.tod / time.Hour)
}

// Minute returns the minute of the hour of dt, in [0, 59].
func (dt DateTime) Minute() int {
	return int(dt.tod % time.Hour / time.Minute)
}

// Second returns the second of the minute of dt, in [0, 59].
func (dt DateTime) Second() int {
	return int(dt.tod % time.Minute / time.Second)
}

// Nanosecond returns the nanosecond offset within the second of dt, in
// [0, 999999999].
func (dt DateTime) Nanosecond() int {
	return int(dt.tod % time.Second)
}

// Add returns dt+x. x may be negative and of any magnitude; whole days are
// carried into the date.
func (dt DateTime) Add(x time.Duration) DateTime {
	n, r := splitDay(x)
	dt.days += n
	dt.tod += r
	if dt.tod >= day {
		dt.tod -= day
		dt.days++
	}
	return dt
}

// Sub returns dt-x.
func (dt DateTime) Sub(x time.Duration) DateTime {
	n, r := splitDay(x)
	dt.days -= n
	dt.tod -= r
	if dt.tod < 0 {
		dt.tod += day
		dt.days--
	}
	return dt
}

// AddDays returns dt moved n days, keeping the time of day.
func (dt DateTime) AddDays(n int) DateTime {
	dt.days += n
	return dt
}

// SubDays returns dt moved back n days.
func (dt DateTime) SubDays(n int) DateTime {
	return dt.AddDays(-n)
}

// AddWeeks returns dt moved n weeks.
func (dt DateTime) AddWeeks(n int) DateTime {
	return dt.AddDays(7 * n)
}

// SubWeeks returns dt moved back n weeks.
func (dt DateTime) SubWeeks(n int) DateTime {
	return dt.AddDays(-7 * n)
}

// AddMonths applies Date.AddMonths to the date of dt, keeping the time of day.
func (dt DateTime) AddMonths(n int) DateTime {
	dt.days = dt.Date().AddMonths(n).days()
	return dt
}

// SubMonths is dt.AddMonths(-n).
func (dt DateTime) SubMonths(n int) DateTime {
	return dt.AddMonths(-n)
}

// AddYears applies Date.AddYears to the date of dt, keeping the time of day.
func (dt DateTime) AddYears(n int) DateTime {
	return dt.AddMonths(12 * n)
}

// SubYears is dt.AddYears(-n).
func (dt DateTime) SubYears(n int) DateTime {
	return dt.AddMonths(-12 * n)
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to or
// after e.
func (dt DateTime) Compare(e DateTime) int {
	if c := cmp.Compare(dt.days, e.days); c != 0 {
		return c
	}
	return cmp.Compare(dt.tod, e.tod)
}

// Before reports whether dt is before e.
func (dt DateTime) Before(e DateTime) bool {
	return dt.Compare(e) < 0
}

// After reports whether dt is after e.
func (dt DateTime) After(e DateTime) bool {
	return dt.Compare(e) > 0
}

// Equal reports whether dt and e are the same moment. It is equivalent to
// dt == e.
func (dt DateTime) Equal(e DateTime) bool {
	return dt == e
}

// Timestamp returns the time elapsed since 1970-01-01T00:00:00 in the unit u,
// rounded toward negative infinity. The day count and the time of day are
// rounded separately, so for units longer than a day the result is the number
// of whole units in the days since the epoch. Fine units overflow silently for
// moments far from the epoch.
//
// Before 1970 flooring differs from truncation toward zero in every unit that
// does not divide the moment exactly. For units of a day and longer this
// includes whole dates: 1969-12-31 is at -1 days and -1 years, not 0 years.
func (dt DateTime) Timestamp(u Unit) int64 {
	days := Duration{Count: int64(dt.days - unixToInternal), Unit: Days}
	tod := Duration{Count: int64(dt.tod), Unit: Nanoseconds}
	return days.Floor(u).Count + tod.Floor(u).Count
}

// Unix returns dt as the number of seconds elapsed since
// 1970-01-01T00:00:00.
func (dt DateTime) Unix() int64 {
	return dt.Timestamp(Seconds)
}

// Time returns dt as a time.Time with the same wall clock in loc. Wall clocks
// that do not exist in loc are resolved as by time.Date.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return time.Date(internalYear, time.January, 1+dt.days, 0, 0, 0, int(dt.tod), loc)
}

// span returns the time from dt to e in the given unit, truncated toward
// zero. unit must divide a day.
func (dt DateTime) span(e DateTime, unit time.Duration) int64 {
	days := int64(e.days - dt.days)
	tod := e.tod - dt.tod
	switch {
	case days > 0 && tod < 0:
		days--
		tod += day
	case days < 0 && tod > 0:
		days++
		tod -= day
	}
	return days*int64(day/unit) + int64(tod/unit)
}

// SecondsTo returns the number of whole seconds from dt to e. It is negative
// if e is before dt.
func (dt DateTime) SecondsTo(e DateTime) int64 {
	return dt.span(e, time.Second)
}

// MinutesTo returns the number of whole minutes from dt to e.
func (dt DateTime) MinutesTo(e DateTime) int64 {
	return dt.span(e, time.Minute)
}

// HoursTo returns the number of whole hours from dt to e.
func (dt DateTime) HoursTo(e DateTime) int64 {
	return dt.span(e, time.Hour)
}

// DaysTo returns the number of midnights between dt and e, ignoring the time
// of day. It is negative if e is before dt.
func (dt DateTime) DaysTo(e DateTime) int {
	return e.days - dt.days
}

// MonthsTo returns the number of whole calendar months from dt to e, that is
// the n with the largest magnitude such that dt.AddMonths(n) does not pass e.
func (dt DateTime) MonthsTo(e DateTime) int {
	n := dt.Date().MonthsUntil(e.Date())
	switch {
	case n > 0 && dt.AddMonths(n).After(e):
		n--
	case n < 0 && dt.AddMonths(n).Before(e):
		n++
	}
	return n
}

// YearsTo returns the number of whole calendar years from dt to e.
func (dt DateTime) YearsTo(e DateTime) int {
	return dt.MonthsTo(e) / 12
}

// GoString implements fmt.GoStringer and formats dt to be printed in Go source
// code.
func (dt DateTime) GoString() string {
	return fmt.Sprintf("calendar.DateTimeOf(%#v, %d)", dt.Date(), int64(dt.tod))
}

// String returns dt in the form "dd.MM.yyyy hh:mm:ss".
func (dt DateTime) String() string {
	return dt.Format(DateTimeLayout)
}
