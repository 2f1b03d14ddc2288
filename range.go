// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "time"

// A DateRange is the interval between two dates. The start need not be before
// the finish; all lengths are absolute.
//
// DateRanges can be compared with ==.
type DateRange struct {
	start, finish Date
}

// NewDateRange returns the range from start to finish.
func NewDateRange(start, finish Date) DateRange {
	return DateRange{start: start, finish: finish}
}

// Start returns the start of r.
func (r DateRange) Start() Date {
	return r.start
}

// Finish returns the finish of r.
func (r DateRange) Finish() Date {
	return r.finish
}

// ordered returns the endpoints of r, earlier one first.
func (r DateRange) ordered() (Date, Date) {
	if r.finish.Normalize().Before(r.start.Normalize()) {
		return r.finish, r.start
	}
	return r.start, r.finish
}

// Duration returns the length of r in Days. It can be converted to coarser
// units, so that r.Duration().Convert(Years) are the average Gregorian years
// in r.
func (r DateRange) Duration() Duration {
	return Duration{Count: int64(r.Days()), Unit: Days}
}

// Days returns the number of days in r.
func (r DateRange) Days() int {
	n := r.start.DaysUntil(r.finish)
	if n < 0 {
		n = -n
	}
	return n
}

// Weeks returns the number of whole weeks in r.
func (r DateRange) Weeks() int {
	return r.Days() / 7
}

// Months returns the number of whole calendar months in r, counted from the
// earlier endpoint.
func (r DateRange) Months() int {
	a, b := r.ordered()
	return a.MonthsUntil(b)
}

// Years returns the number of whole calendar years in r, counted from the
// earlier endpoint.
func (r DateRange) Years() int {
	a, b := r.ordered()
	return a.YearsUntil(b)
}

// AddOffset returns r with both endpoints moved by n days.
func (r DateRange) AddOffset(n int) DateRange {
	return DateRange{start: r.start.AddDays(n), finish: r.finish.AddDays(n)}
}

// Equal reports whether r and s have the same endpoints.
func (r DateRange) Equal(s DateRange) bool {
	return r == s
}

// Format formats both endpoints with Date.Format and joins them with sep.
func (r DateRange) Format(pattern, sep string) string {
	b := r.start.AppendFormat(nil, pattern)
	b = append(b, sep...)
	return string(r.finish.AppendFormat(b, pattern))
}

// String returns r in the form "DateRange {dd.MM.yyyy - dd.MM.yyyy}".
func (r DateRange) String() string {
	return "DateRange {" + r.Format(DateLayout, " - ") + "}"
}

// A DateTimeRange is the interval between two DateTimes. The start need not be
// before the finish; all lengths are absolute.
//
// DateTimeRanges can be compared with ==.
type DateTimeRange struct {
	start, finish DateTime
}

// NewDateTimeRange returns the range from start to finish.
func NewDateTimeRange(start, finish DateTime) DateTimeRange {
	return DateTimeRange{start: start, finish: finish}
}

// Start returns the start of r.
func (r DateTimeRange) Start() DateTime {
	return r.start
}

// Finish returns the finish of r.
func (r DateTimeRange) Finish() DateTime {
	return r.finish
}

// Duration returns the length of r in the unit u. It is the difference of the
// Timestamps of the endpoints, so a 25 hour range starting at midnight is one
// day long and zero months long.
func (r DateTimeRange) Duration(u Unit) Duration {
	n := r.finish.Timestamp(u) - r.start.Timestamp(u)
	return Duration{Count: n, Unit: u}.Abs()
}

// CalendarDays returns the number of calendar days r touches, counting the
// days of both endpoints. A range within a single day has one calendar day.
func (r DateTimeRange) CalendarDays() int {
	n := r.start.DaysTo(r.finish)
	if n < 0 {
		n = -n
	}
	return n + 1
}

// StartDistance returns the number of days between the start dates of r and
// s, ignoring the time of day. It is never negative.
func (r DateTimeRange) StartDistance(s DateTimeRange) int {
	n := r.start.DaysTo(s.start)
	if n < 0 {
		n = -n
	}
	return n
}

// AddOffset returns r with both endpoints moved by x.
func (r DateTimeRange) AddOffset(x time.Duration) DateTimeRange {
	return DateTimeRange{start: r.start.Add(x), finish: r.finish.Add(x)}
}

// Equal reports whether r and s have the same endpoints.
func (r DateTimeRange) Equal(s DateTimeRange) bool {
	return r == s
}

// Format formats both endpoints with DateTime.Format and joins them with sep.
func (r DateTimeRange) Format(pattern, sep string) string {
	b := r.start.AppendFormat(nil, pattern)
	b = append(b, sep...)
	return string(r.finish.AppendFormat(b, pattern))
}

// String returns r in the form
// "DateTimeRange {dd.MM.yyyy hh:mm:ss, dd.MM.yyyy hh:mm:ss}".
func (r DateTimeRange) String() string {
	return "DateTimeRange {" + r.Format(DateTimeLayout, ", ") + "}"
}
