// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"time"
)

// A Weekday specifies a day of the week, numbered as in ISO 8601
// (Monday = 1, ..., Sunday = 7).
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns the English name of the day ("Monday", "Tuesday", ...).
func (w Weekday) String() string {
	if Monday <= w && w <= Sunday {
		return time.Weekday(w % 7).String()
	}
	return "%!Weekday(" + strconv.Itoa(int(w)) + ")"
}

// mod7 returns n modulo 7 in [0, 6].
func mod7(n int) int {
	n %= 7
	if n < 0 {
		n += 7
	}
	return n
}

// PrevWeekday returns the latest date on or before d that falls on w.
func (d Date) PrevWeekday(w Weekday) Date {
	return d.AddDays(-mod7(int(d.Weekday() - w)))
}

// NextWeekday returns the earliest date on or after d that falls on w.
func (d Date) NextWeekday(w Weekday) Date {
	return d.AddDays(mod7(int(w - d.Weekday())))
}

// PrevWeekdayExclusive returns the latest date strictly before d that falls
// on w.
func (d Date) PrevWeekdayExclusive(w Weekday) Date {
	return d.AddDays(-1).PrevWeekday(w)
}

// NextWeekdayExclusive returns the earliest date strictly after d that falls
// on w.
func (d Date) NextWeekdayExclusive(w Weekday) Date {
	return d.AddDays(1).NextWeekday(w)
}
