// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "time"

// A Clock tells the current time. It is the only source of the present the
// package uses; all other operations are pure.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the system clock with time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// TodayFrom returns the current date in loc, as told by c. A nil loc means
// time.Local.
func TodayFrom(c Clock, loc *time.Location) Date {
	return NowFrom(c, loc).Date()
}

// NowFrom returns the current date and time in loc, as told by c. A nil loc
// means time.Local.
func NowFrom(c Clock, loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(c.Now().In(loc))
}
