// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"math"
	"math/bits"
	"strconv"
	"time"
)

// A Unit is a unit of time whose length is a rational number of seconds.
//
// Months and Years are the average lengths of a month and a year in the
// Gregorian calendar (1/12 and 1 times 365.2425 days). They are chronological
// units and are unrelated to the calendrical Date.AddMonths and Date.AddYears.
//
// The predefined units below are the only valid ones. Converting from or to
// the zero Unit panics.
type Unit struct {
	num, den int64 // length in seconds is num/den
}

var (
	Nanoseconds  = Unit{1, 1e9}
	Microseconds = Unit{1, 1e6}
	Milliseconds = Unit{1, 1e3}
	Seconds      = Unit{1, 1}
	Minutes      = Unit{60, 1}
	Hours        = Unit{3600, 1}
	Days         = Unit{86400, 1}
	Weeks        = Unit{7 * 86400, 1}
	Months       = Unit{2629746, 1}
	Years        = Unit{31556952, 1}
)

// String returns the symbol of u ("ns", "s", "d", ...).
func (u Unit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "µs"
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "min"
	case Hours:
		return "h"
	case Days:
		return "d"
	case Weeks:
		return "w"
	case Months:
		return "mo"
	case Years:
		return "y"
	}
	return "(" + strconv.FormatInt(u.num, 10) + "/" + strconv.FormatInt(u.den, 10) + ")s"
}

// ratio returns n, d in lowest terms, such that converting a count in from to
// a count in to multiplies by n/d.
func ratio(from, to Unit) (n, d int64) {
	g1 := gcd(from.num, to.num)
	g2 := gcd(from.den, to.den)
	n = (from.num / g1) * (to.den / g2)
	d = (from.den / g2) * (to.num / g1)
	g := gcd(n, d)
	return n / g, d / g
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// scale returns count*n/d truncated toward zero, and whether the division had
// a remainder. ok is false if the result does not fit into an int64.
func scale(count, n, d int64) (q int64, inexact, ok bool) {
	neg := count < 0
	u := uint64(count)
	if neg {
		u = -u
	}
	hi, lo := bits.Mul64(u, uint64(n))
	if hi >= uint64(d) {
		return 0, false, false
	}
	uq, r := bits.Div64(hi, lo, uint64(d))
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if uq > limit {
		return 0, false, false
	}
	q = int64(uq)
	if neg {
		q = -q
	}
	return q, r != 0, true
}

// A Duration is a count of some Unit.
type Duration struct {
	Count int64
	Unit  Unit
}

// FromStd returns d as a count of Nanoseconds.
func FromStd(d time.Duration) Duration {
	return Duration{Count: int64(d), Unit: Nanoseconds}
}

// Convert returns d in the unit u, truncated toward zero. If the result does
// not fit into an int64 it silently overflows; use CheckedConvert to detect
// that.
func (d Duration) Convert(u Unit) Duration {
	n, den := ratio(d.Unit, u)
	q, _, ok := scale(d.Count, n, den)
	if !ok {
		q = d.Count * n / den
	}
	return Duration{Count: q, Unit: u}
}

// Floor returns d in the unit u, rounded toward negative infinity. It
// overflows like Convert.
func (d Duration) Floor(u Unit) Duration {
	n, den := ratio(d.Unit, u)
	q, inexact, ok := scale(d.Count, n, den)
	if !ok {
		return d.Convert(u)
	}
	if inexact && d.Count < 0 {
		q--
	}
	return Duration{Count: q, Unit: u}
}

// Ceil returns d in the unit u, rounded toward positive infinity. It
// overflows like Convert.
func (d Duration) Ceil(u Unit) Duration {
	n, den := ratio(d.Unit, u)
	q, inexact, ok := scale(d.Count, n, den)
	if !ok {
		return d.Convert(u)
	}
	if inexact && d.Count > 0 {
		q++
	}
	return Duration{Count: q, Unit: u}
}

// CheckedConvert is like Convert, but returns an *OverflowError if the result
// does not fit into an int64.
func (d Duration) CheckedConvert(u Unit) (Duration, error) {
	n, den := ratio(d.Unit, u)
	q, _, ok := scale(d.Count, n, den)
	if !ok {
		return Duration{}, &OverflowError{From: d, To: u}
	}
	return Duration{Count: q, Unit: u}, nil
}

// Std returns d as a time.Duration, truncated to whole nanoseconds. It
// overflows like Convert.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Convert(Nanoseconds).Count)
}

// Abs returns the absolute value of d. The absolute value of the most negative
// count is itself.
func (d Duration) Abs() Duration {
	if d.Count < 0 {
		d.Count = -d.Count
	}
	return d
}

// String returns d as its count followed by the unit symbol, like "1320d".
func (d Duration) String() string {
	return strconv.FormatInt(d.Count, 10) + d.Unit.String()
}
