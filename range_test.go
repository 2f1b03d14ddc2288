// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"testing"
	"time"
)

func TestDateRange(t *testing.T) {
	t.Parallel()
	a, b := Of(2015, 9, 10), Of(2019, 4, 22)
	for _, r := range []DateRange{NewDateRange(a, b), NewDateRange(b, a)} {
		if got := r.Days(); got != 1320 {
			t.Errorf("%v.Days() = %d, want 1320", r, got)
		}
		if got := r.Weeks(); got != 188 {
			t.Errorf("%v.Weeks() = %d, want 188", r, got)
		}
		if got := r.Months(); got != 43 {
			t.Errorf("%v.Months() = %d, want 43", r, got)
		}
		if got := r.Years(); got != 3 {
			t.Errorf("%v.Years() = %d, want 3", r, got)
		}
		if got, want := r.Duration(), (Duration{1320, Days}); got != want {
			t.Errorf("%v.Duration() = %v, want %v", r, got, want)
		}
		if got, want := r.Duration().Ceil(Years), (Duration{4, Years}); got != want {
			t.Errorf("%v.Duration().Ceil(Years) = %v, want %v", r, got, want)
		}
	}
	r := NewDateRange(a, b)
	if r.Start() != a || r.Finish() != b {
		t.Errorf("%v: Start() = %v, Finish() = %v, want %v, %v", r, r.Start(), r.Finish(), a, b)
	}
	if r.Equal(NewDateRange(b, a)) {
		t.Errorf("%v.Equal(%v) = true, want false", r, NewDateRange(b, a))
	}
}

func TestDateRangeMonthsClamp(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		r      DateRange
		months int
		years  int
	}{
		{NewDateRange(Of(2019, 1, 31), Of(2019, 2, 28)), 1, 0},
		{NewDateRange(Of(2019, 2, 28), Of(2019, 1, 31)), 1, 0},
		{NewDateRange(Of(2016, 2, 29), Of(2017, 2, 28)), 12, 1},
		{NewDateRange(Of(2019, 8, 7), Of(2019, 8, 7)), 0, 0},
	}
	for _, tc := range tcs {
		if got := tc.r.Months(); got != tc.months {
			t.Errorf("%v.Months() = %d, want %d", tc.r, got, tc.months)
		}
		if got := tc.r.Years(); got != tc.years {
			t.Errorf("%v.Years() = %d, want %d", tc.r, got, tc.years)
		}
	}
}

func TestDateRangeAddOffset(t *testing.T) {
	t.Parallel()
	r := NewDateRange(Of(2019, 1, 7), Of(2018, 3, 1))
	want := NewDateRange(Of(2019, 1, 10), Of(2018, 3, 4))
	if got := r.AddOffset(3); !got.Equal(want) {
		t.Errorf("%v.AddOffset(3) = %v, want %v", r, got, want)
	}
	if got := want.AddOffset(-3); got != r {
		t.Errorf("%v.AddOffset(-3) = %v, want %v", want, got, r)
	}
	if got := r.AddOffset(3).Days(); got != r.Days() {
		t.Errorf("AddOffset changed the length from %d to %d", r.Days(), got)
	}
}

func TestDateRangeString(t *testing.T) {
	t.Parallel()
	r := NewDateRange(Of(2019, 1, 7), Of(2018, 3, 1))
	if got, want := r.String(), "DateRange {07.01.2019 - 01.03.2018}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := r.Format(ISODateLayout, "/"), "2019-01-07/2018-03-01"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDateTimeRange(t *testing.T) {
	t.Parallel()
	a := Of(2017, 5, 10).Midnight()
	b := a.Add(25 * time.Hour)
	tcs := []struct {
		u    Unit
		want int64
	}{
		{Hours, 25},
		{Days, 1},
		{Months, 0},
		{Minutes, 1500},
		{Seconds, 90000},
		{Milliseconds, 90000000},
	}
	for _, r := range []DateTimeRange{NewDateTimeRange(a, b), NewDateTimeRange(b, a)} {
		for _, tc := range tcs {
			if got, want := r.Duration(tc.u), (Duration{tc.want, tc.u}); got != want {
				t.Errorf("%v.Duration(%v) = %v, want %v", r, tc.u, got, want)
			}
		}
	}
	r := NewDateTimeRange(a, b)
	if r.Start() != a || r.Finish() != b {
		t.Errorf("%v: Start() = %v, Finish() = %v, want %v, %v", r, r.Start(), r.Finish(), a, b)
	}
}

func TestDateTimeRangeAddOffset(t *testing.T) {
	t.Parallel()
	a := DateTimeOf(Of(2019, 3, 20), 17*time.Hour+50*time.Minute+34*time.Second)
	r := NewDateTimeRange(a, a.AddDays(1))
	want := NewDateTimeRange(a.Add(2*time.Hour), a.AddDays(1).Add(2*time.Hour))
	if got := r.AddOffset(7200 * time.Second); !got.Equal(want) {
		t.Errorf("%v.AddOffset(2h) = %v, want %v", r, got, want)
	}
	if got := want.AddOffset(-2 * time.Hour); got != r {
		t.Errorf("%v.AddOffset(-2h) = %v, want %v", want, got, r)
	}
	if r.Equal(want) {
		t.Errorf("%v.Equal(%v) = true, want false", r, want)
	}
}

func TestDateTimeRangeString(t *testing.T) {
	t.Parallel()
	a := DateTimeOf(Of(2019, 3, 20), 17*time.Hour+50*time.Minute+34*time.Second)
	r := NewDateTimeRange(a, a.AddDays(1))
	if got, want := r.String(), "DateTimeRange {20.03.2019 17:50:34, 21.03.2019 17:50:34}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := r.Format("hh:mm", " to "), "17:50 to 17:50"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestDateTimeRangeCalendarDays(t *testing.T) {
	t.Parallel()
	morning := DateTimeOf(Of(2019, 3, 20), 8*time.Hour)
	tcs := []struct {
		r    DateTimeRange
		want int
	}{
		{NewDateTimeRange(morning, morning), 1},
		{NewDateTimeRange(morning, morning.Add(15*time.Hour+59*time.Minute)), 1},
		{NewDateTimeRange(morning, morning.Add(16*time.Hour)), 2},
		{NewDateTimeRange(morning.AddDays(9), morning), 10},
		{NewDateTimeRange(Of(2019, 12, 31).Midnight().Add(-time.Second), Of(2020, 1, 1).Midnight()), 3},
	}
	for _, tc := range tcs {
		if got := tc.r.CalendarDays(); got != tc.want {
			t.Errorf("%v.CalendarDays() = %d, want %d", tc.r, got, tc.want)
		}
	}
}

func TestDateTimeRangeStartDistance(t *testing.T) {
	t.Parallel()
	a := NewDateTimeRange(DateTimeOf(Of(2019, 3, 20), 23*time.Hour), DateTimeOf(Of(2019, 3, 25), 0))
	b := NewDateTimeRange(DateTimeOf(Of(2019, 3, 23), time.Hour), DateTimeOf(Of(2019, 3, 21), 0))
	if got := a.StartDistance(b); got != 3 {
		t.Errorf("%v.StartDistance(%v) = %d, want 3", a, b, got)
	}
	if got := b.StartDistance(a); got != 3 {
		t.Errorf("%v.StartDistance(%v) = %d, want 3", b, a, got)
	}
	if got := a.StartDistance(a.AddOffset(time.Hour)); got != 1 {
		t.Errorf("%v.StartDistance(%v) = %d, want 1", a, a.AddOffset(time.Hour), got)
	}
}
