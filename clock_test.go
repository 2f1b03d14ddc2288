// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	t.Parallel()
	fixed := time.Date(2019, 8, 7, 23, 30, 15, 0, time.UTC)
	c := ClockFunc(func() time.Time { return fixed })
	east := time.FixedZone("UTC+2", 2*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	tcs := []struct {
		loc  *time.Location
		want DateTime
	}{
		{time.UTC, DateTimeOf(Of(2019, 8, 7), 23*time.Hour+30*time.Minute+15*time.Second)},
		{east, DateTimeOf(Of(2019, 8, 8), 1*time.Hour+30*time.Minute+15*time.Second)},
		{west, DateTimeOf(Of(2019, 8, 7), 18*time.Hour+30*time.Minute+15*time.Second)},
	}
	for _, tc := range tcs {
		if got := NowFrom(c, tc.loc); got != tc.want {
			t.Errorf("NowFrom(%v) = %v, want %v", tc.loc, got, tc.want)
		}
		if got := TodayFrom(c, tc.loc); got != tc.want.Date() {
			t.Errorf("TodayFrom(%v) = %v, want %v", tc.loc, got, tc.want.Date())
		}
	}
	if got, want := NowFrom(c, nil), FromTime(fixed.Local()); got != want {
		t.Errorf("NowFrom(nil) = %v, want %v", got, want)
	}
}

func TestNow(t *testing.T) {
	before := FromTime(time.Now().UTC())
	got := Now(time.UTC)
	after := FromTime(time.Now().UTC())
	if got.Before(before) || got.After(after) {
		t.Errorf("Now(time.UTC) = %v, want between %v and %v", got, before, after)
	}
}
