// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"gonih.org/set"
)

var layouts = []string{
	DateLayout,
	DateTimeLayout,
	ISODateLayout,
	ISODateTimeLayout,
}

// TestFormat checks that formatting works as expected.
func TestFormat(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		date    Date
		pattern string
		want    string
	}{
		{Of(2016, 9, 21), DateLayout, "21.09.2016"},
		{Of(2016, 9, 21), ISODateLayout, "2016-09-21"},
		{Of(2016, 9, 21), "d.M.yy", "21.9.16"},
		{Of(2016, 12, 1), "d.M.yy", "1.12.16"},
		{Of(2016, 9, 21), "dd.MM.yyyy hh", "21.09.2016 hh"},
		{Of(2016, 9, 21), "yyyyyy", "201616"},
		{Of(2016, 9, 21), "MMM", "099"},
		{Of(2016, 9, 21), "", ""},
		{Of(5, 1, 2), "yyyy M d yy", "0005 1 2 05"},
		{Of(-44, 3, 15), ISODateLayout, "-0044-03-15"},
		{Of(-44, 3, 15), "yy", "44"},
		{Of(12016, 3, 10), ISODateLayout, "12016-03-10"},
		{Of(2019, 2, 30), DateLayout, "30.02.2019"},
		{Of(2016, 9, 21), "yyyy''MM''dd", "2016'09'21"},
		{Of(2016, 9, 21), "dd-'MM-yyyy", "21-09-2016"},
		{Of(2016, 9, 21), "'yyyy'", "yyyy"},
	}
	for _, tc := range tcs {
		if got := tc.date.Format(tc.pattern); got != tc.want {
			t.Errorf("%#v.Format(%q) = %q, want %q", tc.date, tc.pattern, got, tc.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()
	dt := DateTimeOf(Of(2016, 9, 21), 9*time.Hour+7*time.Minute+5*time.Second)
	tcs := []struct {
		pattern string
		want    string
	}{
		{DateTimeLayout, "21.09.2016 09:07:05"},
		{ISODateTimeLayout, "2016-09-21T09:07:05"},
		{"hh", "09"},
		{"h", "9"},
		{"mm", "07"},
		{"mmm", "077"},
		{"m", "7"},
		{"ss", "05"},
		{"sss", "055"},
		{"s", "5"},
		{"hhmm", "0907"},
		{"yyyy|'what'|MM'ahhMM'dd", "2016|what|09ahhMM21"},
		{"yyyy''MM''dd", "2016'09'21"},
		{"dd-'MM-yyyy", "21-09-2016"},
	}
	for _, tc := range tcs {
		if got := dt.Format(tc.pattern); got != tc.want {
			t.Errorf("%v.Format(%q) = %q, want %q", dt, tc.pattern, got, tc.want)
		}
	}
	if got, want := string(dt.AppendFormat([]byte("at "), "hh:mm")), "at 09:07"; got != want {
		t.Errorf("AppendFormat = %q, want %q", got, want)
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		k    patternKey
		want program
	}{
		{patternKey{"yyyy-'T'MM", false}, program{{op: opLongYear}, {lit: "-T"}, {op: opZeroMonth}}},
		{patternKey{"dd hh", false}, program{{op: opZeroDay}, {lit: " hh"}}},
		{patternKey{"dd hh", true}, program{{op: opZeroDay}, {lit: " "}, {op: opZeroHour}}},
		{patternKey{"''", true}, program{{lit: "'"}}},
		{patternKey{"'abc", true}, program{{lit: "abc"}}},
		{patternKey{"", true}, nil},
	}
	for _, tc := range tcs {
		if got := compile(tc.k); !slices.Equal(got, tc.want) {
			t.Errorf("compile(%+v) = %v, want %v", tc.k, got, tc.want)
		}
	}
}

// TestFormatZeroAllocs checks that AppendFormat does not allocate for a
// known pattern and a large enough buffer.
func TestFormatZeroAllocs(t *testing.T) {
	const want = 0.0
	got := testing.AllocsPerRun(10000, formatHappy)
	if got != want {
		t.Fatalf("AppendFormat allocates %v times, want %v", got, want)
	}
}

// BenchmarkFormat benchmarks (and counts allocations) of AppendFormat.
func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		formatHappy()
	}
}

var formatBuf [64]byte

func formatHappy() {
	dt := DateTimeOf(Of(2016, 9, 21), 12*time.Hour+59*time.Minute+19*time.Second)
	_ = dt.AppendFormat(formatBuf[:0], DateTimeLayout)
}

// FuzzFormat generates patterns and values to check that formatting does not
// panic.
func FuzzFormat(f *testing.F) {
	for _, l := range layouts {
		f.Add(l, 2016, 9, 21, int64(46759e9))
	}
	f.Add("yyyy|'what'|MM'ahhMM'dd", -44, 3, 15, int64(-1))
	f.Add("'", 0, 0, 0, int64(0))
	f.Fuzz(func(t *testing.T, pattern string, year, month, day int, x int64) {
		d := Of(Year(year), Month(month), Day(day))
		d.Format(pattern)
		if inRange(year, month, day) {
			DateTimeOf(d, time.Duration(x)).Format(pattern)
		}
	})
}

// FuzzFormatCompat generates patterns and values to compare the formatting
// to a straightforward rendition of every token with fmt.
//
// To avoid having to reimplement the scanner, the fuzzing target uses a
// binary representation for patterns, in which literals can not contain
// pattern syntax and adjacent tokens can not merge.
func FuzzFormatCompat(f *testing.F) {
	f.Add([]byte{byte(opLongYear), byte(opLiteral), 1, '-', byte(opZeroMonth)}, 2016, uint8(8), uint8(20), uint32(46759))
	f.Fuzz(func(t *testing.T, progBytes []byte, year int, month, day uint8, sec uint32) {
		if year < -99999 || year > 99999 {
			return
		}
		prog, ok := decodeProg(progBytes)
		if !ok {
			return
		}
		d := Of(Year(year), Month(month%12+1), Day(day%28+1))
		dt := DateTimeOf(d, time.Duration(sec%86400)*time.Second)
		var pattern, want strings.Builder
		for _, i := range prog {
			if i.op == opLiteral {
				pattern.WriteString(i.lit)
				want.WriteString(i.lit)
				continue
			}
			pattern.WriteString(i.op.String())
			want.WriteString(render(i.op, dt))
		}
		if got := dt.Format(pattern.String()); got != want.String() {
			t.Fatalf("%v.Format(%q) = %q, want %q", dt, pattern.String(), got, want.String())
		}
	})
}

// render formats a single token with fmt.
func render(op fmtOp, dt DateTime) string {
	switch op {
	case opLongYear:
		if y := dt.Year(); y < 0 {
			return fmt.Sprintf("-%04d", -y)
		}
		return fmt.Sprintf("%04d", dt.Year())
	case opYear:
		y := dt.Year() % 100
		if y < 0 {
			y = -y
		}
		return fmt.Sprintf("%02d", y)
	case opZeroMonth:
		return fmt.Sprintf("%02d", int(dt.Month()))
	case opNumMonth:
		return fmt.Sprint(int(dt.Month()))
	case opZeroDay:
		return fmt.Sprintf("%02d", dt.Day())
	case opDay:
		return fmt.Sprint(dt.Day())
	case opZeroHour:
		return fmt.Sprintf("%02d", dt.Hour())
	case opHour:
		return fmt.Sprint(dt.Hour())
	case opZeroMinute:
		return fmt.Sprintf("%02d", dt.Minute())
	case opMinute:
		return fmt.Sprint(dt.Minute())
	case opZeroSecond:
		return fmt.Sprintf("%02d", dt.Second())
	case opSecond:
		return fmt.Sprint(dt.Second())
	}
	panic("invalid fmtOp")
}

// decodeProg tries to parse b into a program for use in fuzzing, with a
// simple format. It validates that no literal is empty or contains pattern
// syntax and that no two adjacent tokens use the same letter.
//
// The format consists of a sequence of encoded inst. The first byte is the
// fmtOp value (and must be in range). If the fmtOp is opLiteral, it must be
// followed by the literal, prefixed with a one-byte length.
func decodeProg(b []byte) (program, bool) {
	var (
		prog program
		last byte
	)
	for len(b) > 0 {
		var (
			op  fmtOp
			n   int
			lit string
		)
		op, b = fmtOp(b[0]), b[1:]
		if op < 0 || op >= opInvalid {
			return nil, false
		}
		if op != opLiteral {
			if c := op.String()[0]; c != last {
				prog, last = append(prog, inst{op: op}), c
				continue
			}
			return nil, false
		}
		if len(b) == 0 {
			return nil, false
		}
		n, b = int(b[0]), b[1:]
		if n == 0 || n > len(b) {
			return nil, false
		}
		lit, b = string(b[:n]), b[n:]
		for s := range patternSyntax {
			if strings.Contains(lit, s) {
				return nil, false
			}
		}
		prog, last = append(prog, inst{lit: lit}), 0
	}
	return prog, true
}

// patternSyntax are the substrings with special meaning in a pattern.
var patternSyntax = set.Make("y", "M", "d", "h", "m", "s", "'")
