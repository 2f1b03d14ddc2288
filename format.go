// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gonih.org/calendar/internal/cache"
)

// These are predefined patterns for use in [Date.Format] and
// [DateTime.Format].
//
// A pattern is scanned left to right, always taking the longest token that
// matches at the current position. The recognized tokens are
//
//	Year: "yyyy" (at least four digits, with sign) "yy" (last two digits)
//	Month: "MM" (two digits) "M"
//	Day of the month: "dd" (two digits) "d"
//	Hour: "hh" (two digits) "h"
//	Minute: "mm" (two digits) "m"
//	Second: "ss" (two digits) "s"
//
// Runs of a letter longer than a token are split greedily, so "yyyyyy" is
// "yyyy" followed by "yy". Text between single quotes is copied verbatim and
// "''" produces a single quote. A single quote without a partner is dropped
// and the rest of the pattern is scanned as usual. Every other byte is copied.
//
// Date.Format only knows the year, month and day tokens; for it, the time
// letters are ordinary text.
const (
	DateLayout        = "dd.MM.yyyy"
	DateTimeLayout    = "dd.MM.yyyy hh:mm:ss"
	ISODateLayout     = "yyyy-MM-dd"
	ISODateTimeLayout = "yyyy-MM-dd'T'hh:mm:ss"
)

// inst is a single component of a compiled pattern, either a literal string,
// or a formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return strconv.Quote(i.lit)
	}
	return i.op.String()
}

// program is a compiled pattern.
type program []inst

// Size implements cache.Sizer.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by scanning preference, do not re-order!
	opLongYear
	opYear
	opZeroMonth
	opNumMonth
	opZeroDay
	opDay

	// Only recognized in DateTime patterns.
	opZeroHour
	opHour
	opZeroMinute
	opMinute
	opZeroSecond
	opSecond

	opInvalid
)

// String implements fmt.Stringer. Except for opLiteral, it returns the pattern
// token of the operator.
func (op fmtOp) String() string {
	switch op {
	case opLiteral:
		return "<literal>"
	case opLongYear:
		return "yyyy"
	case opYear:
		return "yy"
	case opZeroMonth:
		return "MM"
	case opNumMonth:
		return "M"
	case opZeroDay:
		return "dd"
	case opDay:
		return "d"
	case opZeroHour:
		return "hh"
	case opHour:
		return "h"
	case opZeroMinute:
		return "mm"
	case opMinute:
		return "m"
	case opZeroSecond:
		return "ss"
	case opSecond:
		return "s"
	}
	panic("invalid fmtOp")
}

// patternKey identifies a compiled pattern. The same pattern compiles
// differently for dates and date-times.
type patternKey struct {
	pattern string
	clock   bool
}

// memoize compiled patterns.
var memo = cache.Cache[patternKey, program]{MaxSize: 1 << 12}

// compile translates a pattern into a program. Adjacent literals are merged.
func compile(k patternKey) program {
	var (
		prog program
		lit  []byte
	)
	flush := func() {
		if len(lit) > 0 {
			prog = append(prog, inst{lit: string(lit)})
			lit = lit[:0]
		}
	}

	last := opZeroHour
	if k.clock {
		last = opInvalid
	}

	s := k.pattern
	for len(s) > 0 {
		if rest, ok := strings.CutPrefix(s, "''"); ok {
			lit = append(lit, '\'')
			s = rest
			continue
		}
		if s[0] == '\'' {
			s = s[1:]
			if text, rest, ok := strings.Cut(s, "'"); ok {
				lit = append(lit, text...)
				s = rest
			}
			continue
		}
		op, rest := nextOp(s, last)
		if op == opLiteral {
			lit = append(lit, s[0])
			s = s[1:]
			continue
		}
		flush()
		prog = append(prog, inst{op: op})
		s = rest
	}
	flush()
	return prog
}

// nextOp returns the operator at the start of s, considering only operators
// before last, and the rest of s. If there is none, it returns opLiteral.
func nextOp(s string, last fmtOp) (fmtOp, string) {
	for op := opLongYear; op < last; op++ {
		if rest, ok := strings.CutPrefix(s, op.String()); ok {
			return op, rest
		}
	}
	return opLiteral, s
}

// Format returns a textual representation of d according to pattern. See the
// documentation of DateLayout for the pattern syntax. Format never fails and
// does not normalize, so an invalid d prints its fields as they are.
func (d Date) Format(pattern string) string {
	return string(d.AppendFormat(newBuf(pattern), pattern))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, pattern string) []byte {
	prog := memo.Get(patternKey{pattern: pattern}, compile)
	return prog.run(b, d, 0)
}

// Format returns a textual representation of dt according to pattern. See the
// documentation of DateLayout for the pattern syntax.
func (dt DateTime) Format(pattern string) string {
	return string(dt.AppendFormat(newBuf(pattern), pattern))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (dt DateTime) AppendFormat(b []byte, pattern string) []byte {
	prog := memo.Get(patternKey{pattern: pattern, clock: true}, compile)
	return prog.run(b, dt.Date(), dt.tod)
}

// newBuf returns an empty buffer likely large enough to format pattern.
func newBuf(pattern string) []byte {
	const bufSize = 64
	n := len(pattern) + 10
	if n < bufSize {
		var buf [bufSize]byte
		return buf[:0]
	}
	return make([]byte, 0, n)
}

// run executes p for the given date and time of day, appending to b.
func (p program) run(b []byte, d Date, tod time.Duration) []byte {
	for _, i := range p {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opLongYear:
			y := int64(d.year)
			if y < 0 {
				b = append(b, '-')
				y = -y
			}
			if y < 1000 {
				b = append(b, '0')
			}
			if y < 100 {
				b = append(b, '0')
			}
			if y < 10 {
				b = append(b, '0')
			}
			b = strconv.AppendInt(b, y, 10)
		case opYear:
			y := int64(d.year) % 100
			if y < 0 {
				y = -y
			}
			b = appendInt(b, y, true)
		case opZeroMonth:
			b = appendInt(b, int64(d.month), true)
		case opNumMonth:
			b = appendInt(b, int64(d.month), false)
		case opZeroDay:
			b = appendInt(b, int64(d.day), true)
		case opDay:
			b = appendInt(b, int64(d.day), false)
		case opZeroHour:
			b = appendInt(b, int64(tod/time.Hour), true)
		case opHour:
			b = appendInt(b, int64(tod/time.Hour), false)
		case opZeroMinute:
			b = appendInt(b, int64(tod%time.Hour/time.Minute), true)
		case opMinute:
			b = appendInt(b, int64(tod%time.Hour/time.Minute), false)
		case opZeroSecond:
			b = appendInt(b, int64(tod%time.Minute/time.Second), true)
		case opSecond:
			b = appendInt(b, int64(tod%time.Minute/time.Second), false)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// appendInt appends v in decimal. If zero is set, values in [0, 9] get a
// leading zero.
func appendInt(b []byte, v int64, zero bool) []byte {
	if zero && 0 <= v && v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, v, 10)
}
