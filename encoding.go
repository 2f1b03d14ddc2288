// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"encoding"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler     = Date{}
	_ encoding.TextUnmarshaler   = (*Date)(nil)
	_ encoding.BinaryMarshaler   = Date{}
	_ encoding.BinaryUnmarshaler = (*Date)(nil)
	_ yaml.Marshaler             = Date{}
	_ yaml.Unmarshaler           = (*Date)(nil)
	_ toml.Marshaler             = Date{}
	_ toml.Unmarshaler           = (*Date)(nil)

	_ encoding.TextMarshaler     = DateTime{}
	_ encoding.TextUnmarshaler   = (*DateTime)(nil)
	_ encoding.BinaryMarshaler   = DateTime{}
	_ encoding.BinaryUnmarshaler = (*DateTime)(nil)
	_ yaml.Marshaler             = DateTime{}
	_ yaml.Unmarshaler           = (*DateTime)(nil)
	_ toml.Marshaler             = DateTime{}
	_ toml.Unmarshaler           = (*DateTime)(nil)

	_ json.Marshaler   = DateRange{}
	_ json.Unmarshaler = (*DateRange)(nil)
	_ yaml.Marshaler   = DateRange{}
	_ yaml.Unmarshaler = (*DateRange)(nil)
	_ json.Marshaler   = DateTimeRange{}
	_ json.Unmarshaler = (*DateTimeRange)(nil)
	_ yaml.Marshaler   = DateTimeRange{}
	_ yaml.Unmarshaler = (*DateTimeRange)(nil)
)

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format ("2019-08-07"). An invalid date can not be
// marshaled and results in a *ValidationError.
func (d Date) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.AppendFormat(nil, ISODateLayout), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format and valid.
func (d *Date) UnmarshalText(b []byte) error {
	s := string(b)
	v, rest, err := parseDate(s)
	if err == nil && rest != "" {
		err = errors.New("extra text " + strconv.Quote(rest))
	}
	if err == nil {
		err = v.Validate()
	}
	if err != nil {
		return &ParseError{Type: "Date", Value: s, Err: err}
	}
	*d = v
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as three [binary.Varint] values for the year, month and day, so
// invalid dates survive the round trip.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 3*binary.MaxVarintLen64)
	b = binary.AppendVarint(b, int64(d.year))
	b = binary.AppendVarint(b, int64(d.month))
	b = binary.AppendVarint(b, int64(d.day))
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	var f [3]int
	for i := range f {
		v, n := binary.Varint(b)
		switch {
		case n == 0:
			return errors.New("calendar: encoded date truncated")
		case n < 0 || int64(int(v)) != v:
			return errors.New("calendar: encoded date overflows int")
		}
		f[i], b = int(v), b[n:]
	}
	if len(b) != 0 {
		return errors.New("calendar: extra data after date")
	}
	*d = Of(Year(f[0]), Month(f[1]), Day(f[2]))
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface, using the text form.
func (d Date) MarshalYAML() (any, error) {
	b, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The node must be a
// scalar in the text form.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &ParseError{Type: "Date", Value: n.Value, Message: fmt.Sprintf("line %d: expected a scalar", n.Line)}
	}
	return d.UnmarshalText([]byte(n.Value))
}

// MarshalTOML implements the toml.Marshaler interface. The date is written as
// a TOML local date. TOML dates only cover the years 0 to 9999, so other years
// are written as a string in the text form.
func (d Date) MarshalTOML() ([]byte, error) {
	b, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return tomlValue(b, d.year), nil
}

// UnmarshalTOML implements the toml.Unmarshaler interface. It accepts TOML
// local dates and date-times (using their date) and strings in the text form.
func (d *Date) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case time.Time:
		*d = FromTime(v).Date()
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	}
	return &ParseError{Type: "Date", Value: fmt.Sprint(v), Message: fmt.Sprintf("unsupported TOML type %T", v)}
}

// MarshalText implements the encoding.TextMarshaler interface. The moment is
// formatted in ISO 8601 format ("2016-09-21T12:59:19"), followed by as many
// fractional second digits as needed.
func (dt DateTime) MarshalText() ([]byte, error) {
	b := dt.AppendFormat(nil, ISODateTimeLayout)
	if ns := dt.Nanosecond(); ns != 0 {
		frac := strconv.AppendInt(nil, int64(ns)+1e9, 10)[1:]
		for frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		b = append(b, '.')
		b = append(b, frac...)
	}
	return b, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// and time are separated by 'T' or a space, and up to nine fractional second
// digits may follow.
func (dt *DateTime) UnmarshalText(b []byte) error {
	s := string(b)
	v, err := parseDateTime(s)
	if err != nil {
		return &ParseError{Type: "DateTime", Value: s, Err: err}
	}
	*dt = v
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The moment
// is represented as two [binary.Varint] values, the number of days since
// 0001-01-01 and the nanoseconds since midnight.
func (dt DateTime) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, 2*binary.MaxVarintLen64)
	b = binary.AppendVarint(b, int64(dt.days))
	b = binary.AppendVarint(b, int64(dt.tod))
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (dt *DateTime) UnmarshalBinary(b []byte) error {
	days, n := binary.Varint(b)
	switch {
	case n == 0:
		return errors.New("calendar: encoded date-time truncated")
	case n < 0 || int64(int(days)) != days:
		return errors.New("calendar: encoded date-time overflows int")
	}
	b = b[n:]
	tod, n := binary.Varint(b)
	switch {
	case n == 0:
		return errors.New("calendar: encoded date-time truncated")
	case n < 0 || tod < 0 || tod >= int64(day):
		return errors.New("calendar: encoded time of day out of range")
	case n != len(b):
		return errors.New("calendar: extra data after date-time")
	}
	*dt = DateTime{days: int(days), tod: time.Duration(tod)}
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface, using the text form.
func (dt DateTime) MarshalYAML() (any, error) {
	b, err := dt.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The node must be a
// scalar in the text form.
func (dt *DateTime) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &ParseError{Type: "DateTime", Value: n.Value, Message: fmt.Sprintf("line %d: expected a scalar", n.Line)}
	}
	return dt.UnmarshalText([]byte(n.Value))
}

// MarshalTOML implements the toml.Marshaler interface. The moment is written
// as a TOML local date-time, or as a string outside the years 0 to 9999.
func (dt DateTime) MarshalTOML() ([]byte, error) {
	b, err := dt.MarshalText()
	if err != nil {
		return nil, err
	}
	return tomlValue(b, dt.Year()), nil
}

// tomlValue returns the text form b as a raw TOML value if year fits a TOML
// date, and as a basic string otherwise.
func tomlValue(b []byte, year Year) []byte {
	if 0 <= year && year <= 9999 {
		return b
	}
	return strconv.AppendQuote(nil, string(b))
}

// UnmarshalTOML implements the toml.Unmarshaler interface. It accepts TOML
// local date-times, offset date-times (using their wall clock) and local
// dates (at midnight), as well as strings in the text form.
func (dt *DateTime) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case time.Time:
		*dt = FromTime(v)
		return nil
	case string:
		return dt.UnmarshalText([]byte(v))
	}
	return &ParseError{Type: "DateTime", Value: fmt.Sprint(v), Message: fmt.Sprintf("unsupported TOML type %T", v)}
}

// dateRangeDoc is the document form of a DateRange.
type dateRangeDoc struct {
	Start  Date `json:"start" yaml:"start"`
	Finish Date `json:"finish" yaml:"finish"`
}

func (doc dateRangeDoc) validate() error {
	switch {
	case doc.Start.IsZero():
		return &ValidationError{Type: "DateRange", Field: "start", Reason: "missing"}
	case doc.Finish.IsZero():
		return &ValidationError{Type: "DateRange", Field: "finish", Reason: "missing"}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The range is an object
// with the members "start" and "finish" in the text form of Date.
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeDoc{Start: r.start, Finish: r.finish})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *DateRange) UnmarshalJSON(b []byte) error {
	var doc dateRangeDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}
	*r = NewDateRange(doc.Start, doc.Finish)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface. The range is a mapping
// with the keys "start" and "finish".
func (r DateRange) MarshalYAML() (any, error) {
	return dateRangeDoc{Start: r.start, Finish: r.finish}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (r *DateRange) UnmarshalYAML(n *yaml.Node) error {
	var doc dateRangeDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}
	*r = NewDateRange(doc.Start, doc.Finish)
	return nil
}

// dateTimeRangeDoc is the document form of a DateTimeRange.
type dateTimeRangeDoc struct {
	Start  *DateTime `json:"start" yaml:"start"`
	Finish *DateTime `json:"finish" yaml:"finish"`
}

func (doc dateTimeRangeDoc) validate() error {
	switch {
	case doc.Start == nil:
		return &ValidationError{Type: "DateTimeRange", Field: "start", Reason: "missing"}
	case doc.Finish == nil:
		return &ValidationError{Type: "DateTimeRange", Field: "finish", Reason: "missing"}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The range is an object
// with the members "start" and "finish" in the text form of DateTime.
func (r DateTimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateTimeRangeDoc{Start: &r.start, Finish: &r.finish})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *DateTimeRange) UnmarshalJSON(b []byte) error {
	var doc dateTimeRangeDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}
	*r = NewDateTimeRange(*doc.Start, *doc.Finish)
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface. The range is a mapping
// with the keys "start" and "finish".
func (r DateTimeRange) MarshalYAML() (any, error) {
	return dateTimeRangeDoc{Start: &r.start, Finish: &r.finish}, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (r *DateTimeRange) UnmarshalYAML(n *yaml.Node) error {
	var doc dateTimeRangeDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}
	*r = NewDateTimeRange(*doc.Start, *doc.Finish)
	return nil
}

// parseDate parses an ISO 8601 calendar date at the start of s. The result is
// not validated.
func parseDate(s string) (d Date, rest string, err error) {
	p := parser{value: s}
	y := p.year()
	p.accept('-')
	m := p.digits(2)
	p.accept('-')
	dd := p.digits(2)
	if p.err != nil {
		return Date{}, "", p.err
	}
	return Of(Year(y), Month(m), Day(dd)), p.value, nil
}

// parseDateTime parses and validates an ISO 8601 local date-time.
func parseDateTime(s string) (DateTime, error) {
	d, rest, err := parseDate(s)
	if err != nil {
		return DateTime{}, err
	}
	if err := d.Validate(); err != nil {
		return DateTime{}, err
	}
	p := parser{value: rest}
	if !p.skip('T') && !p.skip('t') {
		p.accept(' ')
	}
	h := p.digits(2)
	p.accept(':')
	m := p.digits(2)
	p.accept(':')
	sec := p.digits(2)
	var ns int
	if p.skip('.') || p.skip(',') {
		ns = p.fraction()
	}
	if p.err != nil {
		return DateTime{}, p.err
	}
	if p.value != "" {
		return DateTime{}, errors.New("extra text " + strconv.Quote(p.value))
	}
	switch {
	case h > 23:
		return DateTime{}, &ValidationError{Type: "DateTime", Field: "Hour", Reason: "out of range [0, 23]", Value: h}
	case m > 59:
		return DateTime{}, &ValidationError{Type: "DateTime", Field: "Minute", Reason: "out of range [0, 59]", Value: m}
	case sec > 59:
		return DateTime{}, &ValidationError{Type: "DateTime", Field: "Second", Reason: "out of range [0, 59]", Value: sec}
	}
	tod := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ns)
	return DateTimeOf(d, tod), nil
}

// parser consumes a string from the front. The first error sticks and makes
// all further calls no-ops.
type parser struct {
	value string
	err   error
}

func (p *parser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

// skip consumes c, if the input starts with it.
func (p *parser) skip(c byte) bool {
	if p.err == nil && len(p.value) > 0 && p.value[0] == c {
		p.value = p.value[1:]
		return true
	}
	return false
}

// accept consumes c or fails.
func (p *parser) accept(c byte) {
	if p.err == nil && !p.skip(c) {
		p.fail("expected %q at %q", c, p.value)
	}
}

// digits consumes exactly n decimal digits.
func (p *parser) digits(n int) int {
	if p.err != nil {
		return 0
	}
	if countDigits(p.value) < n {
		p.fail("expected %d digits at %q", n, p.value)
		return 0
	}
	v, _ := strconv.Atoi(p.value[:n])
	p.value = p.value[n:]
	return v
}

// year consumes an optionally signed year of at least four digits.
func (p *parser) year() int {
	if p.err != nil {
		return 0
	}
	neg := p.skip('-')
	if !neg {
		p.skip('+')
	}
	n := countDigits(p.value)
	if n < 4 {
		p.fail("expected year at %q", p.value)
		return 0
	}
	v, err := strconv.Atoi(p.value[:n])
	if err != nil {
		p.fail("year: %w", err)
		return 0
	}
	p.value = p.value[n:]
	if neg {
		v = -v
	}
	return v
}

// fraction consumes between one and nine digits of a decimal fraction of a
// second and returns it in nanoseconds.
func (p *parser) fraction() int {
	n := countDigits(p.value)
	if n == 0 || n > 9 {
		p.fail("expected one to nine fractional digits at %q", p.value)
		return 0
	}
	v := p.digits(n)
	for ; n < 9; n++ {
		v *= 10
	}
	return v
}

// countDigits returns the length of the run of decimal digits at the start of
// s.
func countDigits(s string) int {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}
