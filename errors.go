// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
)

// ValidationError is returned when a value does not name a real point in the
// calendar, for example by FromYMD or when marshaling an invalid Date.
type ValidationError struct {
	// Type is the name of the type being validated, like "Date".
	Type string
	// Field is the name of the offending field. It is empty if the error
	// applies to the value as a whole.
	Field string
	// Reason is a short explanation.
	Reason string
	// Value optionally holds the offending value.
	Value any
}

// Error returns the string representation of a ValidationError.
//
//	"calendar: invalid Date.Day: out of range [1, 28] for February 2019"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "calendar: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "calendar: invalid " + e.Type + ": " + e.Reason
}

// OverflowError is returned by Duration.CheckedConvert if the converted count
// does not fit into an int64.
type OverflowError struct {
	From Duration
	To   Unit
}

// Error returns the string representation of an OverflowError.
func (e *OverflowError) Error() string {
	return "calendar: converting " + e.From.String() + " to " + e.To.String() + " overflows int64"
}

// ParseError describes a problem decoding the text form of a value.
type ParseError struct {
	// Type is the name of the type being decoded, like "DateTime".
	Type string
	// Value is the input.
	Value string
	// Message describes the problem.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	return fmt.Sprintf("calendar: parsing %s %s: %s", e.Type, strconv.Quote(e.Value), msg)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
