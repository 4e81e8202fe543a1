package validaros

import (
	"errors"
	"strconv"
)

// ValueParser is the capability shared by every parser in this package. A
// ValueParser converts a single serialized string into a typed value. Parsers
// hold no per-call state and are safe to share between goroutines, so a
// single configured parser can back any number of concurrent validation
// calls.
//
// A parser that cannot make sense of its input must return a
// *MalformedValueError describing the offending value.
type ValueParser interface {
	Parse(value string) (any, error)
}

// ValueParserFunc is a function adapter that allows ordinary functions to be
// used as value parsers.
type ValueParserFunc func(value string) (any, error)

// Parse calls fn(value).
func (fn ValueParserFunc) Parse(value string) (any, error) {
	return fn(value)
}

// MalformedValueError is returned when a serialized value cannot be parsed
// into its target type. Value holds the offending input. Position is the
// index of the value within a delimited sequence, or -1 when the value was
// not part of one. Err, when set, holds the underlying cause and is exposed
// via Unwrap.
type MalformedValueError struct {
	Value    string
	Position int
	Err      error
}

func (e *MalformedValueError) Error() string {
	message := "malformed value " + strconv.Quote(e.Value)
	if e.Position >= 0 {
		message += " at position " + strconv.Itoa(e.Position)
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// malformedAt rebuilds a parser failure so it identifies the token and its
// position within a delimited sequence. Scalar parsers report position -1;
// the delimited parsers use this to attach the real position before the
// error leaves Parse.
func malformedAt(err error, token string, position int) error {
	var malformedErr *MalformedValueError
	if errors.As(err, &malformedErr) {
		return &MalformedValueError{Value: token, Position: position, Err: malformedErr.Err}
	}
	return &MalformedValueError{Value: token, Position: position, Err: err}
}

// StringParser accepts any value and returns it unchanged.
var StringParser ValueParser = ValueParserFunc(func(value string) (any, error) {
	return value, nil
})

// BoolParser parses boolean values. It accepts the forms understood by
// strconv.ParseBool ("true", "false", "1", "0", ...).
var BoolParser ValueParser = ValueParserFunc(func(value string) (any, error) {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, &MalformedValueError{Value: value, Position: -1, Err: errors.New("expected a boolean")}
	}
	return parsed, nil
})

// IntParser parses decimal integers into int64 values.
var IntParser ValueParser = ValueParserFunc(func(value string) (any, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, &MalformedValueError{Value: value, Position: -1, Err: errors.New("expected an integer")}
	}
	return parsed, nil
})

// FloatParser parses decimal numbers into float64 values.
var FloatParser ValueParser = ValueParserFunc(func(value string) (any, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, &MalformedValueError{Value: value, Position: -1, Err: errors.New("expected a number")}
	}
	return parsed, nil
})

// RejectParser fails on every value. Pass it as the additional items parser
// of a TupleParser, or the additional properties parser of an ObjectParser,
// to refuse values beyond the declared positions or properties.
var RejectParser ValueParser = ValueParserFunc(func(value string) (any, error) {
	return nil, &MalformedValueError{Value: value, Position: -1, Err: errors.New("unexpected value")}
})
