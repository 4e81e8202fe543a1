package validaros

import (
	"fmt"

	"github.com/grafana/regexp"
)

// Validator checks an already-parsed value against a constraint. Validators
// run after a field's value parser, so they see typed values rather than
// serialized strings.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc is a function adapter that allows ordinary functions to be
// used as validators.
type ValidatorFunc func(value any) error

// Validate calls fn(value).
func (fn ValidatorFunc) Validate(value any) error {
	return fn(value)
}

// Pattern creates a validator that requires string values matching the given
// regular expression. Returns an error if the pattern string is invalid.
func Pattern(patternStr string) (Validator, error) {
	regExp, err := regexp.Compile(patternStr)
	if err != nil {
		return nil, err
	}

	return ValidatorFunc(func(value any) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected a string, got %T", value)
		}
		if !regExp.MatchString(str) {
			return fmt.Errorf("%q does not match pattern %s", str, patternStr)
		}
		return nil
	}), nil
}

// OneOf creates a validator that requires the value to equal one of the
// allowed values.
func OneOf(allowed ...any) Validator {
	return ValidatorFunc(func(value any) error {
		for _, allowedValue := range allowed {
			if value == allowedValue {
				return nil
			}
		}
		return fmt.Errorf("%v is not an allowed value", value)
	})
}

// Range creates a validator that requires a numeric value between min and
// max inclusive. It accepts the numeric types the scalar parsers produce
// (int64 and float64), plus int and float32 for values that arrive already
// typed rather than through a parser.
func Range(min, max float64) Validator {
	return ValidatorFunc(func(value any) error {
		var number float64
		switch v := value.(type) {
		case int64:
			number = float64(v)
		case float64:
			number = v
		case int:
			number = float64(v)
		case float32:
			number = float64(v)
		default:
			return fmt.Errorf("expected a number, got %T", value)
		}
		if number < min || number > max {
			return fmt.Errorf("%v is outside the range %v to %v", value, min, max)
		}
		return nil
	})
}
