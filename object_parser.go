package validaros

import "errors"

// ObjectParser parses a delimited value made of alternating key and value
// tokens, such as "role,admin,firstName,Alex". Keys are used as-is; each
// value token is parsed by the parser declared for its key, or by the shared
// additional properties parser for keys with no declared parser. Empty value
// tokens map to nil, the same absent rule the sequence parsers follow.
//
// ObjectParser implements ValueParser, returning map[string]any.
type ObjectParser struct {
	propertyParsers            map[string]ValueParser
	additionalPropertiesParser ValueParser
	separator                  *Separator
}

var _ ValueParser = &ObjectParser{}

// NewObjectParser creates an object parser from a table of per-property
// parsers keyed by property name, a parser for additional properties, and a
// separator. The table may be empty or nil. The additional properties
// parser and the separator must not be nil; pass RejectParser as the
// additional properties parser to refuse undeclared properties.
func NewObjectParser(propertyParsers map[string]ValueParser, additionalPropertiesParser ValueParser, separator *Separator) (*ObjectParser, error) {
	if separator == nil {
		return nil, errors.New("separator must not be nil")
	}
	if additionalPropertiesParser == nil {
		return nil, errors.New("additional properties parser must not be nil. use RejectParser to disallow additional properties")
	}
	for name, propertyParser := range propertyParsers {
		if propertyParser == nil {
			return nil, errors.New("property parser for " + name + " must not be nil")
		}
	}

	copiedParsers := make(map[string]ValueParser, len(propertyParsers))
	for name, propertyParser := range propertyParsers {
		copiedParsers[name] = propertyParser
	}

	return &ObjectParser{
		propertyParsers:            copiedParsers,
		additionalPropertiesParser: additionalPropertiesParser,
		separator:                  separator,
	}, nil
}

// Parse splits raw on the configured separator and consumes the tokens as
// key/value pairs. An odd number of tokens means a key arrived without a
// value and fails the call. A later pair with a repeated key overwrites the
// earlier one. The first value token its parser rejects aborts the whole
// call with a *MalformedValueError identifying the token and its position
// within the split sequence.
func (p *ObjectParser) Parse(raw string) (any, error) {
	tokens := p.separator.Split(raw)
	if len(tokens)%2 != 0 {
		return nil, &MalformedValueError{
			Value:    raw,
			Position: -1,
			Err:      errors.New("expected an even number of tokens forming key/value pairs"),
		}
	}

	result := make(map[string]any, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		key := tokens[i]
		valueToken := tokens[i+1]

		if valueToken == "" {
			result[key] = nil
			continue
		}

		propertyParser, ok := p.propertyParsers[key]
		if !ok {
			propertyParser = p.additionalPropertiesParser
		}

		value, err := propertyParser.Parse(valueToken)
		if err != nil {
			return nil, malformedAt(err, valueToken, i+1)
		}
		result[key] = value
	}

	return result, nil
}
