package validaros

import "errors"

// ArrayParser parses a delimited value in which every token shares a single
// item parser. It follows the same splitting rules as TupleParser: trailing
// empty tokens are retained and empty tokens become nil elements without
// touching the parser.
//
// ArrayParser implements ValueParser, returning []any.
type ArrayParser struct {
	itemParser ValueParser
	separator  *Separator
}

var _ ValueParser = &ArrayParser{}

// NewArrayParser creates an array parser from an item parser and a
// separator. Neither may be nil.
func NewArrayParser(itemParser ValueParser, separator *Separator) (*ArrayParser, error) {
	if separator == nil {
		return nil, errors.New("separator must not be nil")
	}
	if itemParser == nil {
		return nil, errors.New("item parser must not be nil")
	}

	return &ArrayParser{
		itemParser: itemParser,
		separator:  separator,
	}, nil
}

// Parse splits raw on the configured separator and parses each non-empty
// token with the item parser. The returned slice has one element per token,
// in token order. The first token the item parser rejects aborts the whole
// call with a *MalformedValueError identifying the token and its position.
func (p *ArrayParser) Parse(raw string) (any, error) {
	tokens := p.separator.Split(raw)

	result := make([]any, len(tokens))
	for i, token := range tokens {
		if token == "" {
			continue
		}

		value, err := p.itemParser.Parse(token)
		if err != nil {
			return nil, malformedAt(err, token, i)
		}
		result[i] = value
	}

	return result, nil
}
