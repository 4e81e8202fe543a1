package validaros

import (
	"errors"
	"fmt"
)

// TupleParser parses a delimited value in which the expected type varies by
// position. The first len(itemParsers) tokens are each parsed by the parser
// declared for their position, and every token beyond that by the shared
// additional items parser. A common configuration is a typed fixed prefix
// with a permissive tail: two IntParser positions followed by StringParser
// for whatever else arrives.
//
// TupleParser itself implements ValueParser, returning []any, so it can sit
// anywhere a scalar parser can, including as a position of another tuple.
type TupleParser struct {
	itemParsers           []ValueParser
	additionalItemsParser ValueParser
	separator             *Separator
}

var _ ValueParser = &TupleParser{}

// NewTupleParser creates a tuple parser from an ordered table of positional
// parsers, a parser for additional items, and a separator. The table may be
// empty, in which case every token is handled by the additional items
// parser. The additional items parser and the separator must not be nil;
// pass RejectParser as the additional items parser to refuse tokens beyond
// the declared positions.
func NewTupleParser(itemParsers []ValueParser, additionalItemsParser ValueParser, separator *Separator) (*TupleParser, error) {
	if separator == nil {
		return nil, errors.New("separator must not be nil")
	}
	if additionalItemsParser == nil {
		return nil, errors.New("additional items parser must not be nil. use RejectParser to disallow additional items")
	}
	for i, itemParser := range itemParsers {
		if itemParser == nil {
			return nil, fmt.Errorf("item parser at position %d must not be nil", i)
		}
	}

	return &TupleParser{
		itemParsers:           append([]ValueParser(nil), itemParsers...),
		additionalItemsParser: additionalItemsParser,
		separator:             separator,
	}, nil
}

// Parse splits raw on the configured separator and parses each token with
// the parser assigned to its position. Empty tokens become nil elements
// without touching any parser. The returned slice has exactly one element
// per token, in token order. If any parser rejects its token, Parse fails
// with a *MalformedValueError identifying the token and its position, and no
// partial result is returned.
func (p *TupleParser) Parse(raw string) (any, error) {
	tokens := p.separator.Split(raw)

	result := make([]any, len(tokens))
	for i, token := range tokens {
		if token == "" {
			continue
		}

		itemParser := p.additionalItemsParser
		if i < len(p.itemParsers) {
			itemParser = p.itemParsers[i]
		}

		value, err := itemParser.Parse(token)
		if err != nil {
			return nil, malformedAt(err, token, i)
		}
		result[i] = value
	}

	return result, nil
}
