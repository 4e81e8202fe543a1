// Package validaros provides message validation extensions for the Velaros
// WebSocket framework.
//
// Validaros converts the serialized string values that arrive with a message,
// such as path parameters and delimited payload fields, into typed values,
// and checks them against declared constraints before handlers run.
//
// # Key Features
//
//   - Value parsers for scalars (string, bool, int, float)
//   - Delimited parsers for arrays, positionally typed tuples, and objects
//   - Field schemas combining parsers with constraint validators
//   - Drop-in Velaros middleware for schema validation and sessions
//
// # Value Parsers
//
// Every parser implements the single-method ValueParser interface, so scalar
// parsers and delimited parsers compose freely. A tuple parser handles
// values like "1,2,a,b" where the first positions are typed individually and
// the rest share a fallback:
//
//	parser, _ := validaros.NewTupleParser(
//	    []validaros.ValueParser{validaros.IntParser, validaros.IntParser},
//	    validaros.StringParser,
//	    validaros.Comma,
//	)
//
//	values, _ := parser.Parse("1,2,a,b")
//	// []any{int64(1), int64(2), "a", "b"}
//
// Empty tokens always become nil elements without touching a parser, and
// trailing empty tokens are never discarded: "1,," parses to three elements.
// The first token a parser rejects fails the whole call with a
// *MalformedValueError naming the token and its position.
//
// # Schemas
//
// A Schema declares named fields, where they come from, and how they are
// parsed and constrained. The middleware/validate package applies a schema
// to incoming messages and replies with field errors when validation fails:
//
//	schema := validaros.NewSchema(
//	    validaros.Field{Name: "id", Source: validaros.FromParams, Required: true, Parser: validaros.IntParser},
//	    validaros.Field{Name: "tags", Source: validaros.FromData, Parser: tagsParser},
//	)
//
//	router.Bind("/users/:id", validate.Middleware(schema), func(ctx *velaros.Context) {
//	    id, _ := validate.Value(ctx, "id")
//	    ...
//	})
//
// # Sessions
//
// The middleware/session package attaches a session to each WebSocket
// connection through a pluggable Store interface. An in-memory store is
// included; external stores implement the same interface.
//
// For more about the host framework, see https://github.com/RobertWHurst/velaros
package validaros
