// Package validate provides Velaros middleware that checks incoming messages
// against a validaros.Schema before handlers run. Path parameters and payload
// fields are parsed into typed values, which handlers read back with Parsed
// or Value. When validation fails the middleware replies with field errors
// and stops the handler chain.
package validate

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/RobertWHurst/validaros"
	"github.com/RobertWHurst/velaros"
	jsonMiddleware "github.com/RobertWHurst/velaros/middleware/json"
)

const parsedKey = "validaros.parsed"

// FailureHandler is called when one or more fields fail validation. It owns
// the reply sent to the client; the middleware never calls ctx.Next() after
// a failure regardless of what the handler does.
type FailureHandler func(ctx *velaros.Context, faults []validaros.FieldFault)

// Option configures the middleware.
type Option func(*options)

type options struct {
	coerceData     bool
	failureHandler FailureHandler
}

// WithCoercedData makes the middleware rewrite the raw message data with the
// parsed typed values of data fields, so a later ctx.Unmarshal sees real
// numbers and arrays where the client sent delimited strings.
func WithCoercedData() Option {
	return func(o *options) {
		o.coerceData = true
	}
}

// WithFailureHandler replaces the default failure reply. Use this when the
// connection doesn't speak the JSON middleware's message format, or to
// attach your own error shape.
func WithFailureHandler(handler FailureHandler) Option {
	return func(o *options) {
		o.failureHandler = handler
	}
}

// Middleware creates middleware that validates incoming messages against the
// given schema. Fields with source FromParams are read from the message path
// parameters; fields with source FromData are read from the raw JSON payload,
// where the field name is a gjson path and may address nested values.
//
// On success the parsed values are attached to the message context and the
// chain continues. On failure the failure handler replies (by default with
// the JSON middleware's validation-error body) and the chain stops.
//
// Example:
//
//	schema := validaros.NewSchema(
//	    validaros.Field{Name: "id", Source: validaros.FromParams, Required: true, Parser: validaros.IntParser},
//	)
//	router.Bind("/users/:id", validate.Middleware(schema), func(ctx *velaros.Context) {
//	    id, _ := validate.Value(ctx, "id")
//	    ...
//	})
func Middleware(schema *validaros.Schema, opts ...Option) func(ctx *velaros.Context) {
	o := &options{failureHandler: replyWithFieldErrors}
	for _, opt := range opts {
		opt(o)
	}

	return func(ctx *velaros.Context) {
		parsed := map[string]any{}
		var faults []validaros.FieldFault

		data := ctx.Data()
		coerced := data
		coercedChanged := false

		for _, field := range schema.Fields() {
			switch field.Source {

			case validaros.FromParams:
				raw := ctx.Params().Get(field.Name)
				if raw == "" {
					if field.Required {
						faults = append(faults, missingFault(field.Name))
					}
					continue
				}

				value, fault := field.CheckString(raw)
				if fault != nil {
					faults = append(faults, *fault)
					continue
				}
				parsed[field.Name] = value

			case validaros.FromData:
				result := gjson.GetBytes(data, field.Name)
				if !result.Exists() {
					if field.Required {
						faults = append(faults, missingFault(field.Name))
					}
					continue
				}

				var value any
				var fault *validaros.FieldFault
				if result.Type == gjson.String {
					value, fault = field.CheckString(result.Str)
				} else {
					value, fault = field.CheckValue(result.Value())
				}
				if fault != nil {
					faults = append(faults, *fault)
					continue
				}
				parsed[field.Name] = value

				if o.coerceData {
					if updated, err := sjson.SetBytes(coerced, field.Name, value); err == nil {
						coerced = updated
						coercedChanged = true
					}
				}
			}
		}

		if len(faults) > 0 {
			o.failureHandler(ctx, faults)
			return
		}

		ctx.Set(parsedKey, parsed)
		if coercedChanged {
			ctx.SetMessageData(coerced)
		}

		ctx.Next()
	}
}

// Parsed returns all validated values attached to the context by Middleware,
// keyed by field name. Returns nil if no validation ran for this message.
func Parsed(ctx *velaros.Context) map[string]any {
	values, ok := ctx.Get(parsedKey)
	if !ok {
		return nil
	}
	parsed, ok := values.(map[string]any)
	if !ok {
		return nil
	}
	return parsed
}

// Value returns a single validated value by field name. The second return
// value is false if the field was absent or no validation ran.
func Value(ctx *velaros.Context, name string) (any, bool) {
	value, ok := Parsed(ctx)[name]
	return value, ok
}

func missingFault(name string) validaros.FieldFault {
	return validaros.FieldFault{Field: name, Position: -1, Message: "required field is missing"}
}

func replyWithFieldErrors(ctx *velaros.Context, faults []validaros.FieldFault) {
	fieldErrors := make([]jsonMiddleware.FieldError, len(faults))
	for i, fault := range faults {
		fieldErrors[i] = jsonMiddleware.FieldError{Field: fault.Field, Error: fault.Message}
	}
	if err := ctx.Send(fieldErrors); err != nil {
		ctx.Error = err
	}
}
