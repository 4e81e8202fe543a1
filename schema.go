package validaros

import "errors"

// FieldSource identifies where a field's raw value comes from when a schema
// is applied to an incoming message.
type FieldSource int

const (
	// FromParams reads the field from the message path parameters.
	FromParams FieldSource = iota

	// FromData reads the field from the message data payload.
	FromData
)

// Field describes a single validated field: where it comes from, whether it
// must be present, how its serialized form is parsed, and which constraints
// the parsed value must satisfy. A field with no parser keeps string values
// as-is.
type Field struct {
	Name       string
	Source     FieldSource
	Required   bool
	Parser     ValueParser
	Validators []Validator
}

// FieldFault describes why a single field failed validation. Position is the
// index of the offending token within a delimited value, or -1 when the
// failure was not positional.
type FieldFault struct {
	Field    string
	Position int
	Message  string
}

// Schema is an ordered set of fields to validate together. Schemas are fixed
// at construction and safe to share between goroutines, so a single schema
// can back a middleware handling concurrent messages.
type Schema struct {
	fields []Field
}

// NewSchema creates a schema from the given fields. Field order is
// preserved; it determines the order faults are reported in.
func NewSchema(fields ...Field) *Schema {
	return &Schema{fields: append([]Field(nil), fields...)}
}

// Fields returns the schema's fields in declaration order. The returned
// slice must not be modified.
func (s *Schema) Fields() []Field {
	return s.fields
}

// CheckString parses raw with the field's parser (or keeps it as a string if
// the field has none) and runs the field's validators against the result.
// Returns the parsed value, or a fault describing the first failure.
func (f Field) CheckString(raw string) (any, *FieldFault) {
	parser := f.Parser
	if parser == nil {
		parser = StringParser
	}

	value, err := parser.Parse(raw)
	if err != nil {
		fault := &FieldFault{Field: f.Name, Position: -1, Message: err.Error()}
		var malformedErr *MalformedValueError
		if errors.As(err, &malformedErr) {
			fault.Position = malformedErr.Position
		}
		return nil, fault
	}

	return f.checkValidators(value)
}

// CheckValue validates a value that arrived already typed, such as a number
// from a JSON payload. String values are routed through the field's parser
// when one is set, so a delimited string field behaves the same whether it
// arrives as a path parameter or inside the payload.
func (f Field) CheckValue(value any) (any, *FieldFault) {
	if str, ok := value.(string); ok && f.Parser != nil {
		return f.CheckString(str)
	}
	return f.checkValidators(value)
}

func (f Field) checkValidators(value any) (any, *FieldFault) {
	for _, validator := range f.Validators {
		if err := validator.Validate(value); err != nil {
			return nil, &FieldFault{Field: f.Name, Position: -1, Message: err.Error()}
		}
	}
	return value, nil
}
