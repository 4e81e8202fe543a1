package validaros

import (
	"reflect"
	"testing"
)

func TestFieldCheckString(t *testing.T) {
	tupleParser, err := NewTupleParser([]ValueParser{IntParser, IntParser}, StringParser, Comma)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		field         Field
		raw           string
		expected      any
		faultPosition int
		shouldFault   bool
	}{
		{
			name:     "no parser keeps the string",
			field:    Field{Name: "q"},
			raw:      "hello",
			expected: "hello",
		},
		{
			name:     "scalar parser",
			field:    Field{Name: "id", Parser: IntParser},
			raw:      "42",
			expected: int64(42),
		},
		{
			name:     "delimited parser",
			field:    Field{Name: "coords", Parser: tupleParser},
			raw:      "3,4,extra",
			expected: []any{int64(3), int64(4), "extra"},
		},
		{
			name:          "scalar parse failure",
			field:         Field{Name: "id", Parser: IntParser},
			raw:           "nope",
			shouldFault:   true,
			faultPosition: -1,
		},
		{
			name:          "delimited parse failure carries the position",
			field:         Field{Name: "coords", Parser: tupleParser},
			raw:           "3,nope",
			shouldFault:   true,
			faultPosition: 1,
		},
		{
			name: "validator failure",
			field: Field{
				Name:       "sort",
				Validators: []Validator{OneOf("asc", "desc")},
			},
			raw:           "sideways",
			shouldFault:   true,
			faultPosition: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, fault := tt.field.CheckString(tt.raw)
			if tt.shouldFault {
				if fault == nil {
					t.Fatalf("expected a fault for %q, got value %v", tt.raw, value)
				}
				if fault.Field != tt.field.Name {
					t.Errorf("expected fault for field %q, got %q", tt.field.Name, fault.Field)
				}
				if fault.Position != tt.faultPosition {
					t.Errorf("expected fault position %d, got %d", tt.faultPosition, fault.Position)
				}
			} else {
				if fault != nil {
					t.Fatalf("unexpected fault: %v", fault)
				}
				if !reflect.DeepEqual(value, tt.expected) {
					t.Errorf("expected %v, got %v", tt.expected, value)
				}
			}
		})
	}
}

func TestFieldCheckValue(t *testing.T) {
	t.Run("typed value skips the parser", func(t *testing.T) {
		field := Field{Name: "count", Parser: IntParser, Validators: []Validator{Range(0, 100)}}

		value, fault := field.CheckValue(float64(7))
		if fault != nil {
			t.Fatalf("unexpected fault: %v", fault)
		}
		if value != float64(7) {
			t.Errorf("expected 7, got %v", value)
		}
	})

	t.Run("string value goes through the parser", func(t *testing.T) {
		field := Field{Name: "count", Parser: IntParser}

		value, fault := field.CheckValue("7")
		if fault != nil {
			t.Fatalf("unexpected fault: %v", fault)
		}
		if value != int64(7) {
			t.Errorf("expected int64(7), got %v (%T)", value, value)
		}
	})

	t.Run("validators run on typed values", func(t *testing.T) {
		field := Field{Name: "count", Validators: []Validator{Range(0, 5)}}

		if _, fault := field.CheckValue(float64(9)); fault == nil {
			t.Error("expected a fault for an out of range value")
		}
	})
}

func TestSchemaFields(t *testing.T) {
	fields := []Field{
		{Name: "id", Source: FromParams},
		{Name: "tags", Source: FromData},
	}

	schema := NewSchema(fields...)

	got := schema.Fields()
	if len(got) != 2 || got[0].Name != "id" || got[1].Name != "tags" {
		t.Errorf("unexpected fields: %v", got)
	}

	// Mutating the input slice must not affect the schema.
	fields[0].Name = "changed"
	if schema.Fields()[0].Name != "id" {
		t.Error("expected the schema to copy its fields at construction")
	}
}
