package domain

import "regexp"

// FieldType is the semantic type inferred for an indexed value.
type FieldType string

const (
	FieldTypeEmpty   FieldType = "empty"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeNumber  FieldType = "number"
	FieldTypeDate    FieldType = "date"
	FieldTypeEmail   FieldType = "email"
	FieldTypePhone   FieldType = "phone"
	FieldTypeText    FieldType = "text"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{7,}$`)
)

// stringClassifiers is the ordered rule table for string values.
// The first matching rule wins; unmatched strings are plain text.
var stringClassifiers = []struct {
	match func(string) bool
	ft    FieldType
}{
	{datePattern.MatchString, FieldTypeDate},
	{emailPattern.MatchString, FieldTypeEmail},
	{phonePattern.MatchString, FieldTypePhone},
}

// ClassifyValue infers the semantic type of a value. It never fails;
// unrecognized shapes fall back to text or object.
func ClassifyValue(v Value) FieldType {
	switch v.Kind() {
	case KindNull:
		return FieldTypeEmpty
	case KindBool:
		return FieldTypeBoolean
	case KindNumber:
		return FieldTypeNumber
	case KindString:
		for _, rule := range stringClassifiers {
			if rule.match(v.StringVal()) {
				return rule.ft
			}
		}
		return FieldTypeText
	case KindArray:
		return FieldTypeArray
	case KindObject:
		return FieldTypeObject
	default:
		return FieldTypeText
	}
}
