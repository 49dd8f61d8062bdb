package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// TagType is one of the seven tag value kinds a TagDefinition can declare.
// Document Server's tag_value table has one nullable value column per kind,
// except that Text and Link share value_string; GenerateSQL picks the
// column a condition's attribute predicate targets from the attribute's
// declared TagType.
type TagType int

const (
	TagText TagType = iota
	TagLink
	TagBool
	TagInt
	TagDouble
	TagDate
	TagDateTime
)

func (t TagType) String() string {
	switch t {
	case TagText:
		return "Text"
	case TagLink:
		return "Link"
	case TagBool:
		return "Bool"
	case TagInt:
		return "Int"
	case TagDouble:
		return "Double"
	case TagDate:
		return "Date"
	case TagDateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}

// AttributeTypeResolver maps an attribute (tag) name to its TagType. The
// Document Server search usecase implements this against
// cs_<tenant>.tag_definition.
type AttributeTypeResolver func(attribute string) (TagType, bool)

func valueColumn(t TagType) string {
	switch t {
	case TagText, TagLink:
		return "value_string"
	case TagBool:
		return "value_boolean"
	case TagInt:
		return "value_integer"
	case TagDouble:
		return "value_double"
	case TagDate:
		return "value_date"
	case TagDateTime:
		return "value_datetime"
	default:
		return ""
	}
}

// conditionPredicate renders the extra predicate ANDed into a condition's
// LEFT JOIN ON clause, e.g. "ot_attr_0.value_integer = 42" or
// "unaccent_lower(ot_attr_0.value_string) LIKE unaccent_lower('den%')".
func conditionPredicate(alias string, t TagType, op Operator, val Value) (string, error) {
	col := valueColumn(t)
	if col == "" {
		return "", fmt.Errorf("filter: unsupported tag type %s", t)
	}
	qualified := alias + "." + col

	switch t {
	case TagText, TagLink:
		str, err := stringLiteral(val)
		if err != nil {
			return "", err
		}
		switch op {
		case OpEq:
			return fmt.Sprintf("%s = %s", qualified, sqlQuote(str)), nil
		case OpNeq:
			return fmt.Sprintf("%s != %s", qualified, sqlQuote(str)), nil
		case OpLike:
			return fmt.Sprintf("unaccent_lower(%s) LIKE unaccent_lower(%s)", qualified, sqlQuote(str)), nil
		default:
			return "", fmt.Errorf("filter: operator %s not supported for %s", op, t)
		}

	case TagBool:
		b, err := boolLiteral(val)
		if err != nil {
			return "", err
		}
		switch op {
		case OpEq:
			return fmt.Sprintf("%s = %t", qualified, b), nil
		case OpNeq:
			return fmt.Sprintf("%s != %t", qualified, b), nil
		default:
			return "", fmt.Errorf("filter: operator %s not supported for Bool", op)
		}

	case TagInt:
		if val.Kind != ValueInt {
			return "", fmt.Errorf("filter: Int attribute requires an integer literal")
		}
		sqlOp, err := comparisonSQL(op)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %d", qualified, sqlOp, val.Int), nil

	case TagDouble:
		f, err := doubleLiteral(val)
		if err != nil {
			return "", err
		}
		sqlOp, err := comparisonSQL(op)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", qualified, sqlOp, strconv.FormatFloat(f, 'f', -1, 64)), nil

	case TagDate, TagDateTime:
		str, err := stringLiteral(val)
		if err != nil {
			return "", err
		}
		sqlOp, err := comparisonSQL(op)
		if err != nil {
			return "", err
		}
		cast := "date"
		if t == TagDateTime {
			cast = "timestamptz"
		}
		return fmt.Sprintf("%s %s %s::%s", qualified, sqlOp, sqlQuote(str), cast), nil
	}

	return "", fmt.Errorf("filter: unsupported tag type %s", t)
}

func comparisonSQL(op Operator) (string, error) {
	switch op {
	case OpEq:
		return "=", nil
	case OpNeq:
		return "!=", nil
	case OpGt:
		return ">", nil
	case OpGte:
		return ">=", nil
	case OpLt:
		return "<", nil
	case OpLte:
		return "<=", nil
	default:
		return "", fmt.Errorf("filter: operator %s is not a comparison", op)
	}
}

func stringLiteral(val Value) (string, error) {
	if val.Kind != ValueString {
		return "", fmt.Errorf("filter: attribute requires a string literal")
	}
	return val.Str, nil
}

func boolLiteral(val Value) (bool, error) {
	switch val.Kind {
	case ValueInt:
		return val.Int != 0, nil
	case ValueString:
		switch strings.ToLower(val.Str) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("filter: Bool attribute requires 0/1 or \"true\"/\"false\"")
}

func doubleLiteral(val Value) (float64, error) {
	switch val.Kind {
	case ValueInt:
		return float64(val.Int), nil
	case ValueString:
		f, err := strconv.ParseFloat(val.Str, 64)
		if err != nil {
			return 0, fmt.Errorf("filter: malformed double literal %q", val.Str)
		}
		return f, nil
	}
	return 0, fmt.Errorf("filter: Double attribute requires a numeric literal")
}

// sqlQuote escapes a Go string as a single-quoted SQL literal.
func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
