package filter

import (
	"fmt"
	"regexp"
	"strings"
)

var attributeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// GeneratedQuery is the LEFT JOIN clauses and WHERE fragment GenerateSQL
// produces. Callers splice these into their own SELECT ... FROM item
// statement.
type GeneratedQuery struct {
	Joins []string
	Where string
}

// GenerateSQL resolves root into the extra-table-per-condition query
// fragments: one LEFT JOIN tag_value alias per Condition leaf (named
// ot_<attribute>_<k>, k counting prior occurrences of the same attribute,
// left-to-right pre-order), and a WHERE fragment that mirrors root's
// AND/OR shape over "<alias>.id IS NOT NULL" existence checks.
//
// resolve maps an attribute name to its TagType; GenerateSQL fails if an
// attribute is unknown or if its operator/value don't fit that TagType.
func GenerateSQL(root Node, resolve AttributeTypeResolver) (*GeneratedQuery, error) {
	return GenerateSQLWithSchema(root, resolve, "")
}

// GenerateSQLWithSchema is GenerateSQL with every tag_value/tag_definition
// reference qualified by schema (a tenant's cs_<code> content schema), for
// callers that don't rely on the connection's search_path to resolve
// per-tenant table names. schema == "" reproduces GenerateSQL's unqualified
// output.
func GenerateSQLWithSchema(root Node, resolve AttributeTypeResolver, schema string) (*GeneratedQuery, error) {
	conditions := ExtractConditions(root)

	prefix := ""
	if schema != "" {
		prefix = schema + "."
	}

	joins := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if !attributeNamePattern.MatchString(c.Attribute) {
			return nil, fmt.Errorf("filter: invalid attribute name %q", c.Attribute)
		}
		tagType, ok := resolve(c.Attribute)
		if !ok {
			return nil, fmt.Errorf("filter: unknown attribute %q", c.Attribute)
		}

		alias := conditionAlias(c)
		predicate, err := conditionPredicate(alias, tagType, c.Operator, c.Value)
		if err != nil {
			return nil, err
		}

		joins = append(joins, fmt.Sprintf(
			"LEFT JOIN %stag_value %s ON %s.item_id = item.id AND %s.tag_id = (SELECT id FROM %stag_definition WHERE name = %s) AND %s",
			prefix, alias, alias, alias, prefix, sqlQuote(c.Attribute), predicate,
		))
	}

	return &GeneratedQuery{Joins: joins, Where: whereClause(root)}, nil
}

func conditionAlias(c ExtractedCondition) string {
	return fmt.Sprintf("ot_%s_%d", c.Attribute, c.Index)
}

// whereClause mirrors BooleanFilter's AST walk but emits the real
// existence predicate for each leaf's LEFT JOIN alias instead of the
// descriptive ".value is not null" skeleton.
func whereClause(root Node) string {
	seen := make(map[string]int)

	var render func(n Node) string
	render = func(n Node) string {
		switch v := n.(type) {
		case *Condition:
			idx := seen[v.Attribute]
			seen[v.Attribute] = idx + 1
			return fmt.Sprintf("ot_%s_%d.id IS NOT NULL", v.Attribute, idx)
		case *Logical:
			return fmt.Sprintf("(%s %s %s)", render(v.Left), v.Operator, render(v.Right))
		default:
			return ""
		}
	}

	return render(root)
}

// Canonical re-renders an AST back into filter syntax, normalized: every
// operand of a Logical is parenthesized and whitespace is single-spaced.
// Used by tests asserting parse(canonical(ast)) == ast.
func Canonical(n Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

func writeCanonical(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Condition:
		b.WriteString("(")
		b.WriteString(v.Attribute)
		b.WriteString(" ")
		b.WriteString(string(v.Operator))
		b.WriteString(" ")
		if v.Value.Kind == ValueString {
			b.WriteString(`"`)
			b.WriteString(v.Value.Str)
			b.WriteString(`"`)
		} else {
			fmt.Fprintf(b, "%d", v.Value.Int)
		}
		b.WriteString(")")
	case *Logical:
		b.WriteString("(")
		writeCanonical(b, v.Left)
		b.WriteString(" ")
		b.WriteString(string(v.Operator))
		b.WriteString(" ")
		writeCanonical(b, v.Right)
		b.WriteString(")")
	}
}
