package filter

import "fmt"

// BooleanFilter renders root as a boolean existence skeleton: every
// Condition leaf becomes "ot_<attribute>_<index>.value is not null" (named
// after the alias of that leaf's LEFT JOIN, see GenerateSQL), and every
// Logical node is parenthesized. GenerateSQL does not call it; its WHERE
// clause has the same shape but checks "<alias>.id IS NOT NULL".
// Per-attribute indices are assigned by the same left-to-right pre-order
// walk as ExtractConditions, so alias names always agree between the two.
func BooleanFilter(root Node) string {
	seen := make(map[string]int)

	var render func(n Node) string
	render = func(n Node) string {
		switch v := n.(type) {
		case *Condition:
			idx := seen[v.Attribute]
			seen[v.Attribute] = idx + 1
			return fmt.Sprintf("ot_%s_%d.value is not null", v.Attribute, idx)
		case *Logical:
			return fmt.Sprintf("(%s %s %s)", render(v.Left), v.Operator, render(v.Right))
		default:
			return ""
		}
	}

	return render(root)
}
