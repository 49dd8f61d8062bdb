package filter

// ExtractedCondition is one leaf Condition plus the zero-based index of its
// occurrence among conditions sharing the same Attribute, assigned by a
// deterministic left-to-right pre-order walk of the AST. This index is
// what names the leaf's LEFT JOIN alias: ot_<attribute>_<index>.
type ExtractedCondition struct {
	Condition
	Index int
}

// ExtractConditions walks root pre-order and returns every Condition leaf
// with its per-attribute occurrence index.
func ExtractConditions(root Node) []ExtractedCondition {
	seen := make(map[string]int)
	var out []ExtractedCondition

	var walk func(n Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Condition:
			idx := seen[v.Attribute]
			seen[v.Attribute] = idx + 1
			out = append(out, ExtractedCondition{Condition: *v, Index: idx})
		case *Logical:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(root)
	return out
}
