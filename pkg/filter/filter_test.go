package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexSimpleCondition(t *testing.T) {
	toks, err := Lex(`(attribut1 > 10)`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, tokOpen, toks[0].kind)
	assert.Equal(t, tokAttribute, toks[1].kind)
	assert.Equal(t, "attribut1", toks[1].text)
	assert.Equal(t, tokOperator, toks[2].kind)
	assert.Equal(t, string(OpGt), toks[2].text)
	assert.Equal(t, tokValue, toks[3].kind)
	assert.Equal(t, int64(10), toks[3].value.Int)
	assert.Equal(t, tokClose, toks[4].kind)
}

func TestLexOperatorAliasesNormalize(t *testing.T) {
	toks, err := Lex(`(a => 1)`)
	require.NoError(t, err)
	assert.Equal(t, string(OpGte), toks[2].text)

	toks, err = Lex(`(a =< 1)`)
	require.NoError(t, err)
	assert.Equal(t, string(OpLte), toks[2].text)
}

func TestLexMalformedNumberIsTypedErrorNotPanic(t *testing.T) {
	_, err := Lex(`(attribut1 > 1a0)`)
	require.Error(t, err)
	var syntaxErr *ErrSyntax
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestLexQuotedStringNonASCII(t *testing.T) {
	toks, err := Lex(`(attribut2 == "你好")`)
	require.NoError(t, err)
	assert.Equal(t, "你好", toks[3].value.Str)
}

func TestParseTwoLevelNesting(t *testing.T) {
	root, err := Parse(`((attribut1 > 10) AND (attribut2 == "val"))`)
	require.NoError(t, err)

	logical, ok := root.(*Logical)
	require.True(t, ok)
	assert.Equal(t, LogicalAnd, logical.Operator)

	left, ok := logical.Left.(*Condition)
	require.True(t, ok)
	assert.Equal(t, "attribut1", left.Attribute)

	right, ok := logical.Right.(*Condition)
	require.True(t, ok)
	assert.Equal(t, "attribut2", right.Attribute)
}

func TestParseRejectsUnparenthesizedTripleChain(t *testing.T) {
	_, err := Parse(`(a == 1) AND (b == 2) AND (c == 3)`)
	require.Error(t, err)
}

func TestParseAcceptsNestedChain(t *testing.T) {
	_, err := Parse(`((a == 1) AND (b == 2)) AND (c == 3)`)
	require.NoError(t, err)
}

// scenario 4 of the spec's testable properties.
func TestScenario4ExtractConditionsAndBooleanFilter(t *testing.T) {
	root, err := Parse(`((attribut1 > 10) AND (attribut2 == "你好")) OR (attribut3 LIKE "den%")`)
	require.NoError(t, err)

	conditions := ExtractConditions(root)
	require.Len(t, conditions, 3)

	assert.Equal(t, "attribut1", conditions[0].Attribute)
	assert.Equal(t, 0, conditions[0].Index)
	assert.Equal(t, "attribut2", conditions[1].Attribute)
	assert.Equal(t, 0, conditions[1].Index)
	assert.Equal(t, "attribut3", conditions[2].Attribute)
	assert.Equal(t, 0, conditions[2].Index)

	want := `((ot_attribut1_0.value is not null AND ot_attribut2_0.value is not null) OR ot_attribut3_0.value is not null)`
	assert.Equal(t, want, BooleanFilter(root))
}

func TestExtractConditionsRepeatedAttributeIndices(t *testing.T) {
	root, err := Parse(`((attribut1 > 10) AND (attribut1 < 20))`)
	require.NoError(t, err)

	conditions := ExtractConditions(root)
	require.Len(t, conditions, 2)
	assert.Equal(t, 0, conditions[0].Index)
	assert.Equal(t, 1, conditions[1].Index)
}

func TestCanonicalRoundTrip(t *testing.T) {
	root, err := Parse(`((attribut1 > 10) AND (attribut2 == "你好")) OR (attribut3 LIKE "den%")`)
	require.NoError(t, err)

	reparsed, err := Parse(Canonical(root))
	require.NoError(t, err)

	assert.Equal(t, BooleanFilter(root), BooleanFilter(reparsed))
}

func TestGenerateSQLSmoke(t *testing.T) {
	root, err := Parse(`((attribut1 > 10) AND (attribut2 == "你好")) OR (attribut3 LIKE "den%")`)
	require.NoError(t, err)

	resolve := func(attr string) (TagType, bool) {
		switch attr {
		case "attribut1":
			return TagInt, true
		case "attribut2", "attribut3":
			return TagText, true
		default:
			return 0, false
		}
	}

	query, err := GenerateSQL(root, resolve)
	require.NoError(t, err)
	require.Len(t, query.Joins, 3)

	assert.True(t, strings.Contains(query.Joins[0], "ot_attribut1_0.value_integer > 10"))
	assert.True(t, strings.Contains(query.Joins[1], "ot_attribut2_0.value_string = '你好'"))
	assert.True(t, strings.Contains(query.Joins[2], "unaccent_lower(ot_attribut3_0.value_string) LIKE unaccent_lower('den%')"))

	want := `((ot_attribut1_0.id IS NOT NULL AND ot_attribut2_0.id IS NOT NULL) OR ot_attribut3_0.id IS NOT NULL)`
	assert.Equal(t, want, query.Where)
}

func TestGenerateSQLUnknownAttributeFails(t *testing.T) {
	root, err := Parse(`(mystery == "x")`)
	require.NoError(t, err)

	_, err = GenerateSQL(root, func(string) (TagType, bool) { return 0, false })
	assert.Error(t, err)
}
