package valdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kwTable is a minimal keyword lookup for tests.
type kwTable map[string]int

func (kw kwTable) KeywordKey(name string) (int, bool) {
	id, ok := kw[name]
	return id, ok
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(kwTable{
		"auto": 1, "none": 2, "cover": 3, "contain": 4,
		"solid": 5, "left": 6, "right": 7, "center": 8,
	})
	require.NoError(t, reg.RegisterBuiltinTypes())
	return reg
}

func TestCompileAlternatives(t *testing.T) {
	reg := testRegistry(t)
	tree, err := reg.Compile("auto | <length> | <percentage>")
	require.NoError(t, err)
	require.Equal(t, SignSingleBar, tree.Sign)
	require.Len(t, tree.Children, 3)
	assert.Equal(t, SignKeyword, tree.Children[0].Sign)
	assert.Equal(t, "auto", tree.Children[0].Name)
	assert.Equal(t, SignType, tree.Children[1].Sign)
	assert.Equal(t, "length", tree.Children[1].Type.Name)
}

func TestCompileUnknownKeywordFails(t *testing.T) {
	reg := testRegistry(t)
	_, err := reg.Compile("auto | nonsense")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompileUnknownTypeFails(t *testing.T) {
	reg := testRegistry(t)
	_, err := reg.Compile("auto | <nonsense>")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompilePrecedence(t *testing.T) {
	reg := testRegistry(t)
	// juxtaposition binds tighter than &&, which binds tighter than ||,
	// which binds tighter than |
	tree, err := reg.Compile("auto none && cover || solid | left")
	require.NoError(t, err)
	require.Equal(t, SignSingleBar, tree.Sign)
	require.Len(t, tree.Children, 2)
	or := tree.Children[0]
	require.Equal(t, SignDoubleBar, or.Sign)
	and := or.Children[0]
	require.Equal(t, SignDoubleAmpersand, and.Sign)
	juxt := and.Children[0]
	require.Equal(t, SignJuxtaposition, juxt.Sign)
	assert.Equal(t, "auto", juxt.Children[0].Name)
	assert.Equal(t, "none", juxt.Children[1].Name)
}

func TestCompileBracketsOverridePrecedence(t *testing.T) {
	reg := testRegistry(t)
	tree, err := reg.Compile("[ auto | none ] cover")
	require.NoError(t, err)
	require.Equal(t, SignJuxtaposition, tree.Sign)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, SignBrackets, tree.Children[0].Sign)
	assert.Equal(t, SignSingleBar, tree.Children[0].Children[0].Sign)
}

func TestCompileMultipliers(t *testing.T) {
	reg := testRegistry(t)
	cases := []struct {
		input    string
		min, max int
	}{
		{"<length>?", 0, 1},
		{"<length>*", 0, RepeatUnbounded},
		{"<length>+", 1, RepeatUnbounded},
		{"<length>{2,4}", 2, 4},
		{"<length>{3}", 3, 3},
		{"<length>{2,}", 2, RepeatUnbounded},
	}
	for _, c := range cases {
		tree, err := reg.Compile(c.input)
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.min, tree.Min, "input %q", c.input)
		assert.Equal(t, c.max, tree.Max, "input %q", c.input)
	}
}

func TestCompileMultiplierBindsToPrecedingTerm(t *testing.T) {
	reg := testRegistry(t)
	tree, err := reg.Compile("<length>{2,4} && <color>?")
	require.NoError(t, err)
	require.Equal(t, SignDoubleAmpersand, tree.Sign)
	assert.Equal(t, 2, tree.Children[0].Min)
	assert.Equal(t, 4, tree.Children[0].Max)
	assert.Equal(t, 0, tree.Children[1].Min)
	assert.Equal(t, 1, tree.Children[1].Max)
}

func TestCompileUnbalancedBracketFails(t *testing.T) {
	reg := testRegistry(t)
	for _, input := range []string{"[ auto", "auto ]", "[ ]"} {
		_, err := reg.Compile(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestCompileAliasExpansion(t *testing.T) {
	reg := testRegistry(t)
	require.NoError(t, reg.RegisterAlias("size", "auto | <length>"))
	tree, err := reg.Compile("none | <size>")
	require.NoError(t, err)
	require.Equal(t, SignSingleBar, tree.Sign)
	expanded := tree.Children[1]
	require.Equal(t, SignSingleBar, expanded.Sign)
	assert.Equal(t, "auto", expanded.Children[0].Name)

	// aliases also resolve as bare identifiers
	tree2, err := reg.Compile("size")
	require.NoError(t, err)
	assert.Equal(t, SignSingleBar, tree2.Sign)
}

func TestAliasMustNotShadow(t *testing.T) {
	reg := testRegistry(t)
	assert.ErrorIs(t, reg.RegisterAlias("auto", "none"), ErrDuplicate)
	assert.ErrorIs(t, reg.RegisterAlias("length", "none"), ErrDuplicate)
	require.NoError(t, reg.RegisterAlias("size", "auto"))
	assert.ErrorIs(t, reg.RegisterAlias("size", "none"), ErrDuplicate)
}

func TestRegisterTypeDuplicate(t *testing.T) {
	reg := testRegistry(t)
	_, err := reg.RegisterType("length", ParseLength)
	assert.ErrorIs(t, err, ErrDuplicate)
}
