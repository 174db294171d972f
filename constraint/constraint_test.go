package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIRI = "https://example.org/ontology#hasName"

func intPtr(n int) *int { return &n }

// operands is a spread of same-property constraints used to exercise the
// lattice laws pairwise and triple-wise.
func operands() []PropertyConstraint {
	return []PropertyConstraint{
		Top(testIRI, "has name"),
		Bottom(testIRI, "has name"),
		{
			PropertyIRI:    testIRI,
			Ranges:         []string{"http://www.w3.org/2001/XMLSchema#string"},
			MinCardinality: 1,
			Source:         SourceDomain,
		},
		{
			PropertyIRI:    testIRI,
			Ranges:         []string{"http://www.w3.org/2001/XMLSchema#string", "https://example.org/ontology#Name"},
			MaxCardinality: intPtr(3),
			Source:         SourceRestriction,
		},
		{
			PropertyIRI:   testIRI,
			AllowedValues: []string{"Alice", "Bob"},
			Source:        SourceRestriction,
		},
		{
			// Ranges disjoint from every other range-bearing operand, so the
			// law tables cover the collapse-to-Bottom path.
			PropertyIRI:    testIRI,
			Ranges:         []string{"https://example.org/ontology#Identifier"},
			MinCardinality: 1,
			Source:         SourceDomain,
		},
		{
			PropertyIRI:    testIRI,
			AllowedValues:  []string{"Bob", "Carol"},
			MinCardinality: 1,
			MaxCardinality: intPtr(1),
			Source:         SourceRestriction,
			IsSymmetric:    true,
		},
	}
}

func mustMeet(t *testing.T, a, b PropertyConstraint) PropertyConstraint {
	t.Helper()
	met, err := a.Meet(b)
	require.NoError(t, err)
	return met
}

func TestMeet_Commutative(t *testing.T) {
	ops := operands()
	for i, a := range ops {
		for j, b := range ops {
			ab := mustMeet(t, a, b)
			ba := mustMeet(t, b, a)
			assert.True(t, ab.Equal(ba), "meet(%d,%d) != meet(%d,%d): %+v vs %+v", i, j, j, i, ab, ba)
		}
	}
}

func TestMeet_Associative(t *testing.T) {
	ops := operands()
	for _, a := range ops {
		for _, b := range ops {
			for _, c := range ops {
				left := mustMeet(t, mustMeet(t, a, b), c)
				right := mustMeet(t, a, mustMeet(t, b, c))
				assert.True(t, left.Equal(right), "associativity failed: %+v vs %+v", left, right)
			}
		}
	}
}

func TestMeet_Idempotent(t *testing.T) {
	for i, a := range operands() {
		met := mustMeet(t, a, a)
		assert.True(t, met.Equal(a), "meet(a,a) != a for operand %d: %+v", i, met)
	}
}

func TestMeet_TopIsIdentity(t *testing.T) {
	top := Top(testIRI, "")
	for i, a := range operands() {
		met := mustMeet(t, a, top)
		assert.True(t, met.Equal(a), "meet(a, Top) != a for operand %d: %+v", i, met)
	}
}

func TestMeet_BottomAbsorbs(t *testing.T) {
	bottom := Bottom(testIRI, "")
	for i, a := range operands() {
		met := mustMeet(t, a, bottom)
		assert.True(t, met.IsBottom(), "meet(a, Bottom) not Bottom for operand %d: %+v", i, met)
	}
}

func TestMeet_DifferentPropertyIRIs(t *testing.T) {
	a := Top("https://example.org/ontology#hasName", "")
	b := Top("https://example.org/ontology#hasAge", "")

	_, err := a.Meet(b)
	require.Error(t, err)
	var meetErr *MeetError
	require.ErrorAs(t, err, &meetErr)
	assert.Equal(t, "https://example.org/ontology#hasName", meetErr.Left)
	assert.Equal(t, "https://example.org/ontology#hasAge", meetErr.Right)
}

func TestMeet_RangeIntersection(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A", "B"}}
	b := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"B", "C"}}

	met := mustMeet(t, a, b)
	assert.Equal(t, []string{"B"}, met.Ranges)
	assert.Equal(t, SourceRefined, met.Source)
}

func TestMeet_EmptyRangePassesOtherSideThrough(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI}
	b := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A"}}

	met := mustMeet(t, a, b)
	assert.Equal(t, []string{"A"}, met.Ranges)
}

func TestMeet_CardinalityBounds(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, MinCardinality: 1, MaxCardinality: intPtr(5)}
	b := PropertyConstraint{PropertyIRI: testIRI, MinCardinality: 2, MaxCardinality: intPtr(3)}

	met := mustMeet(t, a, b)
	assert.Equal(t, 2, met.MinCardinality)
	require.NotNil(t, met.MaxCardinality)
	assert.Equal(t, 3, *met.MaxCardinality)
}

func TestMeet_ContradictoryCardinalityCollapsesToBottom(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, MinCardinality: 4}
	b := PropertyConstraint{PropertyIRI: testIRI, MaxCardinality: intPtr(2)}

	met := mustMeet(t, a, b)
	assert.True(t, met.IsBottom())
}

func TestMeet_DisjointRangesCollapseToBottom(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A"}, MinCardinality: 1}
	b := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"B"}, MinCardinality: 1}

	met := mustMeet(t, a, b)
	assert.True(t, met.IsBottom())
}

func TestMeet_DisjointRangesAssociateAcrossGrouping(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A"}, MinCardinality: 1}
	b := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"B"}, MinCardinality: 1}
	c := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"C"}, MinCardinality: 1}

	left := mustMeet(t, mustMeet(t, a, b), c)
	right := mustMeet(t, a, mustMeet(t, b, c))
	assert.True(t, left.IsBottom())
	assert.True(t, right.IsBottom())
	assert.True(t, left.Equal(right))
}

func TestMeet_DisjointAllowedValuesCollapseToBottom(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, AllowedValues: []string{"x"}}
	b := PropertyConstraint{PropertyIRI: testIRI, AllowedValues: []string{"y"}}

	met := mustMeet(t, a, b)
	assert.True(t, met.IsBottom())
}

func TestRefines(t *testing.T) {
	top := Top(testIRI, "")
	bottom := Bottom(testIRI, "")
	strict := PropertyConstraint{
		PropertyIRI:    testIRI,
		Ranges:         []string{"A"},
		MinCardinality: 2,
		MaxCardinality: intPtr(2),
	}
	loose := PropertyConstraint{
		PropertyIRI:    testIRI,
		Ranges:         []string{"A", "B"},
		MinCardinality: 1,
	}

	tests := []struct {
		name string
		a, b PropertyConstraint
		want bool
	}{
		{"anything refines top", strict, top, true},
		{"top refines top", top, top, true},
		{"top does not refine non-top", top, loose, false},
		{"bottom refines bottom", bottom, bottom, true},
		{"bottom does not refine non-bottom", bottom, strict, false},
		{"non-bottom does not refine bottom", strict, bottom, false},
		{"tighter refines looser", strict, loose, true},
		{"looser does not refine tighter", loose, strict, false},
		{"bounded max refines unbounded", strict, loose, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Refines(tt.b))
		})
	}
}

func TestRefines_RangeOutsideSuperset(t *testing.T) {
	a := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"C"}, MinCardinality: 1}
	b := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A", "B"}, MinCardinality: 1}

	assert.False(t, a.Refines(b))
}

func TestTopBottomClassification(t *testing.T) {
	assert.True(t, Top(testIRI, "").IsTop())
	assert.False(t, Top(testIRI, "").IsBottom())
	assert.True(t, Bottom(testIRI, "").IsBottom())
	assert.False(t, Bottom(testIRI, "").IsTop())

	withRange := PropertyConstraint{PropertyIRI: testIRI, Ranges: []string{"A"}}
	assert.False(t, withRange.IsTop())
	assert.False(t, withRange.IsBottom())
}

func TestClone_IsDeep(t *testing.T) {
	original := PropertyConstraint{
		PropertyIRI:    testIRI,
		Ranges:         []string{"A"},
		AllowedValues:  []string{"x"},
		MaxCardinality: intPtr(2),
	}
	clone := original.Clone()
	clone.Ranges[0] = "mutated"
	clone.AllowedValues[0] = "mutated"
	*clone.MaxCardinality = 99

	assert.Equal(t, []string{"A"}, original.Ranges)
	assert.Equal(t, []string{"x"}, original.AllowedValues)
	assert.Equal(t, 2, *original.MaxCardinality)
}

func TestSource_Strings(t *testing.T) {
	assert.Equal(t, "domain", SourceDomain.String())
	assert.Equal(t, "restriction", SourceRestriction.String())
	assert.Equal(t, "refined", SourceRefined.String())

	parsed, err := ParseSource("restriction")
	require.NoError(t, err)
	assert.Equal(t, SourceRestriction, parsed)

	_, err = ParseSource("bogus")
	assert.Error(t, err)
}
