package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"pool water sunset", "sunset over the pool"},
		{"breakfast buffet", "rooftop bar at night"},
		{"", "lobby"},
		{"spa massage room", "spa massage room"},
	}

	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]),
			"score must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"pool", "pool"},
		{"pool water", "water pool"},
		{"a completely different sentence", "nothing shared here whatsoever"},
		{"", ""},
		{"!!! ???", "..."},
	}

	for _, p := range pairs {
		s := Score(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "pool water"))
	assert.Equal(t, 0.0, Score("pool water", ""))
	// Two empty strings have no similarity to claim.
	assert.Equal(t, 0.0, Score("", ""))
	// Punctuation-only text degrades to empty.
	assert.Equal(t, 0.0, Score("?!...", "pool"))
}

func TestScoreIdenticalText(t *testing.T) {
	assert.Equal(t, 1.0, Score("pool water", "pool water"))
	// Normalization: case and punctuation do not matter.
	assert.Equal(t, 1.0, Score("Pool, Water!", "pool water"))
}

func TestScoreSelfSimilarityUpperBound(t *testing.T) {
	a := "guests swimming in the infinity pool"
	unrelated := "chef plating dessert kitchen"

	assert.GreaterOrEqual(t, Score(a, a), Score(a, unrelated),
		"identical text must never score lower than unrelated text")
	assert.Equal(t, 0.0, Score(a, unrelated), "no shared tokens should score 0")
}

func TestScoreSharedVocabulary(t *testing.T) {
	partial := Score("pool water slide", "pool water bar")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)

	// More overlap scores higher.
	closer := Score("pool water slide", "pool water slide fun")
	assert.Greater(t, closer, partial)
}

func TestScoreDeterminism(t *testing.T) {
	a := "sunset cocktails on the rooftop terrace"
	b := "rooftop terrace with cocktails"

	first := Score(a, b)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Score(a, b))
	}
}

func TestScoreIgnoresStopwords(t *testing.T) {
	// Identical content words, different glue.
	assert.Equal(t, 1.0, Score("a view of the ocean", "the ocean view"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"pool", "water"}, Tokenize("The POOL, water!"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("the a an of"))
}
