package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestMatchEmptyCandidates(t *testing.T) {
	slots := []Slot{{Order: 0, Duration: 1.5, Description: "pool"}}

	result := Match(nil, slots)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, 0, result.Assignments[0].SlotOrder)
	assert.Nil(t, result.Assignments[0].CandidateID)
	assert.Equal(t, 0.0, result.Assignments[0].Confidence)
	assert.True(t, result.Statistics.FallbackMode)
}

func TestMatchEmptySlots(t *testing.T) {
	candidates := []Candidate{{ID: "v1", Description: "pool"}}

	result := Match(candidates, nil)

	assert.Empty(t, result.Assignments)
	assert.True(t, result.Statistics.FallbackMode)
}

func TestMatchNearIdenticalText(t *testing.T) {
	candidates := []Candidate{{ID: "v1", Description: "pool water"}}
	slots := []Slot{{Order: 0, Duration: 2.0, Description: "pool water"}}

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 1)
	require.NotNil(t, result.Assignments[0].CandidateID)
	assert.Equal(t, "v1", *result.Assignments[0].CandidateID)
	assert.GreaterOrEqual(t, result.Assignments[0].Confidence, 0.9)
	assert.Equal(t, QualityHigh, result.Assignments[0].Quality)
	assert.False(t, result.Statistics.FallbackMode)
}

// The greedy-global rule assigns the single highest score in the whole
// matrix first, even when that candidate was also another slot's best.
// With A-slot0=0.6, A-slot1=0.8, B-slot0=0.5, B-slot1=0.1 the optimizer
// must produce A->slot1 (0.8) and B->slot0 (0.5) by elimination.
func TestMatchGreedyGlobalTrace(t *testing.T) {
	// Descriptions engineered for exact Jaccard scores:
	//   A vs slot0: |{p,q,r,s,t} n {p,q,r}|   / |union| = 3/5 = 0.6
	//   A vs slot1: |{p,q,r,s,t} n {p,q,r,s}| / |union| = 4/5 = 0.8
	//   B vs slot0: 2 shared of 11                             = 0.1818
	candidates := []Candidate{
		{ID: "A", Description: "p q r s t"},
		{ID: "B", Description: "p q u v w x y z n0 n1"},
	}
	slots := []Slot{
		{Order: 0, Duration: 1.0, Description: "p q r"},
		{Order: 1, Duration: 1.0, Description: "p q r s"},
	}

	m := BuildMatrix(candidates, slots)
	require.InDelta(t, 0.6, m[0][0], 1e-9)
	require.InDelta(t, 0.8, m[0][1], 1e-9)
	require.InDelta(t, 0.1818, m[1][0], 1e-3)

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 2)
	// A takes slot1 first (global max 0.8), B gets slot0 by elimination.
	assert.Equal(t, str("B"), result.Assignments[0].CandidateID)
	assert.Equal(t, str("A"), result.Assignments[1].CandidateID)
	assert.InDelta(t, 0.8, result.Assignments[1].Confidence, 1e-9)
}

// Equal top scores break toward the lowest slot order, then the lowest
// candidate index.
func TestMatchTieBreak(t *testing.T) {
	// Both candidates score identically against both slots.
	candidates := []Candidate{
		{ID: "first", Description: "pool water"},
		{ID: "second", Description: "pool water"},
	}
	slots := []Slot{
		{Order: 3, Duration: 1.0, Description: "pool water"},
		{Order: 1, Duration: 1.0, Description: "pool water"},
	}

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 2)
	// Output sorted by slot order; slot 1 was decided first and took the
	// lowest candidate index.
	assert.Equal(t, 1, result.Assignments[0].SlotOrder)
	assert.Equal(t, str("first"), result.Assignments[0].CandidateID)
	assert.Equal(t, 3, result.Assignments[1].SlotOrder)
	assert.Equal(t, str("second"), result.Assignments[1].CandidateID)
}

func TestMatchMoreCandidatesThanSlots(t *testing.T) {
	candidates := []Candidate{
		{ID: "v1", Description: "lobby entrance"},
		{ID: "v2", Description: "pool water slide"},
		{ID: "v3", Description: "restaurant kitchen"},
	}
	slots := []Slot{{Order: 0, Duration: 3.0, Description: "pool water"}}

	result := Match(candidates, slots)

	// Output size equals slot count; unused candidates are absent.
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, str("v2"), result.Assignments[0].CandidateID)
}

func TestMatchNoReuseInvariant(t *testing.T) {
	candidates := []Candidate{
		{ID: "v1", Description: "pool water guests"},
		{ID: "v2", Description: "pool water"},
	}
	slots := []Slot{
		{Order: 0, Duration: 1.0, Description: "pool water guests"},
		{Order: 1, Duration: 1.0, Description: "pool water guests swimming"},
		{Order: 2, Duration: 1.0, Description: "pool"},
	}

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 3)
	seen := make(map[string]int)
	for _, a := range result.Assignments {
		if a.CandidateID != nil {
			seen[*a.CandidateID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "candidate %s assigned more than once", id)
	}
	// Two candidates, three slots: exactly one slot stays unfilled.
	assert.Len(t, seen, 2)
}

func TestMatchOutputOrderedBySlotOrder(t *testing.T) {
	candidates := []Candidate{
		{ID: "v1", Description: "pool"},
		{ID: "v2", Description: "bar"},
	}
	// Non-contiguous, unsorted orders.
	slots := []Slot{
		{Order: 7, Duration: 1.0, Description: "bar"},
		{Order: 2, Duration: 1.0, Description: "pool"},
		{Order: 5, Duration: 1.0, Description: "garden"},
	}

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 3)
	assert.Equal(t, 2, result.Assignments[0].SlotOrder)
	assert.Equal(t, 5, result.Assignments[1].SlotOrder)
	assert.Equal(t, 7, result.Assignments[2].SlotOrder)
}

func TestMatchUnviableScoresLeaveSlotUnfilled(t *testing.T) {
	candidates := []Candidate{{ID: "v1", Description: "kitchen chef"}}
	slots := []Slot{
		{Order: 0, Duration: 1.0, Description: "kitchen chef"},
		{Order: 1, Duration: 1.0, Description: "pool water"},
	}

	result := Match(candidates, slots)

	require.Len(t, result.Assignments, 2)
	assert.Equal(t, str("v1"), result.Assignments[0].CandidateID)
	// Nothing left that scores above zero for slot 1.
	assert.Nil(t, result.Assignments[1].CandidateID)
	assert.Equal(t, 0.0, result.Assignments[1].Confidence)
}

func TestMatchDeterminism(t *testing.T) {
	candidates := []Candidate{
		{ID: "v1", Description: "sunset rooftop cocktails"},
		{ID: "v2", Description: "pool water guests swimming"},
		{ID: "v3", Description: "breakfast buffet pastries"},
	}
	slots := []Slot{
		{Order: 0, Duration: 2.5, Description: "guests at the pool"},
		{Order: 1, Duration: 1.5, Description: "rooftop sunset"},
		{Order: 2, Duration: 3.0, Description: "morning breakfast"},
	}

	first, err := json.Marshal(Match(candidates, slots))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		next, err := json.Marshal(Match(candidates, slots))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next), "output must be byte-identical across runs")
	}
}

func TestMatchStatisticsAndBuckets(t *testing.T) {
	candidates := []Candidate{
		{ID: "v1", Description: "pool water guests"},
		{ID: "v2", Description: "garden wedding setup flowers decor extra"},
	}
	slots := []Slot{
		{Order: 0, Duration: 1.0, Description: "pool water guests"},
		{Order: 1, Duration: 1.0, Description: "garden wedding"},
	}

	result := Match(candidates, slots)

	stats := result.Statistics
	assert.Equal(t, 1, stats.HighQualityCount)   // exact match = 1.0
	assert.Equal(t, 1, stats.LowQualityCount)    // 2/6 overlap = 0.333
	assert.Equal(t, 0, stats.MediumQualityCount)
	assert.InDelta(t, 1.0, stats.MaxScore, 1e-9)
	assert.InDelta(t, 1.0/3.0, stats.MinScore, 1e-9)
	assert.InDelta(t, (1.0+1.0/3.0)/2, stats.AverageScore, 1e-9)
	assert.False(t, stats.FallbackMode)
}

func TestMatchFallbackWhenMostSlotsUnfilled(t *testing.T) {
	candidates := []Candidate{{ID: "v1", Description: "pool"}}
	slots := []Slot{
		{Order: 0, Duration: 1.0, Description: "pool"},
		{Order: 1, Duration: 1.0, Description: "kitchen"},
		{Order: 2, Duration: 1.0, Description: "garden"},
	}

	result := Match(candidates, slots)

	// One filled, two empty: more than half the timeline has no
	// confidence, so the run reports fallback.
	assert.True(t, result.Statistics.FallbackMode)
}

func TestValidateInput(t *testing.T) {
	ok := []Slot{{Order: 0, Duration: 1.0}, {Order: 2, Duration: 0.5}}
	assert.NoError(t, ValidateInput(nil, ok))

	dup := []Slot{{Order: 1, Duration: 1.0}, {Order: 1, Duration: 2.0}}
	assert.Error(t, ValidateInput(nil, dup))

	negative := []Slot{{Order: 0, Duration: -1.0}}
	assert.Error(t, ValidateInput(nil, negative))
}

func TestBuildMatrixDimensions(t *testing.T) {
	candidates := []Candidate{{ID: "v1", Description: "a b"}, {ID: "v2", Description: "c"}}
	slots := []Slot{{Order: 0, Description: "a b"}}

	m := BuildMatrix(candidates, slots)
	require.Len(t, m, 2)
	require.Len(t, m[0], 1)

	assert.Empty(t, BuildMatrix(nil, slots))
	empty := BuildMatrix(candidates, nil)
	require.Len(t, empty, 2)
	assert.Empty(t, empty[0])
}
