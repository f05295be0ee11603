package matching

import (
	"fmt"
	"sort"
)

// Quality buckets for assignment confidence. Reporting only: a low
// confidence assignment is still emitted, the caller decides whether to
// surface a warning.
const (
	QualityHigh   = "high"
	QualityMedium = "medium"
	QualityLow    = "low"

	highThreshold   = 0.7
	mediumThreshold = 0.4
)

// Candidate is one item from a property's content library: an uploaded
// video with its externally produced description.
type Candidate struct {
	ID          string
	Description string
}

// Slot is one ordered position in a video template. Duration is passed
// through to the output untouched; it plays no part in scoring.
type Slot struct {
	Order       int
	Duration    float64
	Description string
}

// Assignment pairs a slot with at most one candidate. A nil CandidateID
// means the slot stays unfilled; its confidence is then always 0.0.
type Assignment struct {
	SlotOrder   int     `json:"slot_order"`
	CandidateID *string `json:"content_item_id"`
	Confidence  float64 `json:"confidence"`
	Quality     string  `json:"quality,omitempty"`
}

// Statistics summarizes one matching run. Average, min and max are taken
// over filled assignments only; with nothing filled they are all zero.
type Statistics struct {
	AverageScore       float64 `json:"average_score"`
	MinScore           float64 `json:"min_score"`
	MaxScore           float64 `json:"max_score"`
	HighQualityCount   int     `json:"high_quality_count"`
	MediumQualityCount int     `json:"medium_quality_count"`
	LowQualityCount    int     `json:"low_quality_count"`
	FallbackMode       bool    `json:"fallback_mode"`
}

// Result is the output of one matching run: one assignment per slot,
// sorted by slot order, plus run-level statistics.
type Result struct {
	Assignments []Assignment `json:"assignments"`
	Statistics  Statistics   `json:"statistics"`
}

// Options tunes a matching run. The zero value is the production default.
type Options struct {
	// MinViableScore is the exclusive lower bound for an assignable pair.
	// With the default of 0.0, zero-similarity pairs are never assigned
	// and the slot stays unfilled instead of getting a meaningless match.
	MinViableScore float64
}

// ValidateInput checks the contract the matcher assumes: unique slot
// orders and non-negative durations. Callers validate before matching;
// Match itself never fails on validated input.
func ValidateInput(candidates []Candidate, slots []Slot) error {
	seen := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		if s.Duration < 0 {
			return fmt.Errorf("slot %d has negative duration %.3f", s.Order, s.Duration)
		}
		if _, dup := seen[s.Order]; dup {
			return fmt.Errorf("duplicate slot order %d", s.Order)
		}
		seen[s.Order] = struct{}{}
	}
	return nil
}

// BuildMatrix computes the dense candidate x slot similarity matrix.
// matrix[i][j] scores candidates[i] against slots[j]. Pure function;
// zero-length inputs produce the corresponding zero dimension.
func BuildMatrix(candidates []Candidate, slots []Slot) [][]float64 {
	matrix := make([][]float64, len(candidates))
	for i, c := range candidates {
		row := make([]float64, len(slots))
		for j, s := range slots {
			row[j] = Score(c.Description, s.Description)
		}
		matrix[i] = row
	}
	return matrix
}

// Match runs the full pipeline: similarity matrix, greedy-global
// assignment, statistics. Deterministic for fixed input: the same
// candidates and slots always yield byte-identical output.
func Match(candidates []Candidate, slots []Slot) *Result {
	return MatchWithOptions(candidates, slots, Options{})
}

// MatchWithOptions is Match with an explicit viability threshold.
//
// The optimizer is greedy-global: it repeatedly selects the single
// highest remaining score among (unused candidate, unfilled slot) pairs,
// assigns it and removes both from consideration. Ties break toward the
// lowest slot order, then the lowest candidate index. Slots that never
// receive a viable candidate are emitted unfilled with 0.0 confidence,
// so the output always has exactly one assignment per slot.
func MatchWithOptions(candidates []Candidate, slots []Slot, opts Options) *Result {
	// Work on a copy ordered by slot order so tie-breaking and output
	// ordering are independent of the caller's slice order.
	ordered := make([]Slot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	matrix := BuildMatrix(candidates, ordered)

	assignments := make([]Assignment, len(ordered))
	for i, s := range ordered {
		assignments[i] = Assignment{SlotOrder: s.Order}
	}

	usedCandidate := make([]bool, len(candidates))
	filledSlot := make([]bool, len(ordered))

	rounds := len(ordered)
	if len(candidates) < rounds {
		rounds = len(candidates)
	}

	for round := 0; round < rounds; round++ {
		bestScore := opts.MinViableScore
		bestSlot, bestCandidate := -1, -1

		// Slots outer (ascending order), candidates inner (ascending
		// index), replacing only on strictly greater score: ties resolve
		// to the lowest slot order, then the lowest candidate index.
		for j := range ordered {
			if filledSlot[j] {
				continue
			}
			for i := range candidates {
				if usedCandidate[i] {
					continue
				}
				if matrix[i][j] > bestScore {
					bestScore = matrix[i][j]
					bestSlot = j
					bestCandidate = i
				}
			}
		}

		if bestSlot < 0 {
			break // nothing viable left
		}

		id := candidates[bestCandidate].ID
		assignments[bestSlot].CandidateID = &id
		assignments[bestSlot].Confidence = bestScore
		assignments[bestSlot].Quality = classifyQuality(bestScore)
		usedCandidate[bestCandidate] = true
		filledSlot[bestSlot] = true
	}

	return &Result{
		Assignments: assignments,
		Statistics:  computeStatistics(assignments, len(candidates), len(ordered)),
	}
}

func classifyQuality(confidence float64) string {
	switch {
	case confidence >= highThreshold:
		return QualityHigh
	case confidence >= mediumThreshold:
		return QualityMedium
	default:
		return QualityLow
	}
}

func computeStatistics(assignments []Assignment, candidateCount, slotCount int) Statistics {
	stats := Statistics{}

	filled := 0
	zeroConfidence := 0
	sum := 0.0
	for _, a := range assignments {
		if a.CandidateID == nil {
			zeroConfidence++
			continue
		}
		if a.Confidence == 0.0 {
			zeroConfidence++
		}
		filled++
		sum += a.Confidence
		if filled == 1 || a.Confidence < stats.MinScore {
			stats.MinScore = a.Confidence
		}
		if a.Confidence > stats.MaxScore {
			stats.MaxScore = a.Confidence
		}
		switch classifyQuality(a.Confidence) {
		case QualityHigh:
			stats.HighQualityCount++
		case QualityMedium:
			stats.MediumQualityCount++
		default:
			stats.LowQualityCount++
		}
	}

	if filled > 0 {
		stats.AverageScore = sum / float64(filled)
	}

	// Fallback: the run degraded to effectively empty scoring. Either an
	// input side was missing entirely, or most of the timeline carries no
	// confidence at all.
	stats.FallbackMode = candidateCount == 0 || slotCount == 0 ||
		(len(assignments) > 0 && zeroConfidence*2 > len(assignments))

	return stats
}
