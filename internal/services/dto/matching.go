package dto

import (
	"time"

	"hostreel_backend/internal/matching"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/repositories"
)

type MatchCandidateInput struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description"`
}

type MatchSlotInput struct {
	Order       int     `json:"order" validate:"min=0"`
	Duration    float64 `json:"duration" validate:"min=0"`
	Description string  `json:"description"`
}

// PreviewMatchRequest runs the engine over caller-supplied inputs without
// touching the database.
type PreviewMatchRequest struct {
	Candidates []MatchCandidateInput `json:"candidates" validate:"dive"`
	Slots      []MatchSlotInput      `json:"slots" validate:"required,dive"`
}

type GenerateTimelineRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid4"`
	TemplateID string `json:"template_id" validate:"required,uuid4"`
}

type MatchAssignment struct {
	SlotOrder  int     `json:"slot_order"`
	VideoID    *string `json:"content_item_id"`
	Confidence float64 `json:"confidence"`
	Quality    string  `json:"quality,omitempty"`
}

type MatchStatistics struct {
	AverageScore       float64 `json:"average_score"`
	MinScore           float64 `json:"min_score"`
	MaxScore           float64 `json:"max_score"`
	HighQualityCount   int     `json:"high_quality_count"`
	MediumQualityCount int     `json:"medium_quality_count"`
	LowQualityCount    int     `json:"low_quality_count"`
	FallbackMode       bool    `json:"fallback_mode"`
}

type MatchPreviewResponse struct {
	Assignments []MatchAssignment `json:"assignments"`
	Statistics  MatchStatistics   `json:"statistics"`
}

type TimelineEntryResponse struct {
	SlotOrder  int     `json:"slot_order"`
	VideoID    *string `json:"content_item_id"`
	Confidence float64 `json:"confidence"`
	Quality    string  `json:"quality,omitempty"`
}

type TimelineResponse struct {
	ID         string                  `json:"id"`
	PropertyID string                  `json:"property_id"`
	TemplateID string                  `json:"template_id"`
	Status     string                  `json:"status"`
	Entries    []TimelineEntryResponse `json:"entries"`
	Statistics MatchStatistics         `json:"statistics"`
	CreatedAt  time.Time               `json:"created_at"`
}

// MatchingStatsResponse is the per-property aggregate over past runs.
type MatchingStatsResponse struct {
	TotalRuns          int64   `json:"total_runs"`
	ReadyRuns          int64   `json:"ready_runs"`
	FallbackRuns       int64   `json:"fallback_runs"`
	AverageScore       float64 `json:"average_score"`
	HighQualityCount   int64   `json:"high_quality_count"`
	MediumQualityCount int64   `json:"medium_quality_count"`
	LowQualityCount    int64   `json:"low_quality_count"`
}

func ResultToPreview(result *matching.Result) *MatchPreviewResponse {
	resp := &MatchPreviewResponse{
		Assignments: make([]MatchAssignment, 0, len(result.Assignments)),
		Statistics:  StatisticsToDTO(result.Statistics),
	}
	for _, a := range result.Assignments {
		resp.Assignments = append(resp.Assignments, MatchAssignment{
			SlotOrder:  a.SlotOrder,
			VideoID:    a.CandidateID,
			Confidence: a.Confidence,
			Quality:    a.Quality,
		})
	}
	return resp
}

func StatisticsToDTO(s matching.Statistics) MatchStatistics {
	return MatchStatistics{
		AverageScore:       s.AverageScore,
		MinScore:           s.MinScore,
		MaxScore:           s.MaxScore,
		HighQualityCount:   s.HighQualityCount,
		MediumQualityCount: s.MediumQualityCount,
		LowQualityCount:    s.LowQualityCount,
		FallbackMode:       s.FallbackMode,
	}
}

func TimelineToResponse(t *models.Timeline) *TimelineResponse {
	entries := make([]TimelineEntryResponse, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, TimelineEntryResponse{
			SlotOrder:  e.SlotOrder,
			VideoID:    e.VideoID,
			Confidence: e.Confidence,
			Quality:    e.Quality,
		})
	}
	return &TimelineResponse{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		TemplateID: t.TemplateID,
		Status:     string(t.Status),
		Entries:    entries,
		Statistics: MatchStatistics{
			AverageScore:       t.AverageScore,
			MinScore:           t.MinScore,
			MaxScore:           t.MaxScore,
			HighQualityCount:   t.HighQualityCount,
			MediumQualityCount: t.MediumQualityCount,
			LowQualityCount:    t.LowQualityCount,
			FallbackMode:       t.FallbackMode,
		},
		CreatedAt: t.CreatedAt,
	}
}

func AggregateToStats(agg *repositories.TimelineAggregate) *MatchingStatsResponse {
	return &MatchingStatsResponse{
		TotalRuns:          agg.TotalRuns,
		ReadyRuns:          agg.ReadyRuns,
		FallbackRuns:       agg.FallbackRuns,
		AverageScore:       agg.AverageScore,
		HighQualityCount:   agg.HighQuality,
		MediumQualityCount: agg.MediumQuality,
		LowQualityCount:    agg.LowQuality,
	}
}
