package dto

// PropertyDashboard is the single-call overview for one property.
type PropertyDashboard struct {
	Property *PropertyResponse      `json:"property"`
	Library  *LibrarySummary        `json:"library"`
	Matching *MatchingStatsResponse `json:"matching"`
	Recent   []TimelineResponse     `json:"recent_timelines"`
}
