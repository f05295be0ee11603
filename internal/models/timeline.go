package models

// Timeline is one persisted matching run for a (property, template) pair,
// consumed downstream by the external renderer.
type Timeline struct {
	BaseModel
	PropertyID  string         `gorm:"not null;index" json:"property_id"`
	TemplateID  string         `gorm:"not null;index" json:"template_id"`
	RequestedBy string         `json:"requested_by"`
	Status      TimelineStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`

	AverageScore       float64 `json:"average_score"`
	MinScore           float64 `json:"min_score"`
	MaxScore           float64 `json:"max_score"`
	HighQualityCount   int     `json:"high_quality_count"`
	MediumQualityCount int     `json:"medium_quality_count"`
	LowQualityCount    int     `json:"low_quality_count"`
	FallbackMode       bool    `json:"fallback_mode"`

	Entries []TimelineEntry `gorm:"foreignKey:TimelineID;constraint:OnDelete:CASCADE" json:"entries"`
}

// TimelineEntry is one slot assignment. A nil VideoID means the slot
// stayed unfilled; confidence is then 0.0.
type TimelineEntry struct {
	BaseModel
	TimelineID string  `gorm:"not null;index" json:"timeline_id"`
	SlotOrder  int     `gorm:"not null" json:"slot_order"`
	VideoID    *string `gorm:"index" json:"video_id"`
	Confidence float64 `json:"confidence"`
	Quality    string  `gorm:"type:varchar(10)" json:"quality"`
}
