package models

// Template is a viral-video blueprint: an ordered sequence of clip slots,
// each with its own descriptive text used for matching.
type Template struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Clips []TemplateClip `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"clips"`
}

// TemplateClip is one ordered slot. ClipOrder is unique within a template
// and significant; Duration is informational for the matcher and consumed
// by the renderer.
type TemplateClip struct {
	BaseModel
	TemplateID  string  `gorm:"not null;index;uniqueIndex:idx_template_clip_order" json:"template_id"`
	ClipOrder   int     `gorm:"not null;uniqueIndex:idx_template_clip_order" json:"clip_order"`
	Duration    float64 `gorm:"not null" json:"duration"` // seconds
	Description string  `gorm:"type:text" json:"description"`
}
