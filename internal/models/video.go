package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Video is one item in a property's content library. Description is the
// caption produced by the external AI vision pipeline; only described
// videos participate in matching.
type Video struct {
	BaseModel
	PropertyID    string         `gorm:"not null;index" json:"property_id"`
	UploaderID    string         `gorm:"not null" json:"uploader_id"`
	Path          string         `gorm:"not null" json:"-"`
	OriginalName  string         `json:"original_name"`
	MimeType      string         `json:"mime_type"`
	Size          int64          `json:"size"`
	Duration      float64        `json:"duration"` // seconds
	Status        VideoStatus    `gorm:"type:varchar(20);default:'uploaded';index" json:"status"`
	Description   string         `gorm:"type:text" json:"description"`
	Tags          datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	ThumbnailPath string         `json:"thumbnail_path"`
	URL           string         `json:"url"`
}

func (v *Video) GetTags() []string {
	var tags []string
	if len(v.Tags) > 0 {
		_ = json.Unmarshal(v.Tags, &tags)
	}
	return tags
}

func (v *Video) SetTags(tags []string) {
	data, _ := json.Marshal(tags)
	v.Tags = datatypes.JSON(data)
}

// Matchable reports whether the video can participate in a matching run.
func (v *Video) Matchable() bool {
	return v.Status == VideoStatusDescribed && v.Description != ""
}
