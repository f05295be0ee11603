package models

import "gorm.io/datatypes"

type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(40);not null" json:"type"`
	Title   string           `json:"title"`
	Body    string           `json:"body"`
	IsRead  bool             `gorm:"default:false;index" json:"is_read"`
	Payload datatypes.JSON   `gorm:"type:jsonb" json:"payload,omitempty"`
}
