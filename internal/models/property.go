package models

type Property struct {
	BaseModel
	OwnerID     string       `gorm:"not null;index" json:"owner_id"`
	Name        string       `gorm:"not null" json:"name"`
	Type        PropertyType `gorm:"type:varchar(20);not null" json:"type"`
	City        string       `json:"city"`
	Address     string       `json:"address"`
	Description string       `json:"description"`
	IsActive    bool         `gorm:"default:true" json:"is_active"`

	Videos []Video `gorm:"foreignKey:PropertyID" json:"videos,omitempty"`
}
