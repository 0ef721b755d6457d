package models

import "gorm.io/datatypes"

// Scan is a single simulated health-check result for a URL.
// URL is a denormalized copy of the owning Website's url, equal by
// construction at creation time.
type Scan struct {
	BaseModel

	URL       string         `gorm:"not null"`
	Score     int            `gorm:"not null"` // 60-99 inclusive
	Breakdown datatypes.JSON `gorm:"type:jsonb"`
	UserID    uint           `gorm:"not null;index"`
	WebsiteID uint           `gorm:"not null;index"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Website Website `gorm:"foreignKey:WebsiteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
