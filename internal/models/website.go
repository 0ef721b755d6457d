package models

// Website groups scans for a normalized host under an owner.
// The composite unique index on (user_id, url) backs the atomic
// find-or-create in the scan path.
type Website struct {
	BaseModel

	URL    string `gorm:"not null;uniqueIndex:idx_websites_user_url"`
	Name   string
	UserID uint `gorm:"not null;uniqueIndex:idx_websites_user_url"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Scans []Scan `gorm:"foreignKey:WebsiteID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
