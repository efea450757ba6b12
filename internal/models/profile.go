package models

import (
	"time"
)

// Profile is the one-per-user developer profile. Experience and Education
// rows belong exclusively to their profile; reads always carry the full
// aggregate, newest entries first.
type Profile struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Handle         string      `gorm:"uniqueIndex;not null" json:"handle"`
	Company        string      `json:"company,omitempty"`
	Website        string      `json:"website,omitempty"`
	Location       string      `json:"location,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Status         string      `json:"status"`
	GithubUsername string      `json:"githubusername,omitempty"`
	Skills         Skills      `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Skills is an ordered list of skill tags, stored as a JSON-serialized column.
type Skills []string

// SocialLinks bundles the optional social network URLs of a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a work history entry nested in a profile.
// Dates are kept as the client-supplied strings; only presence is validated.
type Experience struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProfileID   uint   `gorm:"not null;index" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `gorm:"not null" json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is a schooling entry nested in a profile.
type Education struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ProfileID    uint   `gorm:"not null;index" json:"-"`
	School       string `gorm:"not null" json:"school"`
	Degree       string `gorm:"not null" json:"degree"`
	FieldOfStudy string `gorm:"not null" json:"fieldofstudy"`
	From         string `gorm:"not null" json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}
