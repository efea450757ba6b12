package models

import (
	"time"
)

// Post is a short text post. Name and Avatar are snapshots of the author
// taken at creation time, so posts keep their byline even if the account
// later changes or disappears.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Like marks a user's like on a post.
// The (PostID, UserID) pair is unique; the index backstops the
// check-then-act sequence in the service layer.
type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;uniqueIndex:idx_post_user" json:"-"`
	UserID uint `gorm:"not null;uniqueIndex:idx_post_user" json:"user"`
}

// Comment is a text reply nested in a post, with the same author snapshot
// semantics as the post itself.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	UserID    uint      `gorm:"not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
