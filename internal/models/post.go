package models

import (
	"time"

	"gorm.io/gorm"
)

// Post carries only what the real-time layer needs: ownership for
// notification routing and an id for the post comment room. The full
// post surface (media, captions, feed ranking) lives elsewhere.
type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID" json:"-"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
}
