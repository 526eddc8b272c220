package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PostID   uint  `gorm:"not null;index" json:"post_id"`
	AuthorID uint  `gorm:"not null;index" json:"author_id"`
	Author   User  `gorm:"foreignKey:AuthorID" json:"author"`
	ParentID *uint `gorm:"index" json:"parent_id"` // null for top-level comments

	Content string `gorm:"type:text;not null" json:"content"`

	// Soft-deleted comments keep their row (replies still hang off them)
	// but lose their content.
	IsDeleted bool `gorm:"default:false" json:"is_deleted"`

	// Version for edit tracking
	Version int `gorm:"default:1" json:"version"`

	Reactions []CommentReaction `gorm:"foreignKey:CommentID" json:"reactions"`
}

type CommentReaction struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`

	CommentID uint   `gorm:"not null;uniqueIndex:idx_comment_user" json:"-"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_comment_user" json:"user_id"`
	Type      string `gorm:"type:varchar(20);not null" json:"type"`
}

type CommentResponse struct {
	ID        uint              `json:"id"`
	PostID    uint              `json:"post_id"`
	AuthorID  uint              `json:"author_id"`
	Author    UserResponse      `json:"author"`
	ParentID  *uint             `json:"parent_id"`
	Content   string            `json:"content"`
	IsDeleted bool              `json:"is_deleted"`
	Version   int               `json:"version"`
	Reactions []CommentReaction `json:"reactions"`
	CreatedAt time.Time         `json:"created_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	reactions := c.Reactions
	if reactions == nil {
		reactions = []CommentReaction{}
	}
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Author:    c.Author.ToResponse(),
		ParentID:  c.ParentID,
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		Version:   c.Version,
		Reactions: reactions,
		CreatedAt: c.CreatedAt,
	}
}
