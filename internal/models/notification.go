package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationLike     NotificationType = "like"
	NotificationComment  NotificationType = "comment"
	NotificationMention  NotificationType = "mention"
	NotificationFollow   NotificationType = "follow"
	NotificationReaction NotificationType = "reaction"
)

// Notification is the durable record of a user-facing event. Its existence
// never depends on whether the real-time push reached the recipient.
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RecipientID uint `gorm:"not null;index" json:"user_id"`
	ActorID     uint `gorm:"not null;index" json:"actor_id"`
	Actor       User `gorm:"foreignKey:ActorID" json:"-"`

	Type        NotificationType `gorm:"type:varchar(30);not null;index" json:"type"`
	PostID      *uint            `gorm:"index" json:"post_id"`
	CommentID   *uint            `gorm:"index" json:"comment_id"`
	PreviewText string           `gorm:"type:varchar(200)" json:"text"`
	Read        bool             `gorm:"default:false;index" json:"read"`
}

type NotificationResponse struct {
	ID            uint             `json:"id"`
	UserID        uint             `json:"user_id"`
	ActorID       uint             `json:"actor_id"`
	ActorUsername string           `json:"actor_username"`
	ActorAvatar   string           `json:"actor_avatar"`
	Type          NotificationType `json:"type"`
	PostID        *uint            `json:"post_id,omitempty"`
	CommentID     *uint            `json:"comment_id,omitempty"`
	Text          string           `json:"text,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	Read          bool             `json:"read"`
}

func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		UserID:        n.RecipientID,
		ActorID:       n.ActorID,
		ActorUsername: n.Actor.Username,
		ActorAvatar:   n.Actor.Avatar,
		Type:          n.Type,
		PostID:        n.PostID,
		CommentID:     n.CommentID,
		Text:          n.PreviewText,
		CreatedAt:     n.CreatedAt,
		Read:          n.Read,
	}
}
