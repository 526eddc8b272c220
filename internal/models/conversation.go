package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a direct-message thread. The durable message history is
// read through the persistence path, independently of real-time delivery.
type Conversation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Participants []ConversationParticipant `gorm:"foreignKey:ConversationID" json:"participants"`
	Messages     []Message                 `gorm:"foreignKey:ConversationID" json:"-"`
}

type ConversationParticipant struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"joined_at"`

	ConversationID uint `gorm:"not null;uniqueIndex:idx_conv_user" json:"conversation_id"`
	UserID         uint `gorm:"not null;uniqueIndex:idx_conv_user;index" json:"user_id"`
	User           User `gorm:"foreignKey:UserID" json:"user"`
}
