package models

import (
	"time"

	"gorm.io/gorm"
)

type Message struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Client-side id for deduplication across reconnect resends.
	ClientID string `gorm:"type:varchar(36);uniqueIndex:idx_client_sender" json:"client_id"`

	ConversationID uint `gorm:"not null;uniqueIndex:idx_client_sender;index" json:"conversation_id"`
	SenderID       uint `gorm:"not null;index" json:"sender_id"`
	Sender         User `gorm:"foreignKey:SenderID" json:"sender"`

	Text string `gorm:"type:text;not null" json:"text"`
}

type MessageResponse struct {
	ID             uint         `json:"id"`
	ClientID       string       `json:"client_id,omitempty"`
	ConversationID uint         `json:"conversation_id"`
	SenderID       uint         `json:"sender_id"`
	Sender         UserResponse `json:"sender"`
	Text           string       `json:"text"`
	CreatedAt      time.Time    `json:"created_at"`
}

func (m *Message) ToResponse() MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ClientID:       m.ClientID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Sender:         m.Sender.ToResponse(),
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}
