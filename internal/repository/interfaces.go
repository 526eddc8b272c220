package repository

import (
	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	UpdateOnlineStatus(userID uint, isOnline bool) error
	SearchUsers(query string, limit int) ([]models.User, error)
}

// PostRepositoryInterface defines the contract for post lookups. The
// real-time layer only needs ownership resolution; full post CRUD lives in
// the feed service.
type PostRepositoryInterface interface {
	FindByID(id uint) (*models.Post, error)
}

// CommentRepositoryInterface defines the contract for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	FindByPost(postID uint, cursor uint, limit int) ([]models.Comment, error)
	Update(comment *models.Comment) error
	SoftDelete(commentID uint) error
	HardDelete(commentID uint) error
	HasReplies(commentID uint) (bool, error)
	AddReaction(reaction *models.CommentReaction) error
	RemoveReaction(commentID, userID uint) error
	FindReaction(commentID, userID uint) (*models.CommentReaction, error)
	ListReactions(commentID uint) ([]models.CommentReaction, error)
}

// NotificationRepositoryInterface defines the contract for the durable
// notification store. Writes here are the must-not-fail half of the delivery
// pipeline; the real-time push is attempted only after they succeed.
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	FindByID(id uint) (*models.Notification, error)
	FindForRecipient(recipientID uint, cursor uint, limit int) ([]models.Notification, error)
	CountUnread(recipientID uint) (int64, error)
	MarkRead(id uint) error
	MarkAllRead(recipientID uint) (int64, error)
	DeleteForPost(postID uint) error
	DeleteForComment(commentID uint) error
}

// ConversationRepositoryInterface defines the contract for conversation operations
type ConversationRepositoryInterface interface {
	Create(conversation *models.Conversation) error
	FindByID(id uint) (*models.Conversation, error)
	FindDirect(userID1, userID2 uint) (*models.Conversation, error)
	ListForUser(userID uint, limit int) ([]models.Conversation, error)
	ParticipantIDs(conversationID uint) ([]uint, error)
	IsParticipant(conversationID, userID uint) (bool, error)
}

// MessageRepositoryInterface defines the contract for the durable message
// store, read independently of the delivery layer.
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	FindByClientID(clientID string, conversationID uint) (*models.Message, error)
	FindConversationCursor(conversationID uint, cursor uint, limit int) ([]models.Message, error)
}
