package repository

import (
	"errors"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"gorm.io/gorm"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) Create(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *ConversationRepository) FindByID(id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Preload("Participants.User").First(&conversation, id).Error
	return &conversation, err
}

// FindDirect returns the two-party conversation between the given users, or
// gorm.ErrRecordNotFound when none exists yet.
func (r *ConversationRepository) FindDirect(userID1, userID2 uint) (*models.Conversation, error) {
	var conversationID uint
	err := r.db.Model(&models.ConversationParticipant{}).
		Select("conversation_id").
		Where("user_id IN ?", []uint{userID1, userID2}).
		Group("conversation_id").
		Having("COUNT(DISTINCT user_id) = 2").
		Limit(1).
		Scan(&conversationID).Error
	if err != nil {
		return nil, err
	}
	if conversationID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(conversationID)
}

func (r *ConversationRepository) ListForUser(userID uint, limit int) ([]models.Conversation, error) {
	var ids []uint
	err := r.db.Model(&models.ConversationParticipant{}).
		Select("conversation_id").
		Where("user_id = ?", userID).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	var conversations []models.Conversation
	err = r.db.Preload("Participants.User").
		Where("id IN ?", ids).
		Order("updated_at DESC").
		Limit(limit).
		Find(&conversations).Error
	return conversations, err
}

func (r *ConversationRepository) ParticipantIDs(conversationID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.ConversationParticipant{}).
		Select("user_id").
		Where("conversation_id = ?", conversationID).
		Scan(&ids).Error
	return ids, err
}

func (r *ConversationRepository) IsParticipant(conversationID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ConversationParticipant{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return count > 0, nil
}
