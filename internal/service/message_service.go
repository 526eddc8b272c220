package service

import (
	"errors"
	"log"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
	"github.com/kartiksrathod/Social-Media-sub000/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrNotParticipant = errors.New("user is not a participant in this conversation")
	ErrEmptyMessage   = errors.New("message text cannot be empty")
)

// NewMessageEvent is the payload for new_message pushes.
type NewMessageEvent struct {
	ConversationID uint                   `json:"conversation_id"`
	Message        models.MessageResponse `json:"message"`
}

type MessageService struct {
	messageRepo      repository.MessageRepositoryInterface
	conversationRepo repository.ConversationRepositoryInterface
	pusher           Pusher
}

func NewMessageService(messageRepo repository.MessageRepositoryInterface, conversationRepo repository.ConversationRepositoryInterface, pusher Pusher) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		conversationRepo: conversationRepo,
		pusher:           pusher,
	}
}

type SendMessageInput struct {
	ClientID string `json:"client_id"`
	Text     string `json:"text"`
}

// SendMessage persists the message in the durable store and then pushes
// new_message to the other participants, best effort. The sender's response
// depends only on the write; recipients who miss the push pick the message
// up from conversation history on their next fetch.
func (s *MessageService) SendMessage(senderID, conversationID uint, input SendMessageInput) (*models.Message, error) {
	text := validation.TrimAndLimit(input.Text, validation.MaxMessageLength())
	if text == "" {
		return nil, ErrEmptyMessage
	}

	ok, err := s.conversationRepo.IsParticipant(conversationID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	// Client ids dedupe resends after a reconnect.
	if input.ClientID != "" {
		if existing, err := s.messageRepo.FindByClientID(input.ClientID, conversationID); err == nil && existing.SenderID == senderID {
			return existing, nil
		}
	}

	message := &models.Message{
		ClientID:       input.ClientID,
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	loaded, err := s.messageRepo.FindByID(message.ID)
	if err != nil {
		log.Printf("Error loading message %d after create: %v", message.ID, err)
		loaded = message
	}

	participants, err := s.conversationRepo.ParticipantIDs(conversationID)
	if err != nil {
		log.Printf("Error resolving participants of conversation %d: %v", conversationID, err)
		return loaded, nil
	}

	payload := NewMessageEvent{ConversationID: conversationID, Message: loaded.ToResponse()}
	for _, userID := range participants {
		if userID == senderID {
			continue
		}
		s.pusher.DeliverToUser(userID, realtime.EventNewMessage, payload)
	}

	return loaded, nil
}

// GetMessages returns a page of conversation history, oldest first. Only
// participants may read.
func (s *MessageService) GetMessages(userID, conversationID uint, cursor uint, limit int) ([]models.Message, error) {
	ok, err := s.conversationRepo.IsParticipant(conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.messageRepo.FindConversationCursor(conversationID, cursor, limit)
}

// StartDirectConversation returns the existing two-party conversation with
// the peer, creating it when absent.
func (s *MessageService) StartDirectConversation(userID, peerID uint) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindDirect(userID, peerID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conversation = &models.Conversation{
		Participants: []models.ConversationParticipant{
			{UserID: userID},
			{UserID: peerID},
		},
	}
	if err := s.conversationRepo.Create(conversation); err != nil {
		return nil, err
	}
	return s.conversationRepo.FindByID(conversation.ID)
}

// ListConversations returns the user's conversations, most recent first.
func (s *MessageService) ListConversations(userID uint, limit int) ([]models.Conversation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.conversationRepo.ListForUser(userID, limit)
}

// VerifyParticipant is used by the transport layer before letting a
// connection join a conversation room.
func (s *MessageService) VerifyParticipant(conversationID, userID uint) (bool, error) {
	return s.conversationRepo.IsParticipant(conversationID, userID)
}
