package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kartiksrathod/Social-Media-sub000/internal/httpx"
	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
	"gorm.io/gorm"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type startConversationInput struct {
	PeerID uint `json:"peer_id"`
}

func (h *MessageHandler) StartConversation(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	var input startConversationInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.PeerID == 0 || input.PeerID == userID {
		return httpx.BadRequest(c, "invalid_peer", "A valid peer_id is required")
	}

	conversation, err := h.messageService.StartDirectConversation(userID, input.PeerID)
	if err != nil {
		return httpx.Internal(c, "start_conversation_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(conversation)
}

func (h *MessageHandler) GetConversations(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	conversations, err := h.messageService.ListConversations(userID, limit)
	if err != nil {
		return httpx.Internal(c, "fetch_conversations_failed")
	}

	return c.JSON(fiber.Map{"conversations": conversations})
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	conversationID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_conversation_id", "Invalid conversation id")
	}

	var input service.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	message, err := h.messageService.SendMessage(userID, conversationID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return httpx.BadRequest(c, "missing_text", "Message text is required")
		case errors.Is(err, service.ErrNotParticipant):
			return httpx.Forbidden(c, "not_participant", "Not a participant in this conversation")
		}
		return httpx.Internal(c, "send_message_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(message.ToResponse())
}

func (h *MessageHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	conversationID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_conversation_id", "Invalid conversation id")
	}

	var cursor uint
	if cursorStr := c.Query("cursor"); cursorStr != "" {
		parsed, err := strconv.ParseUint(cursorStr, 10, 32)
		if err != nil {
			return httpx.BadRequest(c, "invalid_cursor", "Invalid cursor")
		}
		cursor = uint(parsed)
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	messages, err := h.messageService.GetMessages(userID, conversationID, cursor, limit)
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			return httpx.Forbidden(c, "not_participant", "Not a participant in this conversation")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound(c, "conversation_not_found", "Conversation not found")
		}
		return httpx.Internal(c, "fetch_messages_failed")
	}

	responses := make([]models.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}

	return c.JSON(fiber.Map{"conversation_id": conversationID, "messages": responses})
}
