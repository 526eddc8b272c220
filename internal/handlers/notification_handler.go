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

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
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

	notifications, err := h.notificationService.ListForUser(userID, cursor, limit)
	if err != nil {
		return httpx.Internal(c, "fetch_notifications_failed")
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}

	return c.JSON(fiber.Map{"notifications": responses})
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		return httpx.Internal(c, "fetch_unread_count_failed")
	}

	return c.JSON(fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	notificationID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_notification_id", "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(notificationID, userID); err != nil {
		if errors.Is(err, service.ErrNotNotificationOwner) {
			return httpx.Forbidden(c, "not_notification_owner", "Notification belongs to another user")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound(c, "notification_not_found", "Notification not found")
		}
		return httpx.Internal(c, "mark_read_failed")
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	updated, err := h.notificationService.MarkAllRead(userID)
	if err != nil {
		return httpx.Internal(c, "mark_all_read_failed")
	}

	return c.JSON(fiber.Map{"success": true, "updated": updated})
}
