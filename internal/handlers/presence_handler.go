package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartiksrathod/Social-Media-sub000/internal/httpx"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
)

// PresenceHandler exposes who-is-online reads. The Redis mirror answers for
// the whole deployment; when it is absent (or empty) the in-process registry
// answers for this node.
type PresenceHandler struct {
	presenceService *service.PresenceService
	registry        *realtime.Registry
}

func NewPresenceHandler(presenceService *service.PresenceService, registry *realtime.Registry) *PresenceHandler {
	return &PresenceHandler{presenceService: presenceService, registry: registry}
}

func (h *PresenceHandler) GetOnlineUsers(c *fiber.Ctx) error {
	ids, err := h.presenceService.OnlineUserIDs()
	if err != nil {
		return httpx.Internal(c, "fetch_online_users_failed")
	}
	if len(ids) == 0 {
		ids = h.registry.OnlineUsers()
	}
	return c.JSON(fiber.Map{"user_ids": ids, "count": len(ids)})
}

func (h *PresenceHandler) GetUserPresence(c *fiber.Ctx) error {
	userID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_user_id", "Invalid user id")
	}

	online := h.registry.IsOnline(userID) || h.presenceService.IsOnline(userID)
	return c.JSON(fiber.Map{"user_id": userID, "is_online": online})
}
