package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kartiksrathod/Social-Media-sub000/internal/httpx"
	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
	"github.com/kartiksrathod/Social-Media-sub000/internal/service"
	"gorm.io/gorm"
)

// EngagementHandler covers the light-weight social actions (likes, follows)
// whose only durable artifact in this service is the notification row. The
// notification write is the must-not-fail step: if it errors the route
// fails, while the push behind it stays best-effort.
type EngagementHandler struct {
	notificationService *service.NotificationService
	postRepo            repository.PostRepositoryInterface
	userRepo            repository.UserRepositoryInterface
}

func NewEngagementHandler(notificationService *service.NotificationService, postRepo repository.PostRepositoryInterface, userRepo repository.UserRepositoryInterface) *EngagementHandler {
	return &EngagementHandler{
		notificationService: notificationService,
		postRepo:            postRepo,
		userRepo:            userRepo,
	}
}

func (h *EngagementHandler) LikePost(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	postID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_post_id", "Invalid post id")
	}

	post, err := h.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound(c, "post_not_found", "Post not found")
		}
		return httpx.Internal(c, "like_post_failed")
	}

	if _, err := h.notificationService.Create(service.CreateNotificationInput{
		RecipientID: post.AuthorID,
		ActorID:     userID,
		Type:        models.NotificationLike,
		PostID:      &postID,
	}); err != nil {
		return httpx.Internal(c, "like_post_failed")
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *EngagementHandler) FollowUser(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	targetID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_user_id", "Invalid user id")
	}
	if targetID == userID {
		return httpx.BadRequest(c, "invalid_target", "Cannot follow yourself")
	}

	if _, err := h.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound(c, "user_not_found", "User not found")
		}
		return httpx.Internal(c, "follow_user_failed")
	}

	if _, err := h.notificationService.Create(service.CreateNotificationInput{
		RecipientID: targetID,
		ActorID:     userID,
		Type:        models.NotificationFollow,
	}); err != nil {
		return httpx.Internal(c, "follow_user_failed")
	}

	return c.JSON(fiber.Map{"success": true})
}
