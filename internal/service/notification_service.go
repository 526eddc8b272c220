package service

import (
	"errors"
	"log"

	"github.com/kartiksrathod/Social-Media-sub000/internal/cache"
	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
)

// Pusher is the best-effort at-most-once push channel. Implementations never
// block the caller and never surface delivery failures: a recipient who
// misses a push sees the update on their next fetch of durable state. This
// is deliberately a different contract from the repositories, which are the
// durable at-least-once-via-poll channel.
type Pusher interface {
	DeliverToUser(userID uint, event string, payload interface{})
	DeliverToRoom(roomID, event string, payload interface{}, excluding ...string)
}

var ErrNotNotificationOwner = errors.New("notification belongs to another user")

const notificationPageSize = 20

type NotificationService struct {
	notificationRepo repository.NotificationRepositoryInterface
	pusher           Pusher
	cache            *cache.NotificationCache
}

func NewNotificationService(notificationRepo repository.NotificationRepositoryInterface, pusher Pusher, notificationCache *cache.NotificationCache) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
		cache:            notificationCache,
	}
}

type CreateNotificationInput struct {
	RecipientID uint
	ActorID     uint
	Type        models.NotificationType
	PostID      *uint
	CommentID   *uint
	PreviewText string
}

// Create persists the notification first, then attempts the real-time push.
// The write is the must-not-fail half: its error aborts the operation and
// propagates to the caller. The push is fire-and-forget; an offline
// recipient or a dropped connection never affects the stored record.
func (s *NotificationService) Create(input CreateNotificationInput) (*models.Notification, error) {
	if input.RecipientID == input.ActorID {
		// Nobody is notified about their own action.
		return nil, nil
	}

	notification := &models.Notification{
		RecipientID: input.RecipientID,
		ActorID:     input.ActorID,
		Type:        input.Type,
		PostID:      input.PostID,
		CommentID:   input.CommentID,
		PreviewText: input.PreviewText,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	// Reload with the actor profile for the wire payload. The record is
	// already durable, so a failed reload only degrades the push.
	loaded, err := s.notificationRepo.FindByID(notification.ID)
	if err != nil {
		log.Printf("Error loading notification %d after create: %v", notification.ID, err)
		loaded = notification
	}

	s.cache.InvalidateForUser(input.RecipientID)

	s.pusher.DeliverToUser(input.RecipientID, realtime.EventNewNotification, loaded.ToResponse())

	return loaded, nil
}

// MarkRead flips the read flag. Only the recipient may do so; a foreign
// user's attempt is rejected locally and emits nothing. Idempotent.
func (s *NotificationService) MarkRead(notificationID, userID uint) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return ErrNotNotificationOwner
	}
	if notification.Read {
		return nil
	}
	if err := s.notificationRepo.MarkRead(notificationID); err != nil {
		return err
	}
	s.cache.InvalidateForUser(userID)
	return nil
}

// MarkAllRead flips every unread notification of the user and returns how
// many were flipped.
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	flipped, err := s.notificationRepo.MarkAllRead(userID)
	if err != nil {
		return 0, err
	}
	if flipped > 0 {
		s.cache.InvalidateForUser(userID)
	}
	return flipped, nil
}

// ListForUser returns a page of the user's notifications, newest first. The
// first page is served from cache when possible.
func (s *NotificationService) ListForUser(userID uint, cursor uint, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = notificationPageSize
	}

	firstPage := cursor == 0 && limit == notificationPageSize
	if firstPage {
		if cached, ok := s.cache.GetList(userID); ok {
			return cached, nil
		}
	}

	notifications, err := s.notificationRepo.FindForRecipient(userID, cursor, limit)
	if err != nil {
		return nil, err
	}

	if firstPage {
		if err := s.cache.SetList(userID, notifications); err != nil {
			log.Printf("Error caching notifications for user %d: %v", userID, err)
		}
	}
	return notifications, nil
}

// UnreadCount returns the user's unread notification counter.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	if cached, ok := s.cache.GetUnreadCount(userID); ok {
		return cached, nil
	}
	count, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetUnreadCount(userID, count); err != nil {
		log.Printf("Error caching unread count for user %d: %v", userID, err)
	}
	return count, nil
}

// CleanupForPost removes notifications pointing at a removed post. This is
// eventual garbage collection: a failure here is logged, not propagated.
func (s *NotificationService) CleanupForPost(postID uint) {
	if err := s.notificationRepo.DeleteForPost(postID); err != nil {
		log.Printf("Error deleting notifications for post %d: %v", postID, err)
	}
}

// CleanupForComment removes notifications pointing at a removed comment.
func (s *NotificationService) CleanupForComment(commentID uint) {
	if err := s.notificationRepo.DeleteForComment(commentID); err != nil {
		log.Printf("Error deleting notifications for comment %d: %v", commentID, err)
	}
}
