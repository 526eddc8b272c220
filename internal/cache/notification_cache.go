package cache

import (
	"fmt"
	"time"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// TTL constants for notification caching
const (
	NotificationListTTL = 2 * time.Minute
	UnreadCountTTL      = 1 * time.Minute
)

// NotificationCache caches the first page of a user's notifications and the
// unread counter. Invalidated on every create/read/delete for the user; a
// miss just falls through to Postgres. Nil-safe like the other caches.
type NotificationCache struct {
	redis *RedisCache
}

func NewNotificationCache(redis *RedisCache) *NotificationCache {
	return &NotificationCache{redis: redis}
}

func listKey(userID uint) string {
	return fmt.Sprintf("notif:list:%d", userID)
}

func unreadKey(userID uint) string {
	return fmt.Sprintf("notif:unread:%d", userID)
}

// GetList retrieves the cached first page of notifications
func (nc *NotificationCache) GetList(userID uint) ([]models.Notification, bool) {
	if nc == nil || nc.redis == nil {
		return nil, false
	}
	data, err := nc.redis.Get(listKey(userID))
	if err != nil || data == nil {
		return nil, false
	}

	var notifications []models.Notification
	if err := msgpack.Unmarshal(data, &notifications); err != nil {
		return nil, false
	}

	return notifications, true
}

// SetList caches the first page of notifications
func (nc *NotificationCache) SetList(userID uint, notifications []models.Notification) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(notifications)
	if err != nil {
		return err
	}
	return nc.redis.Set(listKey(userID), data, NotificationListTTL)
}

// GetUnreadCount retrieves the cached unread counter
func (nc *NotificationCache) GetUnreadCount(userID uint) (int64, bool) {
	if nc == nil || nc.redis == nil {
		return 0, false
	}
	data, err := nc.redis.Get(unreadKey(userID))
	if err != nil || data == nil {
		return 0, false
	}

	var count int64
	if err := msgpack.Unmarshal(data, &count); err != nil {
		return 0, false
	}

	return count, true
}

// SetUnreadCount caches the unread counter
func (nc *NotificationCache) SetUnreadCount(userID uint, count int64) error {
	if nc == nil || nc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(count)
	if err != nil {
		return err
	}
	return nc.redis.Set(unreadKey(userID), data, UnreadCountTTL)
}

// InvalidateForUser drops both cached entries for the user
func (nc *NotificationCache) InvalidateForUser(userID uint) {
	if nc == nil || nc.redis == nil {
		return
	}
	_ = nc.redis.Delete(listKey(userID))
	_ = nc.redis.Delete(unreadKey(userID))
}
