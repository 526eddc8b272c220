package repository

import (
	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepository) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Preload("Actor").First(&notification, id).Error
	return &notification, err
}

func (r *NotificationRepository) FindForRecipient(recipientID uint, cursor uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	q := r.db.Preload("Actor").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	err := q.Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) CountUnread(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).
		Update("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(recipientID uint) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) DeleteForPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).
		Delete(&models.Notification{}).Error
}

func (r *NotificationRepository) DeleteForComment(commentID uint) error {
	return r.db.Where("comment_id = ?", commentID).
		Delete(&models.Notification{}).Error
}
