package repository

import (
	"errors"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").Preload("Reactions").First(&comment, id).Error
	return &comment, err
}

func (r *CommentRepository) FindByPost(postID uint, cursor uint, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	q := r.db.Preload("Author").Preload("Reactions").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	err := q.Find(&comments).Error

	// Reverse to get chronological order
	for i, j := 0, len(comments)-1; i < j; i, j = i+1, j-1 {
		comments[i], comments[j] = comments[j], comments[i]
	}

	return comments, err
}

func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// SoftDelete blanks the comment but keeps the row so replies stay attached.
func (r *CommentRepository) SoftDelete(commentID uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", commentID).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"content":    "",
		}).Error
}

func (r *CommentRepository) HardDelete(commentID uint) error {
	return r.db.Delete(&models.Comment{}, commentID).Error
}

func (r *CommentRepository) HasReplies(commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("parent_id = ?", commentID).
		Count(&count).Error
	return count > 0, err
}

func (r *CommentRepository) AddReaction(reaction *models.CommentReaction) error {
	return r.db.Create(reaction).Error
}

func (r *CommentRepository) RemoveReaction(commentID, userID uint) error {
	return r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentReaction{}).Error
}

func (r *CommentRepository) FindReaction(commentID, userID uint) (*models.CommentReaction, error) {
	var reaction models.CommentReaction
	err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &reaction, err
}

func (r *CommentRepository) ListReactions(commentID uint) ([]models.CommentReaction, error) {
	var reactions []models.CommentReaction
	err := r.db.Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&reactions).Error
	return reactions, err
}
