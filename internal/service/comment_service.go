package service

import (
	"errors"
	"log"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/repository"
	"github.com/kartiksrathod/Social-Media-sub000/internal/validation"
)

var (
	ErrNotCommentOwner = errors.New("comment belongs to another user")
	ErrEmptyComment    = errors.New("comment content cannot be empty")
	ErrCommentDeleted  = errors.New("comment has been deleted")
)

const previewLength = 120

// CommentEvent is the payload for new_comment and edit_comment pushes.
type CommentEvent struct {
	Comment models.CommentResponse `json:"comment"`
	PostID  uint                   `json:"post_id"`
}

// CommentDeleteEvent is the payload for delete_comment pushes.
type CommentDeleteEvent struct {
	CommentID    uint `json:"comment_id"`
	IsSoftDelete bool `json:"is_soft_delete"`
}

// CommentReactionEvent is the payload for comment_reaction pushes. It carries
// the full reaction list so clients replace rather than merge.
type CommentReactionEvent struct {
	CommentID uint                     `json:"comment_id"`
	Reactions []models.CommentReaction `json:"reactions"`
}

type CommentService struct {
	commentRepo   repository.CommentRepositoryInterface
	postRepo      repository.PostRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifications *NotificationService
	pusher        Pusher
}

func NewCommentService(commentRepo repository.CommentRepositoryInterface, postRepo repository.PostRepositoryInterface, userRepo repository.UserRepositoryInterface, notifications *NotificationService, pusher Pusher) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
		pusher:        pusher,
	}
}

// CreateComment persists the comment, fans it out to the post's comment room
// and creates durable notifications for the post owner and @mentioned users.
// The comment write is the only failure that aborts; notification writes for
// secondary recipients are logged and skipped so one bad row cannot fail the
// whole action.
func (s *CommentService) CreateComment(authorID, postID uint, content string, parentID *uint) (*models.Comment, error) {
	content = validation.TrimAndLimit(content, validation.MaxCommentLength())
	if content == "" {
		return nil, ErrEmptyComment
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		ParentID: parentID,
		Content:  content,
		Version:  1,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	loaded, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		log.Printf("Error loading comment %d after create: %v", comment.ID, err)
		loaded = comment
	}

	// Live update for everyone currently viewing the thread.
	s.pusher.DeliverToRoom(realtime.PostRoom(postID), realtime.EventNewComment,
		CommentEvent{Comment: loaded.ToResponse(), PostID: postID})

	preview := validation.TrimAndLimit(content, previewLength)

	if _, err := s.notifications.Create(CreateNotificationInput{
		RecipientID: post.AuthorID,
		ActorID:     authorID,
		Type:        models.NotificationComment,
		PostID:      &postID,
		CommentID:   &loaded.ID,
		PreviewText: preview,
	}); err != nil {
		log.Printf("Error creating comment notification for post %d: %v", postID, err)
	}

	s.notifyMentions(authorID, post.AuthorID, postID, loaded.ID, content, preview)

	return loaded, nil
}

// notifyMentions resolves @username mentions to users and creates a mention
// notification for each. Unknown usernames, the author and the post owner
// (already notified above) are skipped.
func (s *CommentService) notifyMentions(authorID, postOwnerID, postID, commentID uint, content, preview string) {
	for _, username := range validation.ExtractMentions(content) {
		user, err := s.userRepo.FindByUsername(username)
		if err != nil {
			continue
		}
		if user.ID == authorID || user.ID == postOwnerID {
			continue
		}
		if _, err := s.notifications.Create(CreateNotificationInput{
			RecipientID: user.ID,
			ActorID:     authorID,
			Type:        models.NotificationMention,
			PostID:      &postID,
			CommentID:   &commentID,
			PreviewText: preview,
		}); err != nil {
			log.Printf("Error creating mention notification for user %d: %v", user.ID, err)
		}
	}
}

// EditComment updates the content and fans out edit_comment. Only the author
// may edit.
func (s *CommentService) EditComment(userID, commentID uint, content string) (*models.Comment, error) {
	content = validation.TrimAndLimit(content, validation.MaxCommentLength())
	if content == "" {
		return nil, ErrEmptyComment
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrNotCommentOwner
	}
	if comment.IsDeleted {
		return nil, ErrCommentDeleted
	}

	comment.Content = content
	comment.Version++
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	s.pusher.DeliverToRoom(realtime.PostRoom(comment.PostID), realtime.EventEditComment,
		CommentEvent{Comment: comment.ToResponse(), PostID: comment.PostID})

	return comment, nil
}

// DeleteComment removes a comment. Comments with replies are soft-deleted so
// the thread keeps its shape; leaf comments are removed outright. The author
// and the post owner may delete. Returns whether the delete was soft.
func (s *CommentService) DeleteComment(userID, commentID uint) (bool, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return false, err
	}
	if comment.AuthorID != userID {
		post, err := s.postRepo.FindByID(comment.PostID)
		if err != nil || post.AuthorID != userID {
			return false, ErrNotCommentOwner
		}
	}

	isSoft, err := s.commentRepo.HasReplies(commentID)
	if err != nil {
		return false, err
	}
	if isSoft {
		err = s.commentRepo.SoftDelete(commentID)
	} else {
		err = s.commentRepo.HardDelete(commentID)
	}
	if err != nil {
		return false, err
	}

	s.pusher.DeliverToRoom(realtime.PostRoom(comment.PostID), realtime.EventDeleteComment,
		CommentDeleteEvent{CommentID: commentID, IsSoftDelete: isSoft})

	// Garbage-collect notifications that pointed at the comment.
	s.notifications.CleanupForComment(commentID)

	return isSoft, nil
}

// ReactToComment toggles the user's reaction on a comment and fans out the
// resulting reaction list. Reacting with the same type removes the reaction;
// a different type replaces it.
func (s *CommentService) ReactToComment(userID, commentID uint, reactionType string) ([]models.CommentReaction, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.IsDeleted {
		return nil, ErrCommentDeleted
	}

	existing, err := s.commentRepo.FindReaction(commentID, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case existing != nil && existing.Type == reactionType:
		err = s.commentRepo.RemoveReaction(commentID, userID)
	case existing != nil:
		if err = s.commentRepo.RemoveReaction(commentID, userID); err == nil {
			err = s.commentRepo.AddReaction(&models.CommentReaction{
				CommentID: commentID, UserID: userID, Type: reactionType,
			})
		}
	default:
		err = s.commentRepo.AddReaction(&models.CommentReaction{
			CommentID: commentID, UserID: userID, Type: reactionType,
		})
	}
	if err != nil {
		return nil, err
	}

	reactions, err := s.commentRepo.ListReactions(commentID)
	if err != nil {
		return nil, err
	}

	s.pusher.DeliverToRoom(realtime.PostRoom(comment.PostID), realtime.EventCommentReaction,
		CommentReactionEvent{CommentID: commentID, Reactions: reactions})

	// Notify the comment author on a fresh reaction only, not on removal.
	if existing == nil {
		if _, err := s.notifications.Create(CreateNotificationInput{
			RecipientID: comment.AuthorID,
			ActorID:     userID,
			Type:        models.NotificationReaction,
			PostID:      &comment.PostID,
			CommentID:   &commentID,
			PreviewText: validation.TrimAndLimit(comment.Content, previewLength),
		}); err != nil {
			log.Printf("Error creating reaction notification for comment %d: %v", commentID, err)
		}
	}

	return reactions, nil
}

// GetComments returns a page of a post's comments, oldest first.
func (s *CommentService) GetComments(postID uint, cursor uint, limit int) ([]models.Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.commentRepo.FindByPost(postID, cursor, limit)
}
