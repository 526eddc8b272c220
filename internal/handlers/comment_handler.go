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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentInput struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

type editCommentInput struct {
	Content string `json:"content"`
}

type reactionInput struct {
	Type string `json:"type"`
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	postID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_post_id", "Invalid post id")
	}

	var input createCommentInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	comment, err := h.commentService.CreateComment(userID, postID, input.Content, input.ParentID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			return httpx.BadRequest(c, "missing_content", "Content is required")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpx.NotFound(c, "post_not_found", "Post not found")
		}
		return httpx.Internal(c, "create_comment_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(comment.ToResponse())
}

func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	postID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_post_id", "Invalid post id")
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

	comments, err := h.commentService.GetComments(postID, cursor, limit)
	if err != nil {
		return httpx.Internal(c, "fetch_comments_failed")
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].ToResponse())
	}

	return c.JSON(fiber.Map{"comments": responses, "post_id": postID})
}

func (h *CommentHandler) EditComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	commentID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_comment_id", "Invalid comment id")
	}

	var input editCommentInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	comment, err := h.commentService.EditComment(userID, commentID, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			return httpx.BadRequest(c, "missing_content", "Content is required")
		case errors.Is(err, service.ErrNotCommentOwner):
			return httpx.Forbidden(c, "not_comment_owner", "Comment belongs to another user")
		case errors.Is(err, service.ErrCommentDeleted):
			return httpx.BadRequest(c, "comment_deleted", "Comment has been deleted")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return httpx.NotFound(c, "comment_not_found", "Comment not found")
		}
		return httpx.Internal(c, "edit_comment_failed")
	}

	return c.JSON(comment.ToResponse())
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	commentID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_comment_id", "Invalid comment id")
	}

	isSoft, err := h.commentService.DeleteComment(userID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotCommentOwner):
			return httpx.Forbidden(c, "not_comment_owner", "Comment belongs to another user")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return httpx.NotFound(c, "comment_not_found", "Comment not found")
		}
		return httpx.Internal(c, "delete_comment_failed")
	}

	return c.JSON(fiber.Map{"success": true, "is_soft_delete": isSoft})
}

func (h *CommentHandler) ReactToComment(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	commentID, err := httpx.ParamUint(c, "id")
	if err != nil {
		return httpx.BadRequest(c, "invalid_comment_id", "Invalid comment id")
	}

	var input reactionInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.Type == "" {
		return httpx.BadRequest(c, "missing_reaction_type", "Reaction type is required")
	}

	reactions, err := h.commentService.ReactToComment(userID, commentID, input.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentDeleted):
			return httpx.BadRequest(c, "comment_deleted", "Comment has been deleted")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return httpx.NotFound(c, "comment_not_found", "Comment not found")
		}
		return httpx.Internal(c, "react_to_comment_failed")
	}

	return c.JSON(fiber.Map{"comment_id": commentID, "reactions": reactions})
}
