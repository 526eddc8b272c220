package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"gorm.io/gorm"
)

// TestHelper provides utility functions for tests
type TestHelper struct {
	t *testing.T
}

func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// CreateTestUser creates a test user with default values
func (h *TestHelper) CreateTestUser(id uint, username string) *models.User {
	if id == 0 {
		id = 1
	}
	if username == "" {
		username = "testuser"
	}

	return &models.User{
		ID:        id,
		Username:  username,
		FullName:  "Test User",
		Avatar:    "https://example.com/avatar.jpg",
		IsOnline:  false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// CreateTestNotification creates a test notification with default values
func (h *TestHelper) CreateTestNotification(id, recipientID, actorID uint, notificationType models.NotificationType) *models.Notification {
	if id == 0 {
		id = 1
	}
	if recipientID == 0 {
		recipientID = 1
	}
	if actorID == 0 {
		actorID = 2
	}
	if notificationType == "" {
		notificationType = models.NotificationLike
	}

	return &models.Notification{
		ID:          id,
		RecipientID: recipientID,
		ActorID:     actorID,
		Actor:       models.User{ID: actorID, Username: "actor"},
		Type:        notificationType,
		Read:        false,
		CreatedAt:   time.Now(),
	}
}

// CreateTestComment creates a test comment with default values
func (h *TestHelper) CreateTestComment(id, postID, authorID uint, content string) *models.Comment {
	if id == 0 {
		id = 1
	}
	if postID == 0 {
		postID = 1
	}
	if authorID == 0 {
		authorID = 1
	}
	if content == "" {
		content = "Test comment"
	}

	return &models.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  authorID,
		Author:    models.User{ID: authorID, Username: "commenter"},
		Content:   content,
		Version:   1,
		CreatedAt: time.Now(),
	}
}

// SetupTestEnv sets up required environment variables for testing
func (h *TestHelper) SetupTestEnv() {
	os.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	os.Setenv("DATABASE_URL", "")
}

// TeardownTestEnv cleans up environment variables after testing
func (h *TestHelper) TeardownTestEnv() {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DATABASE_URL")
}

// AssertError checks if an error occurred when it should (or shouldn't)
func (h *TestHelper) AssertError(err error, shouldErr bool, testName string) {
	if (err != nil) != shouldErr {
		if shouldErr {
			h.t.Errorf("%s: expected error but got nil", testName)
		} else {
			h.t.Errorf("%s: unexpected error: %v", testName, err)
		}
	}
}

// AssertEqual checks if two values are equal
func (h *TestHelper) AssertEqual(got, want interface{}, testName string) {
	if got != want {
		h.t.Errorf("%s: got %v, want %v", testName, got, want)
	}
}

// GetRecordNotFoundError returns the error repositories report for a missing row
func GetRecordNotFoundError() error {
	return gorm.ErrRecordNotFound
}
