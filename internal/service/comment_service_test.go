package service

import (
	"errors"
	"testing"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"github.com/kartiksrathod/Social-Media-sub000/internal/realtime"
	"github.com/kartiksrathod/Social-Media-sub000/internal/testutil"
	"gorm.io/gorm"
)

type commentFixture struct {
	service   *CommentService
	comments  *MockCommentRepository
	posts     *MockPostRepository
	users     *MockUserRepository
	notifRepo *MockNotificationRepository
	pusher    *MockPusher
}

func newCommentFixture() *commentFixture {
	commentRepo := NewMockCommentRepository()
	postRepo := NewMockPostRepository()
	userRepo := NewMockUserRepository()
	notifRepo := NewMockNotificationRepository()
	pusher := NewMockPusher()

	notifications := NewNotificationService(notifRepo, pusher, nil)
	return &commentFixture{
		service:   NewCommentService(commentRepo, postRepo, userRepo, notifications, pusher),
		comments:  commentRepo,
		posts:     postRepo,
		users:     userRepo,
		notifRepo: notifRepo,
		pusher:    pusher,
	}
}

func (f *commentFixture) addUser(id uint, username string) {
	f.users.Create(&models.User{ID: id, Username: username})
}

func (f *commentFixture) addPost(id, authorID uint) {
	f.posts.posts[id] = &models.Post{ID: id, AuthorID: authorID}
}

func TestCreateComment(t *testing.T) {
	f := newCommentFixture()
	f.addUser(1, "alice")
	f.addUser(2, "bob")
	f.addPost(10, 2)

	comment, err := f.service.CreateComment(1, 10, "first!", nil)
	if err != nil {
		t.Fatalf("CreateComment error = %v", err)
	}
	if comment.Version != 1 {
		t.Errorf("new comment version = %d, want 1", comment.Version)
	}

	// Live update fanned out to the post's comment room.
	if len(f.pusher.roomPushes) != 1 {
		t.Fatalf("%d room pushes, want 1", len(f.pusher.roomPushes))
	}
	push := f.pusher.roomPushes[0]
	if push.roomID != realtime.PostRoom(10) || push.event != realtime.EventNewComment {
		t.Errorf("pushed %q to %q", push.event, push.roomID)
	}

	// Durable notification for the post owner.
	owned := f.notifRepo.forRecipient(2)
	if len(owned) != 1 || owned[0].Type != models.NotificationComment {
		t.Errorf("post owner notifications = %v", owned)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)

	tests := []struct {
		name    string
		postID  uint
		content string
		wantErr error
	}{
		{"Empty content", 10, "", ErrEmptyComment},
		{"Whitespace only", 10, "   \n\t  ", ErrEmptyComment},
		{"Unknown post", 999, "hello", gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateComment(1, tt.postID, tt.content, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateComment error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateCommentMentions(t *testing.T) {
	f := newCommentFixture()
	f.addUser(1, "alice") // commenter
	f.addUser(2, "bob")   // post owner
	f.addUser(3, "carol") // mentioned
	f.addPost(10, 2)

	_, err := f.service.CreateComment(1, 10, "hey @carol and @bob and @alice, also @nobody", nil)
	if err != nil {
		t.Fatalf("CreateComment error = %v", err)
	}

	// Carol gets a mention notification.
	carols := f.notifRepo.forRecipient(3)
	if len(carols) != 1 || carols[0].Type != models.NotificationMention {
		t.Errorf("mentioned user notifications = %v", carols)
	}

	// Bob already gets the comment notification; the mention must not
	// duplicate it.
	bobs := f.notifRepo.forRecipient(2)
	if len(bobs) != 1 || bobs[0].Type != models.NotificationComment {
		t.Errorf("post owner notifications = %v", bobs)
	}

	// The author mentioning themselves creates nothing.
	if own := f.notifRepo.forRecipient(1); len(own) != 0 {
		t.Errorf("author received %d notifications for own comment", len(own))
	}
}

func TestEditComment(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	helper := testutil.NewTestHelper(t)
	f.comments.Create(helper.CreateTestComment(1, 10, 1, "original"))

	tests := []struct {
		name    string
		userID  uint
		content string
		wantErr error
	}{
		{"Author edits", 1, "updated", nil},
		{"Non-author rejected", 2, "hijacked", ErrNotCommentOwner},
		{"Empty content rejected", 1, "", ErrEmptyComment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.EditComment(tt.userID, 1, tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EditComment error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	stored, _ := f.comments.FindByID(1)
	if stored.Content != "updated" || stored.Version != 2 {
		t.Errorf("comment after edit: content=%q version=%d", stored.Content, stored.Version)
	}

	var editPushes int
	for _, push := range f.pusher.roomPushes {
		if push.event == realtime.EventEditComment {
			editPushes++
		}
	}
	if editPushes != 1 {
		t.Errorf("%d edit_comment pushes, want 1", editPushes)
	}
}

func TestEditDeletedComment(t *testing.T) {
	f := newCommentFixture()
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 1, IsDeleted: true})

	if _, err := f.service.EditComment(1, 1, "resurrect"); !errors.Is(err, ErrCommentDeleted) {
		t.Errorf("EditComment on deleted comment error = %v, want %v", err, ErrCommentDeleted)
	}
}

func TestDeleteLeafComment(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 1, Content: "leaf"})

	isSoft, err := f.service.DeleteComment(1, 1)
	if err != nil {
		t.Fatalf("DeleteComment error = %v", err)
	}
	if isSoft {
		t.Error("leaf comment was soft-deleted, want hard delete")
	}
	if _, err := f.comments.FindByID(1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Error("leaf comment row still present after delete")
	}
}

func TestDeleteCommentWithReplies(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 1, Content: "parent"})
	parentID := uint(1)
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 3, ParentID: &parentID, Content: "reply"})

	isSoft, err := f.service.DeleteComment(1, 1)
	if err != nil {
		t.Fatalf("DeleteComment error = %v", err)
	}
	if !isSoft {
		t.Error("comment with replies was hard-deleted, want soft delete")
	}

	stored, err := f.comments.FindByID(1)
	if err != nil {
		t.Fatal("soft-deleted comment row removed")
	}
	if !stored.IsDeleted || stored.Content != "" {
		t.Errorf("soft delete left is_deleted=%v content=%q", stored.IsDeleted, stored.Content)
	}

	// The reply keeps its place in the thread.
	if _, err := f.comments.FindByID(2); err != nil {
		t.Error("reply removed by parent's soft delete")
	}
}

func TestDeleteCommentAuthorization(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)

	tests := []struct {
		name    string
		userID  uint
		wantErr error
	}{
		{"Stranger rejected", 5, ErrNotCommentOwner},
		{"Post owner may delete", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := &models.Comment{PostID: 10, AuthorID: 1, Content: "hot take"}
			f.comments.Create(comment)

			_, err := f.service.DeleteComment(tt.userID, comment.ID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeleteComment error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteCommentCleansNotifications(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 1, Content: "gone soon"})
	commentID := uint(1)
	f.notifRepo.Create(&models.Notification{RecipientID: 2, ActorID: 1, CommentID: &commentID})

	if _, err := f.service.DeleteComment(1, 1); err != nil {
		t.Fatalf("DeleteComment error = %v", err)
	}

	if left := f.notifRepo.forRecipient(2); len(left) != 0 {
		t.Errorf("%d notifications survived comment deletion", len(left))
	}
}

func TestGetCommentsPagination(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	for i := 0; i < 5; i++ {
		f.comments.Create(&models.Comment{PostID: 10, AuthorID: 1, Content: "c"})
	}

	// First page: newest three, returned oldest-first.
	page, err := f.service.GetComments(10, 0, 3)
	if err != nil {
		t.Fatalf("GetComments error = %v", err)
	}
	ids := commentIDs(page)
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 4 || ids[2] != 5 {
		t.Fatalf("first page ids = %v, want [3 4 5]", ids)
	}

	// Cursor is the oldest ID of the previous page; the next page holds
	// everything older than it.
	page, err = f.service.GetComments(10, ids[0], 3)
	if err != nil {
		t.Fatalf("GetComments error = %v", err)
	}
	ids = commentIDs(page)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("second page ids = %v, want [1 2]", ids)
	}
}

func commentIDs(comments []models.Comment) []uint {
	ids := make([]uint, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func TestReactToComment(t *testing.T) {
	f := newCommentFixture()
	f.addPost(10, 2)
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 2, Content: "react to me"})

	// Fresh reaction adds and notifies the comment author.
	reactions, err := f.service.ReactToComment(1, 1, "heart")
	if err != nil {
		t.Fatalf("ReactToComment error = %v", err)
	}
	if len(reactions) != 1 || reactions[0].Type != "heart" {
		t.Errorf("reactions = %v", reactions)
	}
	if notifs := f.notifRepo.forRecipient(2); len(notifs) != 1 || notifs[0].Type != models.NotificationReaction {
		t.Errorf("author notifications after fresh reaction = %v", notifs)
	}

	// Different type replaces, no new notification.
	reactions, err = f.service.ReactToComment(1, 1, "laugh")
	if err != nil {
		t.Fatalf("ReactToComment error = %v", err)
	}
	if len(reactions) != 1 || reactions[0].Type != "laugh" {
		t.Errorf("reactions after replace = %v", reactions)
	}
	if notifs := f.notifRepo.forRecipient(2); len(notifs) != 1 {
		t.Errorf("replace created an extra notification: %d", len(notifs))
	}

	// Same type toggles off.
	reactions, err = f.service.ReactToComment(1, 1, "laugh")
	if err != nil {
		t.Fatalf("ReactToComment error = %v", err)
	}
	if len(reactions) != 0 {
		t.Errorf("reactions after toggle-off = %v", reactions)
	}

	var reactionPushes int
	for _, push := range f.pusher.roomPushes {
		if push.event == realtime.EventCommentReaction {
			reactionPushes++
		}
	}
	if reactionPushes != 3 {
		t.Errorf("%d comment_reaction pushes, want 3", reactionPushes)
	}
}

func TestReactToDeletedComment(t *testing.T) {
	f := newCommentFixture()
	f.comments.Create(&models.Comment{PostID: 10, AuthorID: 2, IsDeleted: true})

	if _, err := f.service.ReactToComment(1, 1, "heart"); !errors.Is(err, ErrCommentDeleted) {
		t.Errorf("ReactToComment on deleted comment error = %v, want %v", err, ErrCommentDeleted)
	}
}
