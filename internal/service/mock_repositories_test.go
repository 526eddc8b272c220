package service

import (
	"sort"

	"github.com/kartiksrathod/Social-Media-sub000/internal/models"
	"gorm.io/gorm"
)

// pushRecord captures one call into the mock pusher.
type pushRecord struct {
	userID    uint
	roomID    string
	event     string
	payload   interface{}
	excluding []string
}

// MockPusher records deliveries instead of writing to sockets. Like the real
// dispatcher it never fails, so services see the same fire-and-forget
// contract in tests.
type MockPusher struct {
	userPushes []pushRecord
	roomPushes []pushRecord
}

func NewMockPusher() *MockPusher {
	return &MockPusher{}
}

func (p *MockPusher) DeliverToUser(userID uint, event string, payload interface{}) {
	p.userPushes = append(p.userPushes, pushRecord{userID: userID, event: event, payload: payload})
}

func (p *MockPusher) DeliverToRoom(roomID, event string, payload interface{}, excluding ...string) {
	p.roomPushes = append(p.roomPushes, pushRecord{roomID: roomID, event: event, payload: payload, excluding: excluding})
}

func (p *MockPusher) userPushesFor(userID uint) []pushRecord {
	var out []pushRecord
	for _, rec := range p.userPushes {
		if rec.userID == userID {
			out = append(out, rec)
		}
	}
	return out
}

// MockNotificationRepository is an in-memory NotificationRepositoryInterface
type MockNotificationRepository struct {
	notifications map[uint]*models.Notification
	nextID        uint
	failCreate    bool
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[uint]*models.Notification),
		nextID:        1,
	}
}

func (m *MockNotificationRepository) Create(notification *models.Notification) error {
	if m.failCreate {
		return gorm.ErrInvalidTransaction
	}
	if notification.ID == 0 {
		notification.ID = m.nextID
		m.nextID++
	}
	m.notifications[notification.ID] = notification
	return nil
}

func (m *MockNotificationRepository) FindByID(id uint) (*models.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockNotificationRepository) FindForRecipient(recipientID uint, cursor uint, limit int) ([]models.Notification, error) {
	var result []models.Notification
	for _, n := range m.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if cursor > 0 && n.ID >= cursor {
			continue
		}
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockNotificationRepository) CountUnread(recipientID uint) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *MockNotificationRepository) MarkRead(id uint) error {
	if n, ok := m.notifications[id]; ok {
		n.Read = true
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *MockNotificationRepository) MarkAllRead(recipientID uint) (int64, error) {
	var flipped int64
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && !n.Read {
			n.Read = true
			flipped++
		}
	}
	return flipped, nil
}

func (m *MockNotificationRepository) DeleteForPost(postID uint) error {
	for id, n := range m.notifications {
		if n.PostID != nil && *n.PostID == postID {
			delete(m.notifications, id)
		}
	}
	return nil
}

func (m *MockNotificationRepository) DeleteForComment(commentID uint) error {
	for id, n := range m.notifications {
		if n.CommentID != nil && *n.CommentID == commentID {
			delete(m.notifications, id)
		}
	}
	return nil
}

func (m *MockNotificationRepository) forRecipient(recipientID uint) []*models.Notification {
	var out []*models.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}

// MockUserRepository is an in-memory UserRepositoryInterface
type MockUserRepository struct {
	users map[uint]*models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uint]*models.User)}
}

func (m *MockUserRepository) Create(user *models.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) UpdateOnlineStatus(userID uint, isOnline bool) error {
	if u, ok := m.users[userID]; ok {
		u.IsOnline = isOnline
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *MockUserRepository) SearchUsers(query string, limit int) ([]models.User, error) {
	var result []models.User
	for _, u := range m.users {
		if len(result) >= limit {
			break
		}
		result = append(result, *u)
	}
	return result, nil
}

// MockPostRepository is an in-memory PostRepositoryInterface
type MockPostRepository struct {
	posts map[uint]*models.Post
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{posts: make(map[uint]*models.Post)}
}

func (m *MockPostRepository) FindByID(id uint) (*models.Post, error) {
	if p, ok := m.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// MockCommentRepository is an in-memory CommentRepositoryInterface
type MockCommentRepository struct {
	comments  map[uint]*models.Comment
	reactions []models.CommentReaction
	nextID    uint
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
	}
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == 0 {
		comment.ID = m.nextID
		m.nextID++
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) FindByID(id uint) (*models.Comment, error) {
	if c, ok := m.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCommentRepository) FindByPost(postID uint, cursor uint, limit int) ([]models.Comment, error) {
	var result []models.Comment
	for _, c := range m.comments {
		if c.PostID != postID {
			continue
		}
		if cursor > 0 && c.ID >= cursor {
			continue
		}
		result = append(result, *c)
	}
	// Newest page first, then reversed to chronological, same as the
	// gorm repository.
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result, nil
}

func (m *MockCommentRepository) Update(comment *models.Comment) error {
	if _, ok := m.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) SoftDelete(commentID uint) error {
	if c, ok := m.comments[commentID]; ok {
		c.IsDeleted = true
		c.Content = ""
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *MockCommentRepository) HardDelete(commentID uint) error {
	if _, ok := m.comments[commentID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.comments, commentID)
	return nil
}

func (m *MockCommentRepository) HasReplies(commentID uint) (bool, error) {
	for _, c := range m.comments {
		if c.ParentID != nil && *c.ParentID == commentID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCommentRepository) AddReaction(reaction *models.CommentReaction) error {
	m.reactions = append(m.reactions, *reaction)
	return nil
}

func (m *MockCommentRepository) RemoveReaction(commentID, userID uint) error {
	kept := m.reactions[:0]
	for _, r := range m.reactions {
		if r.CommentID == commentID && r.UserID == userID {
			continue
		}
		kept = append(kept, r)
	}
	m.reactions = kept
	return nil
}

func (m *MockCommentRepository) FindReaction(commentID, userID uint) (*models.CommentReaction, error) {
	for i := range m.reactions {
		if m.reactions[i].CommentID == commentID && m.reactions[i].UserID == userID {
			r := m.reactions[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *MockCommentRepository) ListReactions(commentID uint) ([]models.CommentReaction, error) {
	var result []models.CommentReaction
	for _, r := range m.reactions {
		if r.CommentID == commentID {
			result = append(result, r)
		}
	}
	return result, nil
}

// MockConversationRepository is an in-memory ConversationRepositoryInterface
type MockConversationRepository struct {
	conversations map[uint]*models.Conversation
	nextID        uint
}

func NewMockConversationRepository() *MockConversationRepository {
	return &MockConversationRepository{
		conversations: make(map[uint]*models.Conversation),
		nextID:        1,
	}
}

func (m *MockConversationRepository) Create(conversation *models.Conversation) error {
	if conversation.ID == 0 {
		conversation.ID = m.nextID
		m.nextID++
	}
	m.conversations[conversation.ID] = conversation
	return nil
}

func (m *MockConversationRepository) FindByID(id uint) (*models.Conversation, error) {
	if c, ok := m.conversations[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockConversationRepository) FindDirect(userID1, userID2 uint) (*models.Conversation, error) {
	for _, c := range m.conversations {
		ids, _ := m.ParticipantIDs(c.ID)
		if len(ids) != 2 {
			continue
		}
		if (ids[0] == userID1 && ids[1] == userID2) || (ids[0] == userID2 && ids[1] == userID1) {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockConversationRepository) ListForUser(userID uint, limit int) ([]models.Conversation, error) {
	var result []models.Conversation
	for _, c := range m.conversations {
		if len(result) >= limit {
			break
		}
		if ok, _ := m.IsParticipant(c.ID, userID); ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *MockConversationRepository) ParticipantIDs(conversationID uint) ([]uint, error) {
	c, ok := m.conversations[conversationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ids := make([]uint, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.UserID)
	}
	return ids, nil
}

func (m *MockConversationRepository) IsParticipant(conversationID, userID uint) (bool, error) {
	ids, err := m.ParticipantIDs(conversationID)
	if err != nil {
		return false, nil
	}
	for _, id := range ids {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

// MockMessageRepository is an in-memory MessageRepositoryInterface
type MockMessageRepository struct {
	messages map[uint]*models.Message
	nextID   uint
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{
		messages: make(map[uint]*models.Message),
		nextID:   1,
	}
}

func (m *MockMessageRepository) Create(message *models.Message) error {
	if message.ID == 0 {
		message.ID = m.nextID
		m.nextID++
	}
	m.messages[message.ID] = message
	return nil
}

func (m *MockMessageRepository) FindByID(id uint) (*models.Message, error) {
	if msg, ok := m.messages[id]; ok {
		return msg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMessageRepository) FindByClientID(clientID string, conversationID uint) (*models.Message, error) {
	for _, msg := range m.messages {
		if msg.ClientID == clientID && msg.ConversationID == conversationID {
			return msg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMessageRepository) FindConversationCursor(conversationID uint, cursor uint, limit int) ([]models.Message, error) {
	var result []models.Message
	for _, msg := range m.messages {
		if msg.ConversationID != conversationID {
			continue
		}
		if cursor > 0 && msg.ID >= cursor {
			continue
		}
		result = append(result, *msg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
