package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

// In-memory fakes shared by the usecase tests. They implement the
// repository contracts with just enough fidelity for the business
// rules under test; none of them are safe for concurrent use.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type seqUUID struct {
	n int
}

func (s *seqUUID) NewUUID() string {
	s.n++
	return fmt.Sprintf("uuid-%d", s.n)
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, contract.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	user, ok := r.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	user.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) SetOTP(ctx context.Context, id string, otp *entity.OTP) error {
	user, ok := r.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	user.OTP = otp
	return nil
}

func (r *fakeUserRepo) SetBanned(ctx context.Context, id string, banned bool) error {
	user, ok := r.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	user.IsBanned = banned
	return nil
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountUsersPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return nil, nil
}

func (r *fakeUserRepo) CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error) {
	return nil, nil
}

type fakeGroupRepo struct {
	groups      map[string]*entity.Group
	memberships map[string]*entity.Membership
}

var _ contract.IGroupRepository = (*fakeGroupRepo)(nil)

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:      make(map[string]*entity.Group),
		memberships: make(map[string]*entity.Membership),
	}
}

func (r *fakeGroupRepo) CreateGroupWithCreator(ctx context.Context, group *entity.Group, membership *entity.Membership) error {
	r.groups[group.ID] = group
	r.memberships[membership.ID] = membership
	return nil
}

func (r *fakeGroupRepo) GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error) {
	group, ok := r.groups[groupID]
	if !ok {
		return nil, contract.ErrGroupNotFound
	}
	copied := *group
	return &copied, nil
}

func (r *fakeGroupRepo) GetGroups(ctx context.Context, opts *contract.GroupFilterOptions) ([]*entity.Group, int64, error) {
	out := make([]*entity.Group, 0, len(r.groups))
	for _, group := range r.groups {
		if group.IsBanned && !opts.IncludeBanned {
			continue
		}
		out = append(out, group)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGroupRepo) AddMember(ctx context.Context, groupID string, membership *entity.Membership, systemMessage entity.Message) error {
	group, ok := r.groups[groupID]
	if !ok {
		return contract.ErrGroupNotFound
	}
	r.memberships[membership.ID] = membership
	group.Members = append(group.Members, membership.UserID)
	group.Messages = append(group.Messages, systemMessage)
	group.UpdatedAt = systemMessage.CreatedAt
	return nil
}

func (r *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, userID, promoteUserID string, systemMessages []entity.Message) error {
	group, ok := r.groups[groupID]
	if !ok {
		return contract.ErrGroupNotFound
	}
	group.Members = remove(group.Members, userID)
	group.Admins = remove(group.Admins, userID)
	for id, m := range r.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			delete(r.memberships, id)
		}
	}
	if promoteUserID != "" {
		group.Admins = append(group.Admins, promoteUserID)
		for _, m := range r.memberships {
			if m.GroupID == groupID && m.UserID == promoteUserID {
				m.Role = entity.MembershipRoleAdmin
			}
		}
	}
	group.Messages = append(group.Messages, systemMessages...)
	return nil
}

func (r *fakeGroupRepo) DeleteGroupCascade(ctx context.Context, groupID string) error {
	delete(r.groups, groupID)
	for id, m := range r.memberships {
		if m.GroupID == groupID {
			delete(r.memberships, id)
		}
	}
	return nil
}

func (r *fakeGroupRepo) AppendMessage(ctx context.Context, groupID string, message entity.Message) error {
	group, ok := r.groups[groupID]
	if !ok {
		return contract.ErrGroupNotFound
	}
	group.Messages = append(group.Messages, message)
	group.UpdatedAt = message.CreatedAt
	return nil
}

func (r *fakeGroupRepo) GetMembership(ctx context.Context, groupID, userID string) (*entity.Membership, error) {
	for _, m := range r.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, contract.ErrMembershipNotFound
}

func (r *fakeGroupRepo) GetMembershipsByUser(ctx context.Context, userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (r *fakeGroupRepo) GetMembershipsByGroup(ctx context.Context, groupID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.memberships {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (r *fakeGroupRepo) SetGroupBanned(ctx context.Context, groupID string, banned bool) error {
	group, ok := r.groups[groupID]
	if !ok {
		return contract.ErrGroupNotFound
	}
	group.IsBanned = banned
	return nil
}

func (r *fakeGroupRepo) GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	return nil, nil
}

func (r *fakeGroupRepo) CountGroups(ctx context.Context) (int64, error) {
	return int64(len(r.groups)), nil
}

func (r *fakeGroupRepo) CountGroupsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return nil, nil
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

type fakeRatingRepo struct {
	ratings map[string]*entity.GroupRating
}

var _ contract.IRatingRepository = (*fakeRatingRepo)(nil)

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[string]*entity.GroupRating)}
}

func (r *fakeRatingRepo) GetRating(ctx context.Context, groupID, raterID, rateeID string) (*entity.GroupRating, error) {
	for _, rating := range r.ratings {
		if rating.GroupID == groupID && rating.RaterID == raterID && rating.RateeID == rateeID {
			return rating, nil
		}
	}
	return nil, contract.ErrRatingNotFound
}

func (r *fakeRatingRepo) InsertRating(ctx context.Context, rating *entity.GroupRating) error {
	r.ratings[rating.ID] = rating
	return nil
}

func (r *fakeRatingRepo) DeleteRating(ctx context.Context, ratingID string) error {
	if _, ok := r.ratings[ratingID]; !ok {
		return contract.ErrRatingNotFound
	}
	delete(r.ratings, ratingID)
	return nil
}

func (r *fakeRatingRepo) CountRatingsForUser(ctx context.Context, groupID, rateeID string) (int64, error) {
	var n int64
	for _, rating := range r.ratings {
		if rating.GroupID == groupID && rating.RateeID == rateeID {
			n++
		}
	}
	return n, nil
}

type fakeChatRepo struct {
	chats map[string]*entity.PrivateChat
}

var _ contract.IChatRepository = (*fakeChatRepo)(nil)

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[string]*entity.PrivateChat)}
}

func (r *fakeChatRepo) CreateChat(ctx context.Context, chat *entity.PrivateChat) error {
	r.chats[chat.ID] = chat
	return nil
}

func (r *fakeChatRepo) GetChatByID(ctx context.Context, chatID string) (*entity.PrivateChat, error) {
	chat, ok := r.chats[chatID]
	if !ok {
		return nil, contract.ErrChatNotFound
	}
	copied := *chat
	return &copied, nil
}

func (r *fakeChatRepo) GetChatByPair(ctx context.Context, a, b string) (*entity.PrivateChat, error) {
	for _, chat := range r.chats {
		if (chat.SenderID == a && chat.ReceiverID == b) || (chat.SenderID == b && chat.ReceiverID == a) {
			return chat, nil
		}
	}
	return nil, contract.ErrChatNotFound
}

func (r *fakeChatRepo) UpdateStatus(ctx context.Context, chatID string, status entity.ChatStatus, systemMessage entity.Message) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return contract.ErrChatNotFound
	}
	chat.Status = status
	chat.Messages = append(chat.Messages, systemMessage)
	chat.UpdatedAt = systemMessage.CreatedAt
	return nil
}

func (r *fakeChatRepo) AppendMessage(ctx context.Context, chatID string, message entity.Message) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return contract.ErrChatNotFound
	}
	chat.Messages = append(chat.Messages, message)
	chat.LastMessage = &message
	chat.UpdatedAt = message.CreatedAt
	return nil
}

func (r *fakeChatRepo) GetChatsByUser(ctx context.Context, userID string) ([]*entity.PrivateChat, error) {
	var out []*entity.PrivateChat
	for _, chat := range r.chats {
		if chat.HasParticipant(userID) {
			out = append(out, chat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *fakeChatRepo) GetPendingForReceiver(ctx context.Context, receiverID string) ([]*entity.PrivateChat, error) {
	var out []*entity.PrivateChat
	for _, chat := range r.chats {
		if chat.ReceiverID == receiverID && chat.Status == entity.ChatStatusPending {
			out = append(out, chat)
		}
	}
	return out, nil
}

type fakeTokenRepo struct {
	tokens map[string]*entity.Token
}

var _ contract.ITokenRepository = (*fakeTokenRepo)(nil)

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*entity.Token)}
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	r.tokens[token.ID] = token
	return nil
}

func (r *fakeTokenRepo) GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	for _, token := range r.tokens {
		if token.UserID == userID && !token.Revoke {
			return token, nil
		}
	}
	return nil, contract.ErrTokenNotFound
}

func (r *fakeTokenRepo) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	token, ok := r.tokens[tokenID]
	if !ok {
		return contract.ErrTokenNotFound
	}
	token.TokenHash = tokenHash
	token.ExpiresAt = expiry
	return nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, id string) error {
	token, ok := r.tokens[id]
	if !ok {
		return contract.ErrTokenNotFound
	}
	token.Revoke = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	for _, token := range r.tokens {
		if token.UserID == userID && token.TokenType == tokenType {
			token.Revoke = true
		}
	}
	return nil
}

// fakeEmailService records sends instead of dialing SMTP.
type fakeEmailService struct {
	sent []string
}

func (s *fakeEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	s.sent = append(s.sent, to)
	return nil
}

// fakeRandomGen returns fixed material so tests can replay codes.
type fakeRandomGen struct {
	otp string
}

func (g *fakeRandomGen) GenerateRandomToken(n int) (string, error) {
	return "random-token", nil
}

func (g *fakeRandomGen) GenerateOTPCode(digits int) (string, error) {
	return g.otp, nil
}

// fakeJWT encodes the user ID in the token string.
type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "access:" + userID, nil
}

func (fakeJWT) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	return "refresh:" + userID, nil
}

func (fakeJWT) ParseAccessToken(token string) (*entity.Claims, error) {
	if len(token) < 8 || token[:7] != "access:" {
		return nil, fmt.Errorf("invalid token")
	}
	return &entity.Claims{UserID: token[7:]}, nil
}

func (fakeJWT) ParseRefreshToken(token string) (*entity.Claims, error) {
	if len(token) < 9 || token[:8] != "refresh:" {
		return nil, fmt.Errorf("invalid token")
	}
	return &entity.Claims{UserID: token[8:]}, nil
}

type passValidator struct{}

func (passValidator) ValidateEmail(email string) error            { return nil }
func (passValidator) ValidatePasswordStrength(password string) error { return nil }

type fakeBlogRepo struct {
	blogs map[string]*entity.Blog
}

var _ contract.IBlogRepository = (*fakeBlogRepo)(nil)

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[string]*entity.Blog)}
}

func (r *fakeBlogRepo) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	if blog.IsFeatured {
		n, _ := r.CountFeaturedByAuthor(ctx, blog.AuthorID)
		if n >= entity.MaxFeaturedBlogs {
			return contract.ErrFeaturedLimit
		}
	}
	copied := *blog
	r.blogs[blog.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	blog, ok := r.blogs[blogID]
	if !ok {
		return nil, contract.ErrBlogNotFound
	}
	copied := *blog
	return &copied, nil
}

func (r *fakeBlogRepo) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	out := make([]*entity.Blog, 0, len(r.blogs))
	for _, blog := range r.blogs {
		copied := *blog
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeBlogRepo) GetRelatedBlogs(ctx context.Context, tags []string, excludeID string, limit int) ([]*entity.Blog, error) {
	var out []*entity.Blog
	for _, blog := range r.blogs {
		if blog.ID == excludeID {
			continue
		}
		for _, want := range tags {
			if hasTag(blog.Tags, want) {
				copied := *blog
				out = append(out, &copied)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeBlogRepo) GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error) {
	var out []*entity.Blog
	for _, blog := range r.blogs {
		if blog.IsFeatured {
			copied := *blog
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBlogRepo) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	blog, ok := r.blogs[blogID]
	if !ok {
		return contract.ErrBlogNotFound
	}
	if featured, ok := updates["is_featured"].(bool); ok && featured && !blog.IsFeatured {
		n, _ := r.CountFeaturedByAuthor(ctx, blog.AuthorID)
		if n >= entity.MaxFeaturedBlogs {
			return contract.ErrFeaturedLimit
		}
	}
	if v, ok := updates["title"].(string); ok {
		blog.Title = v
	}
	if v, ok := updates["content"].(string); ok {
		blog.Content = v
	}
	if v, ok := updates["tags"].([]string); ok {
		blog.Tags = v
	}
	if v, ok := updates["image"].(string); ok {
		blog.Image = v
	}
	if v, ok := updates["is_featured"].(bool); ok {
		blog.IsFeatured = v
	}
	if v, ok := updates["updated_at"].(time.Time); ok {
		blog.UpdatedAt = v
	}
	return nil
}

func (r *fakeBlogRepo) DeleteBlog(ctx context.Context, blogID string) error {
	if _, ok := r.blogs[blogID]; !ok {
		return contract.ErrBlogNotFound
	}
	delete(r.blogs, blogID)
	return nil
}

func (r *fakeBlogRepo) CountFeaturedByAuthor(ctx context.Context, authorID string) (int64, error) {
	var n int64
	for _, blog := range r.blogs {
		if blog.AuthorID == authorID && blog.IsFeatured {
			n++
		}
	}
	return n, nil
}

func (r *fakeBlogRepo) GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	return nil, nil
}

func (r *fakeBlogRepo) CountBlogs(ctx context.Context) (int64, error) {
	return int64(len(r.blogs)), nil
}

func (r *fakeBlogRepo) CountBlogsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return nil, nil
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
}

var _ contract.ICommentRepository = (*fakeCommentRepo)(nil)

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *fakeCommentRepo) CreateComment(ctx context.Context, comment *entity.Comment) error {
	copied := *comment
	r.comments[comment.ID] = &copied
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	comment, ok := r.comments[commentID]
	if !ok {
		return nil, contract.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) GetCommentsByBlog(ctx context.Context, blogID string, page, pageSize int) ([]*entity.Comment, int64, error) {
	var out []*entity.Comment
	for _, comment := range r.comments {
		if comment.BlogID == blogID {
			copied := *comment
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) UpdateComment(ctx context.Context, commentID, content string) error {
	comment, ok := r.comments[commentID]
	if !ok {
		return contract.ErrCommentNotFound
	}
	comment.Content = content
	return nil
}

func (r *fakeCommentRepo) DeleteComment(ctx context.Context, commentID string) error {
	if _, ok := r.comments[commentID]; !ok {
		return contract.ErrCommentNotFound
	}
	delete(r.comments, commentID)
	return nil
}

func (r *fakeCommentRepo) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	for id, comment := range r.comments {
		if comment.BlogID == blogID {
			delete(r.comments, id)
		}
	}
	return nil
}

func (r *fakeCommentRepo) CountComments(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

// fakeCache is a plain map cache.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok := c.data[key]
	return raw, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *fakeCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	for key := range c.data {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.data, key)
		}
	}
	return nil
}
