package entity

import (
	"time"
)

// MessageRole distinguishes user-authored messages from synthetic
// membership/state event entries.
type MessageRole string

const (
	MessageRoleUser   MessageRole = "user"
	MessageRoleSystem MessageRole = "system"
)

// Message is a single chat entry, embedded in the owning Group or
// PrivateChat document. System messages have no sender.
type Message struct {
	ID          string      `bson:"_id" json:"id"`
	SenderID    string      `bson:"sender_id,omitempty" json:"sender_id,omitempty"`
	Content     string      `bson:"content" json:"content"`
	Attachments []string    `bson:"attachments,omitempty" json:"attachments,omitempty"`
	Role        MessageRole `bson:"role" json:"role"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}

// Group is a named multi-member chat room. The Admins/Members arrays are a
// materialized cache of the memberships collection and are only ever written
// in the same session as the membership row they mirror.
type Group struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []string  `bson:"tags" json:"tags"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	Admins      []string  `bson:"admins" json:"admins"`
	Members     []string  `bson:"members" json:"members"`
	Messages    []Message `bson:"messages" json:"messages"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	IsBanned    bool      `bson:"is_banned" json:"is_banned"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// HasMember reports whether the cached members array contains userID.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// HasAdmin reports whether the cached admins array contains userID.
func (g *Group) HasAdmin(userID string) bool {
	for _, id := range g.Admins {
		if id == userID {
			return true
		}
	}
	return false
}

// MembershipRole is a user's role within a single group.
type MembershipRole string

const (
	MembershipRoleAdmin  MembershipRole = "admin"
	MembershipRoleMember MembershipRole = "member"
)

// Membership is the authoritative record of a (group, user) relationship.
// Unique per pair.
type Membership struct {
	ID       string         `bson:"_id,omitempty" json:"id"`
	GroupID  string         `bson:"group_id" json:"group_id"`
	UserID   string         `bson:"user_id" json:"user_id"`
	Role     MembershipRole `bson:"role" json:"role"`
	JoinedAt time.Time      `bson:"joined_at" json:"joined_at"`
}

// GroupRating is a one-per-(rater, ratee) "like" within a group.
// The value is fixed at 1; rating again removes it.
type GroupRating struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	GroupID   string    `bson:"group_id" json:"group_id"`
	RaterID   string    `bson:"rater_id" json:"rater_id"`
	RateeID   string    `bson:"ratee_id" json:"ratee_id"`
	Value     int       `bson:"value" json:"value"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ChatStatus is the friend-request state of a private chat.
// pending transitions exactly once to accepted or rejected.
type ChatStatus string

const (
	ChatStatusPending  ChatStatus = "pending"
	ChatStatusAccepted ChatStatus = "accepted"
	ChatStatusRejected ChatStatus = "rejected"
)

// PrivateChat is a one-to-one message thread created by a friend request.
// Unique per unordered (sender, receiver) pair.
type PrivateChat struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	SenderID    string     `bson:"sender_id" json:"sender_id"`
	ReceiverID  string     `bson:"receiver_id" json:"receiver_id"`
	Status      ChatStatus `bson:"status" json:"status"`
	Messages    []Message  `bson:"messages" json:"messages"`
	LastMessage *Message   `bson:"last_message,omitempty" json:"last_message,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether userID is one of the two chat parties.
func (c *PrivateChat) HasParticipant(userID string) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}

// OtherParticipant returns the counterpart of userID in the chat.
func (c *PrivateChat) OtherParticipant(userID string) string {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

// ChatTarget discriminates the destination of an outgoing message.
type ChatTarget string

const (
	ChatTargetGroup   ChatTarget = "group"
	ChatTargetPrivate ChatTarget = "private"
)
