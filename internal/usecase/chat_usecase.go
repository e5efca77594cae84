package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	uc "counselconnect/internal/usecase/contract"
)

// ChatUsecase implements the friend-request state machine and message
// delivery for both chat targets. A private thread only accepts
// messages after its request has been accepted; a rejected or pending
// thread never does.
type ChatUsecase struct {
	chatRepo  contract.IChatRepository
	groupRepo contract.IGroupRepository
	userRepo  contract.IUserRepository
	uuidGen   contract.IUUIDGenerator
	logger    uc.IAppLogger
}

var _ uc.IChatUseCase = (*ChatUsecase)(nil)

func NewChatUsecase(
	chatRepo contract.IChatRepository,
	groupRepo contract.IGroupRepository,
	userRepo contract.IUserRepository,
	uuidGen contract.IUUIDGenerator,
	logger uc.IAppLogger,
) *ChatUsecase {
	return &ChatUsecase{
		chatRepo:  chatRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		uuidGen:   uuidGen,
		logger:    logger,
	}
}

// SendFriendRequest opens a pending private chat towards another user.
// Only one chat may exist per pair, whatever its state or direction.
func (c *ChatUsecase) SendFriendRequest(ctx context.Context, senderID, receiverID string) (*entity.PrivateChat, error) {
	if senderID == receiverID {
		return nil, ErrSelfRequest
	}
	receiver, err := c.userRepo.GetUserByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		c.logger.Errorf("friend request: lookup receiver %s: %v", receiverID, err)
		return nil, errors.New("failed to send friend request")
	}
	if receiver.IsBanned {
		return nil, ErrNotFound
	}

	existing, err := c.chatRepo.GetChatByPair(ctx, senderID, receiverID)
	switch {
	case err == nil:
		switch existing.Status {
		case entity.ChatStatusAccepted:
			return nil, ErrAlreadyFriends
		case entity.ChatStatusRejected:
			return nil, ErrRequestRejected
		default:
			return nil, ErrRequestPending
		}
	case errors.Is(err, contract.ErrChatNotFound):
	default:
		c.logger.Errorf("friend request: lookup pair (%s, %s): %v", senderID, receiverID, err)
		return nil, errors.New("failed to send friend request")
	}

	sender, err := c.userRepo.GetUserByID(ctx, senderID)
	if err != nil {
		c.logger.Errorf("friend request: lookup sender %s: %v", senderID, err)
		return nil, errors.New("failed to send friend request")
	}

	now := time.Now().UTC()
	notice := entity.Message{
		ID:        c.uuidGen.NewUUID(),
		Content:   fmt.Sprintf("%s sent you a friend request", sender.Name),
		Role:      entity.MessageRoleSystem,
		CreatedAt: now,
	}
	chat := &entity.PrivateChat{
		ID:         c.uuidGen.NewUUID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     entity.ChatStatusPending,
		Messages:   []entity.Message{notice},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.chatRepo.CreateChat(ctx, chat); err != nil {
		c.logger.Errorf("friend request: create chat (%s -> %s): %v", senderID, receiverID, err)
		return nil, errors.New("failed to send friend request")
	}
	return chat, nil
}

// RespondToFriendRequest settles a pending request. Only the receiver
// may respond, and only once.
func (c *ChatUsecase) RespondToFriendRequest(ctx context.Context, userID, chatID string, accept bool) (*entity.PrivateChat, error) {
	chat, err := c.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.ReceiverID != userID {
		return nil, ErrNotChatReceiver
	}
	if chat.Status != entity.ChatStatusPending {
		return nil, ErrRequestNotPending
	}

	responder, err := c.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		c.logger.Errorf("respond to request: lookup user %s: %v", userID, err)
		return nil, errors.New("failed to respond to friend request")
	}

	status := entity.ChatStatusRejected
	verb := "declined"
	if accept {
		status = entity.ChatStatusAccepted
		verb = "accepted"
	}
	now := time.Now().UTC()
	notice := entity.Message{
		ID:        c.uuidGen.NewUUID(),
		Content:   fmt.Sprintf("%s %s the friend request", responder.Name, verb),
		Role:      entity.MessageRoleSystem,
		CreatedAt: now,
	}
	if err := c.chatRepo.UpdateStatus(ctx, chatID, status, notice); err != nil {
		c.logger.Errorf("respond to request %s: %v", chatID, err)
		return nil, errors.New("failed to respond to friend request")
	}

	chat.Status = status
	chat.Messages = append(chat.Messages, notice)
	chat.UpdatedAt = now
	return chat, nil
}

// GetPendingRequests lists incoming requests awaiting the user's answer.
func (c *ChatUsecase) GetPendingRequests(ctx context.Context, userID string) ([]uc.PendingRequest, error) {
	chats, err := c.chatRepo.GetPendingForReceiver(ctx, userID)
	if err != nil {
		c.logger.Errorf("pending requests for %s: %v", userID, err)
		return nil, errors.New("failed to fetch friend requests")
	}
	requests := make([]uc.PendingRequest, 0, len(chats))
	for _, chat := range chats {
		sender, err := c.userRepo.GetUserByID(ctx, chat.SenderID)
		if err != nil {
			c.logger.Warnf("pending requests: lookup sender %s: %v", chat.SenderID, err)
			continue
		}
		requests = append(requests, uc.PendingRequest{
			ChatID:    chat.ID,
			Sender:    sender,
			CreatedAt: chat.CreatedAt,
		})
	}
	return requests, nil
}

// SendMessage delivers a message to the given target. Group messages
// require membership; private messages require an accepted chat.
func (c *ChatUsecase) SendMessage(ctx context.Context, senderID string, target entity.ChatTarget, targetID, content string, attachments []string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" && len(attachments) == 0 {
		return nil, errors.New("message cannot be empty")
	}

	message := entity.Message{
		ID:          c.uuidGen.NewUUID(),
		SenderID:    senderID,
		Content:     content,
		Attachments: attachments,
		Role:        entity.MessageRoleUser,
		CreatedAt:   time.Now().UTC(),
	}

	switch target {
	case entity.ChatTargetGroup:
		group, err := c.getGroup(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if group.IsBanned {
			return nil, ErrGroupBanned
		}
		if !group.HasMember(senderID) {
			return nil, ErrNotMember
		}
		if err := c.groupRepo.AppendMessage(ctx, targetID, message); err != nil {
			c.logger.Errorf("send group message to %s: %v", targetID, err)
			return nil, errors.New("failed to send message")
		}
	case entity.ChatTargetPrivate:
		chat, err := c.getChat(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if !chat.HasParticipant(senderID) {
			return nil, ErrForbidden
		}
		if chat.Status != entity.ChatStatusAccepted {
			return nil, ErrChatNotAccepted
		}
		if err := c.chatRepo.AppendMessage(ctx, targetID, message); err != nil {
			c.logger.Errorf("send private message to %s: %v", targetID, err)
			return nil, errors.New("failed to send message")
		}
	default:
		return nil, fmt.Errorf("unknown chat target %q", target)
	}
	return &message, nil
}

// GetConversation returns the full message history of a chat the user
// belongs to.
func (c *ChatUsecase) GetConversation(ctx context.Context, userID string, target entity.ChatTarget, targetID string) (*uc.Conversation, error) {
	switch target {
	case entity.ChatTargetGroup:
		group, err := c.getGroup(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if !group.HasMember(userID) {
			return nil, ErrNotMember
		}
		return &uc.Conversation{
			Target:   entity.ChatTargetGroup,
			ID:       group.ID,
			Name:     group.Name,
			Image:    group.Image,
			Messages: group.Messages,
		}, nil
	case entity.ChatTargetPrivate:
		chat, err := c.getChat(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if !chat.HasParticipant(userID) {
			return nil, ErrForbidden
		}
		name := ""
		if other, err := c.userRepo.GetUserByID(ctx, chat.OtherParticipant(userID)); err == nil {
			name = other.Name
		}
		return &uc.Conversation{
			Target:   entity.ChatTargetPrivate,
			ID:       chat.ID,
			Name:     name,
			Messages: chat.Messages,
		}, nil
	default:
		return nil, fmt.Errorf("unknown chat target %q", target)
	}
}

// GetUserChats returns the user's chat list, groups and accepted
// private chats together, most recently active first.
func (c *ChatUsecase) GetUserChats(ctx context.Context, userID string) ([]uc.ChatSummary, error) {
	var summaries []uc.ChatSummary

	memberships, err := c.groupRepo.GetMembershipsByUser(ctx, userID)
	if err != nil {
		c.logger.Errorf("chat list: memberships of %s: %v", userID, err)
		return nil, errors.New("failed to fetch chats")
	}
	for _, m := range memberships {
		group, err := c.groupRepo.GetGroupByID(ctx, m.GroupID)
		if err != nil {
			c.logger.Warnf("chat list: lookup group %s: %v", m.GroupID, err)
			continue
		}
		if group.IsBanned {
			continue
		}
		var last *entity.Message
		if n := len(group.Messages); n > 0 {
			last = &group.Messages[n-1]
		}
		summaries = append(summaries, uc.ChatSummary{
			Target:      entity.ChatTargetGroup,
			ID:          group.ID,
			Name:        group.Name,
			Image:       group.Image,
			LastMessage: last,
			UpdatedAt:   group.UpdatedAt,
		})
	}

	chats, err := c.chatRepo.GetChatsByUser(ctx, userID)
	if err != nil {
		c.logger.Errorf("chat list: private chats of %s: %v", userID, err)
		return nil, errors.New("failed to fetch chats")
	}
	for _, chat := range chats {
		if chat.Status != entity.ChatStatusAccepted {
			continue
		}
		name := ""
		if other, err := c.userRepo.GetUserByID(ctx, chat.OtherParticipant(userID)); err == nil {
			name = other.Name
		}
		summaries = append(summaries, uc.ChatSummary{
			Target:      entity.ChatTargetPrivate,
			ID:          chat.ID,
			Name:        name,
			LastMessage: chat.LastMessage,
			UpdatedAt:   chat.UpdatedAt,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

func (c *ChatUsecase) getChat(ctx context.Context, chatID string) (*entity.PrivateChat, error) {
	chat, err := c.chatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, contract.ErrChatNotFound) {
			return nil, ErrNotFound
		}
		c.logger.Errorf("get chat %s: %v", chatID, err)
		return nil, errors.New("failed to fetch chat")
	}
	return chat, nil
}

func (c *ChatUsecase) getGroup(ctx context.Context, groupID string) (*entity.Group, error) {
	group, err := c.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, contract.ErrGroupNotFound) {
			return nil, ErrNotFound
		}
		c.logger.Errorf("get group %s: %v", groupID, err)
		return nil, errors.New("failed to fetch group")
	}
	return group, nil
}
