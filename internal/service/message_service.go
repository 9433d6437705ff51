package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// SendMessageInput is the DTO for sending a message.
type SendMessageInput struct {
	ToUserID    *uuid.UUID                  `json:"to_user_id"`
	Subject     string                      `json:"subject" binding:"required"`
	Content     string                      `json:"content" binding:"required"`
	Priority    domain.NotificationPriority `json:"priority"`
	ProjectID   *uuid.UUID                  `json:"project_id"`
	Attachments domain.Attachments          `json:"attachments"`
}

// ReplyInput is the DTO for replying to a message.
type ReplyInput struct {
	Content string `json:"content" binding:"required"`
}

// MessageService defines dashboard messaging operations.
type MessageService interface {
	Send(ctx context.Context, fromUserID uuid.UUID, input SendMessageInput) (*domain.Message, error)
	Reply(ctx context.Context, messageID, fromUserID uuid.UUID, input ReplyInput) (*domain.Message, error)
	GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Message, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error
}

type messageService struct {
	messageRepo  port.MessageRepository
	userRepo     port.UserRepository
	notifService NotificationService
}

// NewMessageService creates a new MessageService implementation.
func NewMessageService(
	messageRepo port.MessageRepository,
	userRepo port.UserRepository,
	notifService NotificationService,
) MessageService {
	return &messageService{
		messageRepo:  messageRepo,
		userRepo:     userRepo,
		notifService: notifService,
	}
}

// Send creates a message. Clients who omit a recipient address the admin team:
// the message goes to the first active admin. The recipient gets a best-effort
// in-app notification.
func (s *messageService) Send(ctx context.Context, fromUserID uuid.UUID, input SendMessageInput) (*domain.Message, error) {
	sender, err := s.userRepo.GetByID(ctx, fromUserID)
	if err != nil {
		return nil, err
	}

	var recipient *domain.User
	if input.ToUserID != nil {
		recipient, err = s.userRepo.GetByID(ctx, *input.ToUserID)
		if err != nil {
			return nil, err
		}
	} else {
		admins, err := s.userRepo.ListActiveByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if len(admins) == 0 {
			return nil, domain.ErrNoAdminRecipients
		}
		recipient = &admins[0]
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now()
	msg := &domain.Message{
		ID:          uuid.New(),
		FromUserID:  sender.ID,
		ToUserID:    recipient.ID,
		FromRole:    sender.Role,
		ToRole:      recipient.Role,
		Subject:     input.Subject,
		Content:     input.Content,
		Status:      domain.MessageStatusUnread,
		Priority:    priority,
		ProjectID:   input.ProjectID,
		Attachments: input.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if _, err := s.notifService.Notify(ctx, recipient.ID, &sender.ID, NotificationPayload{
		Title:      fmt.Sprintf("New message from %s", sender.FullName),
		Message:    input.Subject,
		Type:       domain.NotificationTypeMessage,
		Priority:   priority,
		MessageID:  &msg.ID,
		ProjectID:  input.ProjectID,
		ActionURL:  fmt.Sprintf("/dashboard/messages/%s", msg.ID),
		ActionText: "Read message",
	}); err != nil {
		log.Printf("WARNING: message notification failed: %v", err)
	}

	return msg, nil
}

// Reply creates a response linked to the original message and forces the
// original's status to replied.
func (s *messageService) Reply(ctx context.Context, messageID, fromUserID uuid.UUID, input ReplyInput) (*domain.Message, error) {
	original, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if original.FromUserID != fromUserID && original.ToUserID != fromUserID {
		return nil, domain.ErrNotMessageParticipant
	}

	// Reply goes back to the other participant.
	recipientID := original.FromUserID
	if fromUserID == original.FromUserID {
		recipientID = original.ToUserID
	}

	sender, err := s.userRepo.GetByID(ctx, fromUserID)
	if err != nil {
		return nil, err
	}
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reply := &domain.Message{
		ID:         uuid.New(),
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
		FromRole:   sender.Role,
		ToRole:     recipient.Role,
		Subject:    "Re: " + original.Subject,
		Content:    input.Content,
		Status:     domain.MessageStatusUnread,
		Priority:   original.Priority,
		ProjectID:  original.ProjectID,
		ReplyTo:    &original.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.messageRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	if err := s.messageRepo.UpdateStatus(ctx, original.ID, domain.MessageStatusReplied); err != nil {
		log.Printf("WARNING: marking message %s replied failed: %v", original.ID, err)
	}

	if _, err := s.notifService.Notify(ctx, recipient.ID, &sender.ID, NotificationPayload{
		Title:      fmt.Sprintf("Reply from %s", sender.FullName),
		Message:    reply.Subject,
		Type:       domain.NotificationTypeMessage,
		Priority:   reply.Priority,
		MessageID:  &reply.ID,
		ActionURL:  fmt.Sprintf("/dashboard/messages/%s", reply.ID),
		ActionText: "Read message",
	}); err != nil {
		log.Printf("WARNING: reply notification failed: %v", err)
	}

	return reply, nil
}

func (s *messageService) GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.FromUserID != userID && msg.ToUserID != userID && role != domain.RoleAdmin {
		return nil, domain.ErrNotMessageParticipant
	}
	return msg, nil
}

func (s *messageService) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Message, int, error) {
	return s.messageRepo.ListForUser(ctx, userID, offset, limit)
}

// MarkRead marks a message read. Only the recipient may mark it.
func (s *messageService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.ToUserID != userID {
		return domain.ErrForbidden
	}
	if msg.Status != domain.MessageStatusUnread {
		return nil
	}
	return s.messageRepo.UpdateStatus(ctx, id, domain.MessageStatusRead)
}

// Delete removes a message. Participants may delete their own; admins any.
func (s *messageService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.FromUserID != userID && msg.ToUserID != userID && role != domain.RoleAdmin {
		return domain.ErrNotMessageParticipant
	}
	return s.messageRepo.Delete(ctx, id)
}
