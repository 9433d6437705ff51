package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// NotificationPayload is the DTO shared by all notification sends.
type NotificationPayload struct {
	Title      string                      `json:"title" binding:"required"`
	Message    string                      `json:"message" binding:"required"`
	Type       domain.NotificationType     `json:"type"`
	Priority   domain.NotificationPriority `json:"priority"`
	ActionURL  string                      `json:"action_url"`
	ActionText string                      `json:"action_text"`
	ExpiresAt  *time.Time                  `json:"expires_at"`
	ProjectID  *uuid.UUID                  `json:"project_id"`
	InvoiceID  *uuid.UUID                  `json:"invoice_id"`
	MessageID  *uuid.UUID                  `json:"message_id"`
	Metadata   domain.Metadata             `json:"metadata"`
}

// SendInput is the DTO for targeted admin sends.
type SendInput struct {
	RecipientIDs []uuid.UUID `json:"recipient_ids" binding:"required,min=1"`
	NotificationPayload
}

// NotificationService defines notification fan-out and inbox operations.
type NotificationService interface {
	SendToRecipients(ctx context.Context, senderID uuid.UUID, recipientIDs []uuid.UUID, payload NotificationPayload) (int, error)
	Broadcast(ctx context.Context, senderID uuid.UUID, payload NotificationPayload) (int, error)
	SendCallback(ctx context.Context, payload NotificationPayload) (int, error)
	Notify(ctx context.Context, recipientID uuid.UUID, senderID *uuid.UUID, payload NotificationPayload) (*domain.Notification, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type notificationService struct {
	notifRepo   port.NotificationRepository
	userRepo    port.UserRepository
	subRepo     port.PushSubscriptionRepository
	pushSender  port.PushSender
	emailSender port.EmailSender
	dispatcher  port.Dispatcher
}

// NewNotificationService creates a new NotificationService implementation.
func NewNotificationService(
	notifRepo port.NotificationRepository,
	userRepo port.UserRepository,
	subRepo port.PushSubscriptionRepository,
	pushSender port.PushSender,
	emailSender port.EmailSender,
	dispatcher port.Dispatcher,
) NotificationService {
	return &notificationService{
		notifRepo:   notifRepo,
		userRepo:    userRepo,
		subRepo:     subRepo,
		pushSender:  pushSender,
		emailSender: emailSender,
		dispatcher:  dispatcher,
	}
}

// SendToRecipients materializes one notification row per recipient and then
// submits best-effort push and email delivery. All recipients must be active
// client accounts. Row inserts are per-recipient without a transaction, so a
// mid-loop failure leaves earlier rows in place.
func (s *notificationService) SendToRecipients(ctx context.Context, senderID uuid.UUID, recipientIDs []uuid.UUID, payload NotificationPayload) (int, error) {
	if len(recipientIDs) == 0 {
		return 0, domain.ErrInvalidRecipients
	}

	recipients, err := s.userRepo.GetActiveByIDs(ctx, recipientIDs)
	if err != nil {
		return 0, err
	}
	if len(recipients) != len(recipientIDs) {
		return 0, domain.ErrInvalidRecipients
	}
	for _, r := range recipients {
		if r.Role != domain.RoleClient {
			return 0, domain.ErrInvalidRecipients
		}
	}

	created, err := s.insertRows(ctx, &senderID, recipients, payload)
	if err != nil {
		return created, err
	}

	s.dispatchDelivery(recipients, payload, true)
	return created, nil
}

// Broadcast sends a notification to every active client.
func (s *notificationService) Broadcast(ctx context.Context, senderID uuid.UUID, payload NotificationPayload) (int, error) {
	clients, err := s.userRepo.ListActiveByRole(ctx, domain.RoleClient)
	if err != nil {
		return 0, err
	}
	ids := make([]uuid.UUID, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.SendToRecipients(ctx, senderID, ids, payload)
}

// SendCallback notifies every active admin of a public callback request. It
// fails closed: with no active admins it creates nothing and returns
// ErrNoAdminRecipients.
func (s *notificationService) SendCallback(ctx context.Context, payload NotificationPayload) (int, error) {
	admins, err := s.userRepo.ListActiveByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return 0, err
	}
	if len(admins) == 0 {
		return 0, domain.ErrNoAdminRecipients
	}

	if payload.Type == "" {
		payload.Type = domain.NotificationTypeCallback
	}

	created, err := s.insertRows(ctx, nil, admins, payload)
	if err != nil {
		return created, err
	}

	s.dispatchDelivery(admins, payload, true)
	return created, nil
}

// Notify creates a single in-app notification with best-effort push delivery.
// It is the internal side-effect channel used by invoices, messages, and
// payment reports; emails for those flows are sent by their own services.
func (s *notificationService) Notify(ctx context.Context, recipientID uuid.UUID, senderID *uuid.UUID, payload NotificationPayload) (*domain.Notification, error) {
	n := s.buildNotification(recipientID, senderID, payload)
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		log.Printf("WARNING: notification push skipped, recipient lookup failed: %v", err)
		return n, nil
	}
	s.dispatchDelivery([]domain.User{*recipient}, payload, false)
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error) {
	return s.notifRepo.List(ctx, userID, unreadOnly, offset, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.notifRepo.UnreadCount(ctx, userID)
}

// MarkRead marks a notification read. Only the recipient may mark it; a second
// call is a no-op and still succeeds.
func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != userID {
		return domain.ErrForbidden
	}
	return s.notifRepo.MarkRead(ctx, id, time.Now())
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllRead(ctx, userID, time.Now())
}

// Delete removes a notification. The recipient may delete their own; admins
// may delete any.
func (s *notificationService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != userID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.notifRepo.Delete(ctx, id)
}

func (s *notificationService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.notifRepo.PurgeExpired(ctx, time.Now())
}

func (s *notificationService) buildNotification(recipientID uuid.UUID, senderID *uuid.UUID, payload NotificationPayload) *domain.Notification {
	nType := payload.Type
	if nType == "" {
		nType = domain.NotificationTypeInfo
	}
	priority := payload.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	return &domain.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Title:       payload.Title,
		Message:     payload.Message,
		Type:        nType,
		Priority:    priority,
		ProjectID:   payload.ProjectID,
		InvoiceID:   payload.InvoiceID,
		MessageID:   payload.MessageID,
		ActionURL:   payload.ActionURL,
		ActionText:  payload.ActionText,
		ExpiresAt:   payload.ExpiresAt,
		Metadata:    payload.Metadata,
		CreatedAt:   time.Now(),
	}
}

// insertRows creates one notification per recipient. Returns how many rows
// were created even when a mid-loop insert fails.
func (s *notificationService) insertRows(ctx context.Context, senderID *uuid.UUID, recipients []domain.User, payload NotificationPayload) (int, error) {
	created := 0
	for i := range recipients {
		n := s.buildNotification(recipients[i].ID, senderID, payload)
		if err := s.notifRepo.Create(ctx, n); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// dispatchDelivery submits push (and optionally email) delivery for the
// recipients. Submission never blocks the caller; all delivery failures are
// logged and swallowed.
func (s *notificationService) dispatchDelivery(recipients []domain.User, payload NotificationPayload, withEmail bool) {
	users := make([]domain.User, len(recipients))
	copy(users, recipients)

	s.dispatcher.Submit("notification-delivery", func(ctx context.Context) {
		if s.pushSender.Enabled() {
			ids := make([]uuid.UUID, len(users))
			for i, u := range users {
				ids[i] = u.ID
			}
			subs, err := s.subRepo.ListActiveByUsers(ctx, ids)
			if err != nil {
				log.Printf("WARNING: loading push subscriptions failed: %v", err)
			} else if len(subs) > 0 {
				pushPayload := port.NewPushPayload(payload.Title, payload.Message, map[string]interface{}{
					"url": payload.ActionURL,
				})
				results := s.pushSender.SendToMany(ctx, subs, pushPayload)
				for _, r := range results {
					if r.Gone {
						if err := s.subRepo.DeactivateByEndpoint(ctx, uuid.Nil, r.Endpoint); err != nil {
							log.Printf("WARNING: deactivating gone push endpoint failed: %v", err)
						}
					}
				}
			}
		}

		if !withEmail {
			return
		}
		for _, u := range users {
			if err := s.emailSender.SendNotificationEmail(ctx, u.Email, u.FullName, payload.Title, payload.Message); err != nil {
				log.Printf("WARNING: notification email to %s failed: %v", u.Email, err)
			}
		}
	})
}
