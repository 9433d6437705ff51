package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// ContactInput is the DTO for the public contact form.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
	Service string `json:"service"`
}

// ContactService defines contact request operations.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.Contact, error)
	List(ctx context.Context, status *domain.ContactStatus, offset, limit int) ([]domain.Contact, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	contactRepo  port.ContactRepository
	emailSender  port.EmailSender
	notifService NotificationService
}

// NewContactService creates a new ContactService implementation.
func NewContactService(
	contactRepo port.ContactRepository,
	emailSender port.EmailSender,
	notifService NotificationService,
) ContactService {
	return &contactService{
		contactRepo:  contactRepo,
		emailSender:  emailSender,
		notifService: notifService,
	}
}

// Submit stores a contact request from the public site and alerts the admin
// team through email and an in-app callback notification. Alerts are
// best-effort: the request is stored even when every alert fails.
func (s *contactService) Submit(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	now := time.Now()
	contact := &domain.Contact{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Subject:   input.Subject,
		Message:   input.Message,
		Service:   input.Service,
		Status:    domain.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.emailSender.SendContactReceived(ctx, contact); err != nil {
		log.Printf("WARNING: contact received email failed: %v", err)
	}

	if _, err := s.notifService.SendCallback(ctx, NotificationPayload{
		Title:    fmt.Sprintf("New contact request: %s", contact.Subject),
		Message:  fmt.Sprintf("%s <%s> asked about %s.", contact.Name, contact.Email, contact.Service),
		Type:     domain.NotificationTypeCallback,
		Priority: domain.PriorityHigh,
		Metadata: domain.Metadata{
			"contact_id": contact.ID.String(),
			"email":      contact.Email,
			"phone":      contact.Phone,
		},
	}); err != nil && !errors.Is(err, domain.ErrNoAdminRecipients) {
		log.Printf("WARNING: contact callback notification failed: %v", err)
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context, status *domain.ContactStatus, offset, limit int) ([]domain.Contact, int, error) {
	return s.contactRepo.List(ctx, status, offset, limit)
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error {
	if !domain.ValidContactStatuses[status] {
		return domain.ErrInvalidStatus
	}
	return s.contactRepo.UpdateStatus(ctx, id, status)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contactRepo.Delete(ctx, id)
}
