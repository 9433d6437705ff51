package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	ListActiveByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	TotalsByStatus(ctx context.Context, clientID *uuid.UUID) ([]domain.InvoiceStatusTotal, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// NotificationRepository defines the contract for notification persistence.
// Listing excludes rows whose expires_at has passed; expired rows are removed
// by PurgeExpired, not by the read path.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error)
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	PurgeExpired(ctx context.Context, asOf time.Time) (int64, error)
}

// MessageRepository defines the contract for message persistence.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Message, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactRepository defines the contract for contact request persistence.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context, status *domain.ContactStatus, offset, limit int) ([]domain.Contact, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackRepository defines the contract for feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	List(ctx context.Context, status *domain.FeedbackStatus, offset, limit int) ([]domain.Feedback, int, error)
	Update(ctx context.Context, f *domain.Feedback) error
	ListTestimonials(ctx context.Context, limit int) ([]domain.Feedback, error)
}

// PushSubscriptionRepository defines the contract for push subscription persistence.
type PushSubscriptionRepository interface {
	Upsert(ctx context.Context, sub *domain.PushSubscription) error
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error)
	ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.PushSubscription, error)
	DeactivateByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error
}
