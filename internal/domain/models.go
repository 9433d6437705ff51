package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an authenticated dashboard user (client or admin).
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	Company      string    `db:"company" json:"company"`
	Phone        string    `db:"phone" json:"phone"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Project represents agency work tracked on behalf of a client.
type Project struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	ClientID    uuid.UUID       `db:"client_id" json:"client_id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Status      ProjectStatus   `db:"status" json:"status"`
	Budget      decimal.Decimal `db:"budget" json:"budget"`
	Progress    int             `db:"progress" json:"progress"`
	StartDate   *time.Time      `db:"start_date" json:"start_date"`
	EndDate     *time.Time      `db:"end_date" json:"end_date"`
	CreatedBy   uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice represents a billable invoice against a project.
//
// Subtotal, TaxAmount, and Total are derived fields: they are recomputed from
// Items and TaxRate on every save and never trusted from input.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	ProjectID     uuid.UUID       `db:"project_id" json:"project_id"`
	Description   string          `db:"description" json:"description"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Items         InvoiceItems    `db:"items" json:"items"`
	TaxRate       decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxAmount     decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	IssueDate     time.Time       `db:"issue_date" json:"issue_date"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	PaymentDate   *time.Time      `db:"payment_date" json:"payment_date"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Notes         string          `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Notification is a single in-app notification addressed to one recipient.
// Bulk sends materialize one row per recipient.
type Notification struct {
	ID          uuid.UUID            `db:"id" json:"id"`
	RecipientID uuid.UUID            `db:"recipient_id" json:"recipient_id"`
	SenderID    *uuid.UUID           `db:"sender_id" json:"sender_id"`
	Title       string               `db:"title" json:"title"`
	Message     string               `db:"message" json:"message"`
	Type        NotificationType     `db:"type" json:"type"`
	Priority    NotificationPriority `db:"priority" json:"priority"`
	IsRead      bool                 `db:"is_read" json:"is_read"`
	ReadAt      *time.Time           `db:"read_at" json:"read_at"`
	ProjectID   *uuid.UUID           `db:"project_id" json:"project_id"`
	InvoiceID   *uuid.UUID           `db:"invoice_id" json:"invoice_id"`
	MessageID   *uuid.UUID           `db:"message_id" json:"message_id"`
	ActionURL   string               `db:"action_url" json:"action_url"`
	ActionText  string               `db:"action_text" json:"action_text"`
	ExpiresAt   *time.Time           `db:"expires_at" json:"expires_at"`
	Metadata    Metadata             `db:"metadata" json:"metadata"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
}

// Message is a dashboard message between a client and the admin team.
type Message struct {
	ID          uuid.UUID            `db:"id" json:"id"`
	FromUserID  uuid.UUID            `db:"from_user_id" json:"from_user_id"`
	ToUserID    uuid.UUID            `db:"to_user_id" json:"to_user_id"`
	FromRole    UserRole             `db:"from_role" json:"from_role"`
	ToRole      UserRole             `db:"to_role" json:"to_role"`
	Subject     string               `db:"subject" json:"subject"`
	Content     string               `db:"content" json:"content"`
	Status      MessageStatus        `db:"status" json:"status"`
	Priority    NotificationPriority `db:"priority" json:"priority"`
	ProjectID   *uuid.UUID           `db:"project_id" json:"project_id"`
	ReplyTo     *uuid.UUID           `db:"reply_to" json:"reply_to"`
	Attachments Attachments          `db:"attachments" json:"attachments"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at" json:"updated_at"`
}

// Contact is a request submitted through the public marketing site.
type Contact struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Phone     string        `db:"phone" json:"phone"`
	Company   string        `db:"company" json:"company"`
	Subject   string        `db:"subject" json:"subject"`
	Message   string        `db:"message" json:"message"`
	Service   string        `db:"service" json:"service"`
	Status    ContactStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// Feedback is a client rating of delivered work, optionally published as a testimonial.
type Feedback struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	ClientID      uuid.UUID      `db:"client_id" json:"client_id"`
	ProjectID     *uuid.UUID     `db:"project_id" json:"project_id"`
	Rating        int            `db:"rating" json:"rating"`
	Comment       string         `db:"comment" json:"comment"`
	Status        FeedbackStatus `db:"status" json:"status"`
	IsPublic      bool           `db:"is_public" json:"is_public"`
	AdminResponse string         `db:"admin_response" json:"admin_response"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// PushSubscription stores one browser push endpoint for a user.
type PushSubscription struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Endpoint  string    `db:"endpoint" json:"endpoint"`
	P256DH    string    `db:"p256dh" json:"p256dh"`
	Auth      string    `db:"auth" json:"auth"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
