package domain

// UserRole determines authorization scope on every endpoint.
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// ValidUserRoles enumerates the accepted roles.
var ValidUserRoles = map[UserRole]bool{
	RoleClient: true,
	RoleAdmin:  true,
}

// InvoiceStatus represents the lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatuses enumerates the accepted invoice statuses.
var ValidInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusOverdue:   true,
	InvoiceStatusCancelled: true,
}

// ProjectStatus represents the lifecycle of a client project.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusReview     ProjectStatus = "review"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatuses enumerates the accepted project statuses.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectStatusPlanning:   true,
	ProjectStatusInProgress: true,
	ProjectStatusReview:     true,
	ProjectStatusCompleted:  true,
	ProjectStatusOnHold:     true,
	ProjectStatusCancelled:  true,
}

// NotificationType categorizes in-app notifications.
type NotificationType string

const (
	NotificationTypeInfo     NotificationType = "info"
	NotificationTypePayment  NotificationType = "payment"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeCallback NotificationType = "callback"
	NotificationTypeMeeting  NotificationType = "meeting"
	NotificationTypeProject  NotificationType = "project"
	NotificationTypeSystem   NotificationType = "system"
)

// ValidNotificationTypes enumerates the accepted notification types.
var ValidNotificationTypes = map[NotificationType]bool{
	NotificationTypeInfo:     true,
	NotificationTypePayment:  true,
	NotificationTypeMessage:  true,
	NotificationTypeCallback: true,
	NotificationTypeMeeting:  true,
	NotificationTypeProject:  true,
	NotificationTypeSystem:   true,
}

// NotificationPriority orders notifications in the dashboard inbox.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// ValidNotificationPriorities enumerates the accepted priorities.
var ValidNotificationPriorities = map[NotificationPriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// MessageStatus represents the read/reply state of a dashboard message.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

// ContactStatus tracks triage of marketing-site contact requests.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusInReview  ContactStatus = "in_review"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusClosed    ContactStatus = "closed"
)

// ValidContactStatuses enumerates the accepted contact statuses.
var ValidContactStatuses = map[ContactStatus]bool{
	ContactStatusNew:       true,
	ContactStatusInReview:  true,
	ContactStatusContacted: true,
	ContactStatusClosed:    true,
}

// FeedbackStatus tracks moderation of client feedback.
type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusApproved FeedbackStatus = "approved"
	FeedbackStatusRejected FeedbackStatus = "rejected"
)

// ValidFeedbackStatuses enumerates the accepted feedback statuses.
var ValidFeedbackStatuses = map[FeedbackStatus]bool{
	FeedbackStatusPending:  true,
	FeedbackStatusApproved: true,
	FeedbackStatusRejected: true,
}

// AllowedAttachmentTypes maps accepted upload MIME types to file extensions.
var AllowedAttachmentTypes = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"application/zip": "zip",
	"text/plain":      "txt",
}
