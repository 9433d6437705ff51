package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user is inactive")
	ErrDuplicateEmail        = errors.New("email already registered")
	ErrInvalidRole           = errors.New("invalid user role")
	ErrInvalidStatus         = errors.New("invalid status value")
	ErrInvalidRecipients     = errors.New("one or more recipients are not active clients")
	ErrNoAdminRecipients     = errors.New("no admin users available to notify")
	ErrPaymentNotReportable  = errors.New("payment can only be reported for sent or overdue invoices")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrPushNotConfigured     = errors.New("push notifications are not configured")
	ErrSubscriptionNotFound  = errors.New("push subscription not found")
	ErrNotMessageParticipant = errors.New("not a participant of this message")
)
