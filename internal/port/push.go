package port

import (
	"context"

	"agencyhub/internal/domain"
)

// PushAction is one action button on a displayed push notification.
type PushAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// PushPayload is the fixed-shape payload delivered to every endpoint.
type PushPayload struct {
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Icon    string                 `json:"icon"`
	Badge   string                 `json:"badge"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Actions []PushAction           `json:"actions"`
}

// NewPushPayload assembles the standard payload shape with the two default
// view/close actions.
func NewPushPayload(title, body string, data map[string]interface{}) *PushPayload {
	return &PushPayload{
		Title: title,
		Body:  body,
		Icon:  "/icons/icon-192.png",
		Badge: "/icons/badge-72.png",
		Data:  data,
		Actions: []PushAction{
			{Action: "view", Title: "View"},
			{Action: "close", Title: "Dismiss"},
		},
	}
}

// PushResult is the per-endpoint outcome of a delivery attempt.
type PushResult struct {
	Endpoint string `json:"endpoint"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	// Gone marks endpoints the push service reported as expired (404/410);
	// callers should deactivate the stored subscription.
	Gone bool `json:"-"`
}

// PushSender delivers a payload to stored subscription endpoints.
// Implementations never return a Go error for individual endpoint failures;
// per-endpoint outcomes are reported through PushResult.
type PushSender interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload *PushPayload) PushResult
	SendToMany(ctx context.Context, subs []domain.PushSubscription, payload *PushPayload) []PushResult
	PublicKey() string
	Enabled() bool
}
