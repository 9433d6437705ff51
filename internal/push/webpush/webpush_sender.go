package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

type sendFunc func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

type webpushSender struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
	ttl             int
	send            sendFunc
}

// NewWebpushSender creates a PushSender backed by the Web Push protocol with
// VAPID authentication. An empty key pair yields a disabled sender.
func NewWebpushSender(vapidPublicKey, vapidPrivateKey, subscriber string, ttlSecs int) port.PushSender {
	return &webpushSender{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
		ttl:             ttlSecs,
		send:            webpush.SendNotification,
	}
}

func (w *webpushSender) Enabled() bool {
	return w.vapidPublicKey != "" && w.vapidPrivateKey != ""
}

func (w *webpushSender) PublicKey() string {
	return w.vapidPublicKey
}

func (w *webpushSender) Send(ctx context.Context, sub *domain.PushSubscription, payload *port.PushPayload) port.PushResult {
	result := port.PushResult{Endpoint: sub.Endpoint}
	if !w.Enabled() {
		result.Error = domain.ErrPushNotConfigured.Error()
		return result
	}

	body, err := json.Marshal(payload)
	if err != nil {
		result.Error = fmt.Sprintf("marshaling push payload: %v", err)
		return result
	}

	resp, err := w.send(body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      w.subscriber,
		VAPIDPublicKey:  w.vapidPublicKey,
		VAPIDPrivateKey: w.vapidPrivateKey,
		TTL:             w.ttl,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		result.Gone = true
		result.Error = fmt.Sprintf("subscription gone (status %d)", resp.StatusCode)
	case resp.StatusCode >= 400:
		result.Error = fmt.Sprintf("push service returned status %d", resp.StatusCode)
	default:
		result.Success = true
	}
	return result
}

func (w *webpushSender) SendToMany(ctx context.Context, subs []domain.PushSubscription, payload *port.PushPayload) []port.PushResult {
	results := make([]port.PushResult, 0, len(subs))
	for i := range subs {
		result := w.Send(ctx, &subs[i], payload)
		if !result.Success {
			log.Printf("WARNING: push delivery to %s failed: %s", result.Endpoint, result.Error)
		}
		results = append(results, result)
	}
	return results
}
