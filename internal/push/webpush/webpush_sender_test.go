package webpush

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	wp "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

func fakeResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

func testSender(send sendFunc) *webpushSender {
	return &webpushSender{
		vapidPublicKey:  "pub",
		vapidPrivateKey: "priv",
		subscriber:      "mailto:ops@test.com",
		ttl:             60,
		send:            send,
	}
}

func TestWebpushSender_Send_Success(t *testing.T) {
	var sentBody []byte
	var sentSub *wp.Subscription
	sender := testSender(func(message []byte, s *wp.Subscription, options *wp.Options) (*http.Response, error) {
		sentBody = message
		sentSub = s
		return fakeResponse(http.StatusCreated), nil
	})

	sub := &domain.PushSubscription{Endpoint: "https://push.example/abc", P256DH: "p", Auth: "a"}
	result := sender.Send(context.Background(), sub, port.NewPushPayload("Hello", "World", nil))

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, sub.Endpoint, sentSub.Endpoint)

	var payload port.PushPayload
	assert.NoError(t, json.Unmarshal(sentBody, &payload))
	assert.Equal(t, "Hello", payload.Title)
	assert.Equal(t, "World", payload.Body)
	assert.Len(t, payload.Actions, 2)
}

func TestWebpushSender_Send_GoneEndpoint(t *testing.T) {
	sender := testSender(func(message []byte, s *wp.Subscription, options *wp.Options) (*http.Response, error) {
		return fakeResponse(http.StatusGone), nil
	})

	sub := &domain.PushSubscription{Endpoint: "https://push.example/gone"}
	result := sender.Send(context.Background(), sub, port.NewPushPayload("x", "y", nil))

	assert.False(t, result.Success)
	assert.True(t, result.Gone)
}

func TestWebpushSender_Send_NotFoundIsGone(t *testing.T) {
	sender := testSender(func(message []byte, s *wp.Subscription, options *wp.Options) (*http.Response, error) {
		return fakeResponse(http.StatusNotFound), nil
	})

	result := sender.Send(context.Background(), &domain.PushSubscription{Endpoint: "e"}, port.NewPushPayload("x", "y", nil))

	assert.True(t, result.Gone)
}

func TestWebpushSender_Send_ServerErrorNotGone(t *testing.T) {
	sender := testSender(func(message []byte, s *wp.Subscription, options *wp.Options) (*http.Response, error) {
		return fakeResponse(http.StatusInternalServerError), nil
	})

	result := sender.Send(context.Background(), &domain.PushSubscription{Endpoint: "e"}, port.NewPushPayload("x", "y", nil))

	assert.False(t, result.Success)
	assert.False(t, result.Gone)
	assert.NotEmpty(t, result.Error)
}

func TestWebpushSender_Send_Disabled(t *testing.T) {
	sender := testSender(nil)
	sender.vapidPublicKey = ""
	sender.vapidPrivateKey = ""

	result := sender.Send(context.Background(), &domain.PushSubscription{Endpoint: "e"}, port.NewPushPayload("x", "y", nil))

	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrPushNotConfigured.Error(), result.Error)
}

func TestWebpushSender_SendToMany_FailureIsolation(t *testing.T) {
	calls := 0
	sender := testSender(func(message []byte, s *wp.Subscription, options *wp.Options) (*http.Response, error) {
		calls++
		if s.Endpoint == "https://push.example/bad" {
			return fakeResponse(http.StatusGone), nil
		}
		return fakeResponse(http.StatusCreated), nil
	})

	subs := []domain.PushSubscription{
		{Endpoint: "https://push.example/a"},
		{Endpoint: "https://push.example/bad"},
		{Endpoint: "https://push.example/b"},
	}

	results := sender.SendToMany(context.Background(), subs, port.NewPushPayload("x", "y", nil))

	assert.Equal(t, 3, calls)
	assert.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.True(t, results[1].Gone)
	assert.True(t, results[2].Success)
}

func TestWebpushSender_Enabled(t *testing.T) {
	assert.True(t, NewWebpushSender("pub", "priv", "mailto:x@y.z", 60).Enabled())
	assert.False(t, NewWebpushSender("", "", "mailto:x@y.z", 60).Enabled())
	assert.False(t, NewWebpushSender("pub", "", "mailto:x@y.z", 60).Enabled())
}
