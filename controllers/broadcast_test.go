// controllers/broadcast_test.go
package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spalounge-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	got    services.BroadcastInput
	result services.BroadcastResult
	err    error
}

func (s *stubDispatcher) Broadcast(ctx context.Context, in services.BroadcastInput) (services.BroadcastResult, error) {
	s.got = in
	return s.result, s.err
}

func broadcastRequest(t *testing.T, dispatcher *stubDispatcher, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	bc := &BroadcastController{Service: dispatcher}
	r.POST("/broadcast", bc.SendBroadcast)

	req := httptest.NewRequest(http.MethodPost, "/broadcast", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendBroadcastSuccess(t *testing.T) {
	dispatcher := &stubDispatcher{result: services.BroadcastResult{RecipientCount: 12, DeliveryTicketCount: 10}}

	w := broadcastRequest(t, dispatcher, `{
		"title": "Elite perks",
		"message": "Your complimentary facial awaits",
		"targetType": "tier",
		"targetValue": "Elite",
		"notificationType": "promotional_offer"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipientCount": 12, "deliveryTicketCount": 10}`, w.Body.String())
	assert.Equal(t, "tier", dispatcher.got.TargetType)
	assert.Equal(t, "Elite", dispatcher.got.TargetValue)
}

func TestSendBroadcastMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing title", body: `{"message": "m", "targetType": "all"}`},
		{name: "missing message", body: `{"title": "t", "targetType": "all"}`},
		{name: "missing targetType", body: `{"title": "t", "message": "m"}`},
		{name: "bad targetType", body: `{"title": "t", "message": "m", "targetType": "everyone"}`},
		{name: "bad channel", body: `{"title": "t", "message": "m", "targetType": "all", "channel": "fax"}`},
		{name: "not json", body: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &stubDispatcher{}
			w := broadcastRequest(t, dispatcher, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, dispatcher.got.Title, "validation errors must not reach the engine")
		})
	}
}

func TestSendBroadcastRequiresTargetValueForNarrowTargets(t *testing.T) {
	for _, target := range []string{"role", "user", "tier"} {
		t.Run(target, func(t *testing.T) {
			dispatcher := &stubDispatcher{}
			w := broadcastRequest(t, dispatcher, fmt.Sprintf(`{"title": "t", "message": "m", "targetType": %q}`, target))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// "all" needs no target value.
	dispatcher := &stubDispatcher{}
	w := broadcastRequest(t, dispatcher, `{"title": "t", "message": "m", "targetType": "all"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendBroadcastInvalidTargetIsClientError(t *testing.T) {
	dispatcher := &stubDispatcher{err: fmt.Errorf("%w: user id \"nope\"", services.ErrInvalidTarget)}

	w := broadcastRequest(t, dispatcher, `{"title": "t", "message": "m", "targetType": "user", "targetValue": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendBroadcastEngineFailureIsServerError(t *testing.T) {
	dispatcher := &stubDispatcher{err: fmt.Errorf("store unavailable")}

	w := broadcastRequest(t, dispatcher, `{"title": "t", "message": "m", "targetType": "all"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
