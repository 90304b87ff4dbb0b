// services/push_test.go
package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func makeMessages(n int) []PushMessage {
	msgs := make([]PushMessage, 0, n)
	for i := 0; i < n; i++ {
		msgs = append(msgs, PushMessage{To: fmt.Sprintf("tok-%d", i), Body: "hello"})
	}
	return msgs
}

func TestDeliverChunksAndIsolatesFailures(t *testing.T) {
	gateway := &fakeGateway{limit: 100, failChunks: map[int]bool{5: true}}
	batcher := NewDeliveryBatcher(gateway, zap.NewNop())

	report := batcher.Deliver(context.Background(), makeMessages(2003))

	// 2003 messages at a chunk limit of 100 is 21 chunks.
	require.Len(t, gateway.calls, 21)
	assert.Len(t, gateway.calls[20], 3, "last chunk holds the remainder")

	// Chunk #5 failed; the other 20 chunks (1903 messages) got tickets.
	assert.Equal(t, []int{5}, report.FailedChunks)
	assert.Len(t, report.Tickets, 1903)
	assert.Zero(t, report.InvalidTokens)
}

func TestDeliverRejectsMalformedTokensBeforeBatching(t *testing.T) {
	gateway := &fakeGateway{limit: 10}
	batcher := NewDeliveryBatcher(gateway, zap.NewNop())

	msgs := []PushMessage{
		{To: "tok-1", Body: "hi"},
		{To: "bad-token", Body: "hi"},
		{To: "tok-2", Body: "hi"},
	}
	report := batcher.Deliver(context.Background(), msgs)

	assert.Equal(t, 1, report.InvalidTokens)
	assert.Len(t, report.Tickets, 2)
	require.Len(t, gateway.calls, 1)
	assert.Len(t, gateway.calls[0], 2, "rejected token never reaches the gateway")
}

func TestDeliverEmptyInput(t *testing.T) {
	gateway := &fakeGateway{}
	batcher := NewDeliveryBatcher(gateway, zap.NewNop())

	report := batcher.Deliver(context.Background(), nil)

	assert.Empty(t, report.Tickets)
	assert.Empty(t, report.FailedChunks)
	assert.Empty(t, gateway.calls, "no chunk is sent for an empty batch")
}

func TestDeliverAllChunksFail(t *testing.T) {
	gateway := &fakeGateway{limit: 2, failChunks: map[int]bool{1: true, 2: true, 3: true}}
	batcher := NewDeliveryBatcher(gateway, zap.NewNop())

	report := batcher.Deliver(context.Background(), makeMessages(5))

	assert.Equal(t, []int{1, 2, 3}, report.FailedChunks)
	assert.Empty(t, report.Tickets)
}
