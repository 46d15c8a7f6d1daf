package webhook_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/webhook"
)

func testEvent() *domain.LedgerEvent {
	var from, to domain.AccountID
	from[0] = 1
	to[0] = 2
	return domain.NewTransferEvent(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		&from, &to, 7,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestGenerateSignedPayload(t *testing.T) {
	event := testEvent()
	now := time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC)

	payload, signature, timestamp, err := webhook.GenerateSignedPayload("topsecret", event, now)
	require.NoError(t, err)

	assert.Equal(t, now.Unix(), timestamp)
	assert.True(t, strings.HasPrefix(signature, "sha256="))
	assert.Contains(t, string(payload), event.EventID)

	assert.True(t, webhook.VerifySignature("topsecret", event.EventID, timestamp, payload, signature))
}

func TestVerifySignature_RejectsTampering(t *testing.T) {
	event := testEvent()
	now := time.Now()

	payload, signature, timestamp, err := webhook.GenerateSignedPayload("topsecret", event, now)
	require.NoError(t, err)

	// Wrong secret
	assert.False(t, webhook.VerifySignature("othersecret", event.EventID, timestamp, payload, signature))

	// Tampered body
	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = 'X'
	assert.False(t, webhook.VerifySignature("topsecret", event.EventID, timestamp, tampered, signature))

	// Shifted timestamp
	assert.False(t, webhook.VerifySignature("topsecret", event.EventID, timestamp+1, payload, signature))

	// Different event id
	assert.False(t, webhook.VerifySignature("topsecret", "01ARZ3NDEKTSV4RRFFQ69G5FAX", timestamp, payload, signature))
}

func TestGenerateSignedPayload_Deterministic(t *testing.T) {
	event := testEvent()
	now := time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC)

	_, sig1, _, err := webhook.GenerateSignedPayload("topsecret", event, now)
	require.NoError(t, err)
	_, sig2, _, err := webhook.GenerateSignedPayload("topsecret", event, now)
	require.NoError(t, err)

	assert.Equal(t, sig1, sig2)
}
