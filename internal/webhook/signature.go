package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feral-file/nft-ledger/internal/domain"
)

// GenerateSignedPayload serializes a ledger event and signs it with
// HMAC-SHA256. Returns the JSON payload, the signature header value and the
// signing timestamp.
//
// The signature base is "{timestamp}.{event_id}.{json_body}" so clients can
// verify the timestamp against replay, dedupe on the event id and check the
// payload integrity in one pass. The signature is formatted as
// "sha256=<hex>".
func GenerateSignedPayload(secret string, event *domain.LedgerEvent, now time.Time) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = json.Marshal(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = now.Unix()

	signatureBase := fmt.Sprintf("%d.%s.%s", timestamp, event.EventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signatureBase))
	signature = "sha256=" + hex.EncodeToString(h.Sum(nil))

	return payload, signature, timestamp, nil
}

// VerifySignature recomputes the signature over the received payload and
// compares it in constant time
func VerifySignature(secret string, eventID string, timestamp int64, payload []byte, signature string) bool {
	signatureBase := fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signatureBase))
	expected := "sha256=" + hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
