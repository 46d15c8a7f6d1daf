package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountIDLength is the width of an account identifier in bytes
const AccountIDLength = 32

// AccountID is an opaque fixed-width identifier for a caller or owner.
// The all-zero value is the null sentinel: it never owns tokens and is
// never accepted as a transfer destination or approval target.
type AccountID [AccountIDLength]byte

// ZeroAccount is the null sentinel account
var ZeroAccount AccountID

// IsZero reports whether the account is the null sentinel
func (a AccountID) IsZero() bool {
	return a == ZeroAccount
}

// String returns the 0x-prefixed hex representation of the account
func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler so accounts serialize as hex in JSON
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAccountID parses a 0x-prefixed or bare hex string into an AccountID
func ParseAccountID(s string) (AccountID, error) {
	var a AccountID

	raw := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(raw) != AccountIDLength*2 {
		return a, fmt.Errorf("invalid account id %q: expected %d hex characters, got %d", s, AccountIDLength*2, len(raw))
	}

	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return a, fmt.Errorf("invalid account id %q: %w", s, err)
	}

	copy(a[:], decoded)
	return a, nil
}

// TokenID identifies one non-fungible token. The universe of valid ids is
// unbounded; each id denotes at most one token instance at a time.
type TokenID uint64

func (t TokenID) String() string {
	return fmt.Sprintf("%d", uint64(t))
}
