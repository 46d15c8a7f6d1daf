package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/nft-ledger/internal/domain"
)

func TestParseAccountID(t *testing.T) {
	t.Run("0x prefixed", func(t *testing.T) {
		a, err := domain.ParseAccountID("0x" + "00000000000000000000000000000000000000000000000000000000000000ff")
		require.NoError(t, err)
		assert.Equal(t, byte(0xff), a[31])
	})

	t.Run("bare hex", func(t *testing.T) {
		a, err := domain.ParseAccountID("0100000000000000000000000000000000000000000000000000000000000000")
		require.NoError(t, err)
		assert.Equal(t, byte(0x01), a[0])
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		_, err := domain.ParseAccountID("  0x0000000000000000000000000000000000000000000000000000000000000001\n")
		require.NoError(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := domain.ParseAccountID("0xdeadbeef")
		assert.Error(t, err)
	})

	t.Run("non-hex characters", func(t *testing.T) {
		_, err := domain.ParseAccountID("0x" + "zz00000000000000000000000000000000000000000000000000000000000000")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := domain.ParseAccountID("")
		assert.Error(t, err)
	})
}

func TestAccountID_IsZero(t *testing.T) {
	assert.True(t, domain.ZeroAccount.IsZero())

	var a domain.AccountID
	a[0] = 1
	assert.False(t, a.IsZero())
}

func TestAccountID_RoundTrip(t *testing.T) {
	var a domain.AccountID
	a[0] = 0xab
	a[31] = 0xcd

	parsed, err := domain.ParseAccountID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestAccountID_JSON(t *testing.T) {
	var a domain.AccountID
	a[31] = 0x2a

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"0x000000000000000000000000000000000000000000000000000000000000002a"`, string(data))

	var decoded domain.AccountID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, a, decoded)
}

func TestTokenID_String(t *testing.T) {
	assert.Equal(t, "42", domain.TokenID(42).String())
	assert.Equal(t, "0", domain.TokenID(0).String())
}

func TestValidEventFilter(t *testing.T) {
	assert.True(t, domain.ValidEventFilter(domain.EventTypeTransfer))
	assert.True(t, domain.ValidEventFilter(domain.EventTypeApproval))
	assert.True(t, domain.ValidEventFilter(domain.EventTypeApprovalForAll))
	assert.True(t, domain.ValidEventFilter(domain.EventTypeWildcard))

	assert.False(t, domain.ValidEventFilter(domain.EventType("mint")))
	assert.False(t, domain.ValidEventFilter(domain.EventType("")))
}
