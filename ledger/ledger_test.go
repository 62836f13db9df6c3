package ledger

import (
	"math"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerKey(n byte) solana.PublicKey {
	var key solana.PublicKey
	key[31] = n
	return key
}

func TestTransfer(t *testing.T) {
	alice := ownerKey(1)
	bob := ownerKey(2)
	token := ownerKey(3)

	l := NewLedger()
	require.NoError(t, l.Credit(alice, token, 1000))

	require.NoError(t, l.Transfer(alice, bob, token, 400))
	assert.Equal(t, uint64(600), l.Balance(alice, token))
	assert.Equal(t, uint64(400), l.Balance(bob, token))

	err := l.Transfer(alice, bob, token, 601)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, uint64(600), l.Balance(alice, token))
	assert.Equal(t, uint64(400), l.Balance(bob, token))
}

func TestCreditOverflow(t *testing.T) {
	alice := ownerKey(1)
	token := ownerKey(3)

	l := NewLedger()
	require.NoError(t, l.Credit(alice, token, math.MaxUint64))
	assert.ErrorIs(t, l.Credit(alice, token, 1), ErrArithmetic)
	assert.Equal(t, uint64(math.MaxUint64), l.Balance(alice, token))
}

func TestAmountUi(t *testing.T) {
	assert.Equal(t, "1.000900", AmountUi(1_000_900, 6).StringFixed(6))
	assert.Equal(t, "0.09", AmountUi(9, 2).StringFixed(2))
}

func TestAmountUiAboveMaxInt64(t *testing.T) {
	ui := AmountUi(math.MaxUint64, 0)
	assert.False(t, ui.IsNegative())
	assert.Equal(t, "18446744073709551615", ui.String())
}
