package lending

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashLoanFee(t *testing.T) {
	fee, err := FlashLoanFee(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(900), fee)

	repay, err := RepayAmount(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_900), repay)

	// truncating division, never rounds up
	fee, err = FlashLoanFee(1_111)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fee)

	_, err = FlashLoanFee(math.MaxUint64)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestFlashPoolBorrowRepay(t *testing.T) {
	pool := NewFlashPool(10_000_000)

	handle, err := pool.Borrow(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(9_000_000), pool.Reserve())
	assert.Equal(t, 1, pool.Outstanding())

	require.NoError(t, pool.Repay(handle, 1_000_900))
	assert.Equal(t, uint64(10_000_900), pool.Reserve())
	assert.Equal(t, uint64(900), pool.FeeIncome())
	assert.Equal(t, 0, pool.Outstanding())
}

func TestFlashPoolFailures(t *testing.T) {
	pool := NewFlashPool(1_000)

	_, err := pool.Borrow(2_000)
	assert.ErrorIs(t, err, ErrInsufficientLiquidity)

	err = pool.Repay(LoanHandle(7), 100)
	assert.ErrorIs(t, err, ErrUnknownLoan)

	handle, err := pool.Borrow(500)
	require.NoError(t, err)
	err = pool.Repay(handle, 400)
	assert.ErrorIs(t, err, ErrShortRepayment)
	assert.Equal(t, 1, pool.Outstanding())

	// unwinding at the principal is allowed, no fee income
	require.NoError(t, pool.Repay(handle, 500))
	assert.Equal(t, uint64(1_000), pool.Reserve())
	assert.Equal(t, uint64(0), pool.FeeIncome())
}
