package lending

import (
	"errors"
	"math"
)

// Flash loan fee is a fixed 9 bps of the principal, truncating.
const (
	FeeNumerator   = 9
	FeeDenominator = 10000
)

var (
	ErrInsufficientLiquidity = errors.New("insufficient liquidity in lending pool")
	ErrUnknownLoan           = errors.New("loan handle is unknown")
	ErrShortRepayment        = errors.New("repayment is less than the principal")
	ErrArithmetic            = errors.New("arithmetic overflow in loan math")
)

// LoanHandle identifies one open borrow. It lives only inside the
// operation that opened it.
type LoanHandle uint64

// Adapter grants and reclaims short-lived uncollateralized loans.
type Adapter interface {
	Borrow(amount uint64) (LoanHandle, error)
	Repay(handle LoanHandle, amount uint64) error
}

func FlashLoanFee(amount uint64) (uint64, error) {
	if amount > math.MaxUint64/FeeNumerator {
		return 0, ErrArithmetic
	}
	return amount * FeeNumerator / FeeDenominator, nil
}

func RepayAmount(amount uint64) (uint64, error) {
	fee, err := FlashLoanFee(amount)
	if err != nil {
		return 0, err
	}
	if amount > math.MaxUint64-fee {
		return 0, ErrArithmetic
	}
	return amount + fee, nil
}
