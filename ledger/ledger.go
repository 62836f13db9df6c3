package ledger

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrArithmetic          = errors.New("arithmetic overflow on balance")
)

// Ledger tracks token balances per owner and implements the transfer
// primitive used for profit settlement and withdrawal.
type Ledger struct {
	mu       sync.Mutex
	balances map[solana.PublicKey]map[solana.PublicKey]uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[solana.PublicKey]map[solana.PublicKey]uint64),
	}
}

func (l *Ledger) Balance(owner, token solana.PublicKey) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[owner][token]
}

func (l *Ledger) Credit(owner, token solana.PublicKey, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.credit(owner, token, amount)
}

func (l *Ledger) Transfer(from, to, token solana.PublicKey, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := l.balances[from][token]
	if balance < amount {
		return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientBalance, amount, balance)
	}
	if err := l.credit(to, token, amount); err != nil {
		return err
	}
	l.balances[from][token] = balance - amount
	return nil
}

func (l *Ledger) credit(owner, token solana.PublicKey, amount uint64) error {
	account, ok := l.balances[owner]
	if !ok {
		account = make(map[solana.PublicKey]uint64)
		l.balances[owner] = account
	}
	if account[token] > math.MaxUint64-amount {
		return ErrArithmetic
	}
	account[token] += amount
	return nil
}

// AmountUi renders a raw amount in display units. Amounts above
// MaxInt64 stay positive.
func AmountUi(amount uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -decimals)
}
