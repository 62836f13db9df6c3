package lending

import (
	"fmt"
	"sync"
)

// FlashPool is an in-memory lending pool. Every open loan must be repaid
// before the enclosing operation finishes; anything repaid above the
// principal is fee income.
type FlashPool struct {
	mu        sync.Mutex
	reserve   uint64
	feeIncome uint64
	next      LoanHandle
	open      map[LoanHandle]uint64
}

func NewFlashPool(reserve uint64) *FlashPool {
	return &FlashPool{
		reserve: reserve,
		open:    make(map[LoanHandle]uint64),
	}
}

func (p *FlashPool) Borrow(amount uint64) (LoanHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount > p.reserve {
		return 0, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientLiquidity, amount, p.reserve)
	}
	p.next++
	handle := p.next
	p.reserve -= amount
	p.open[handle] = amount
	return handle, nil
}

func (p *FlashPool) Repay(handle LoanHandle, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	principal, ok := p.open[handle]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownLoan, handle)
	}
	if amount < principal {
		return fmt.Errorf("%w: repaid %d of %d", ErrShortRepayment, amount, principal)
	}
	delete(p.open, handle)
	p.reserve += amount
	p.feeIncome += amount - principal
	return nil
}

func (p *FlashPool) Reserve() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserve
}

func (p *FlashPool) FeeIncome() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.feeIncome
}

func (p *FlashPool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.open)
}
