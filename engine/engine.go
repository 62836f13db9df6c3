package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/egaotan/arbitrage-bot/lending"
	"github.com/egaotan/arbitrage-bot/venue"
	"github.com/gagliardetto/solana-go"
)

// Engine sequences and validates arbitrage executions over per-authority
// BotState records. It holds no state of its own beyond the records it is
// handed; adapters and the clock are injected.
type Engine struct {
	log         *log.Logger
	store       StateStore
	venues      *venue.Registry
	lending     lending.Adapter
	wallet      Wallet
	emitter     Emitter
	clock       Clock
	botWallet   solana.PublicKey
	settleToken solana.PublicKey

	mu    sync.Mutex
	locks map[solana.PublicKey]*sync.Mutex
}

func NewEngine(logger *log.Logger, store StateStore, venues *venue.Registry, lender lending.Adapter,
	wallet Wallet, emitter Emitter, clock Clock, botWallet, settleToken solana.PublicKey) *Engine {
	return &Engine{
		log:         logger,
		store:       store,
		venues:      venues,
		lending:     lender,
		wallet:      wallet,
		emitter:     emitter,
		clock:       clock,
		botWallet:   botWallet,
		settleToken: settleToken,
		locks:       make(map[solana.PublicKey]*sync.Mutex),
	}
}

// lock serializes units of work over the same BotState record. Records of
// different authorities proceed in parallel.
func (e *Engine) lock(authority solana.PublicKey) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[authority]
	if !ok {
		l = &sync.Mutex{}
		e.locks[authority] = l
	}
	return l
}

func (e *Engine) Initialize(authority solana.PublicKey, minInterval int64) error {
	if minInterval < 0 {
		return fmt.Errorf("%w: min interval is %d", ErrInvalidAmount, minInterval)
	}
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state := NewBotState(authority, minInterval)
	if err := e.store.Create(state); err != nil {
		return err
	}
	now := e.clock.Now()
	event := newEvent(EventStateInitialized, authority, authority, now)
	event.MinInterval = minInterval
	e.emitter.Emit(event)
	e.log.Printf("bot state initialized, authority: %s, min interval: %d", authority, minInterval)
	return nil
}

// ExecuteArbitrage drives the swap sequence funded by the caller's own
// capital. minProfit is the caller-declared profit target.
func (e *Engine) ExecuteArbitrage(caller, authority solana.PublicKey, routes []*Route, minProfit uint64) (uint64, error) {
	return e.execute(caller, authority, routes, 0, minProfit, false)
}

// FlashLoanArbitrage borrows loanAmount first and repays principal plus
// the fixed 9 bps fee within the same unit of work.
func (e *Engine) FlashLoanArbitrage(caller, authority solana.PublicKey, loanAmount uint64, routes []*Route, expectedProfit uint64) (uint64, error) {
	return e.execute(caller, authority, routes, loanAmount, expectedProfit, true)
}

func (e *Engine) execute(caller, authority solana.PublicKey, routes []*Route, loanAmount, profitTarget uint64, flash bool) (uint64, error) {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()

	state, err := e.store.Load(authority)
	if err != nil {
		return 0, err
	}
	now := e.clock.Now()
	if err := admit(state, routes, profitTarget, now); err != nil {
		return 0, err
	}
	// admission answers first; a paused bot reports the pause even for a
	// malformed loan request
	if flash && loanAmount == 0 {
		return 0, fmt.Errorf("%w: loan amount is 0", ErrInvalidAmount)
	}
	j := newJournal(state)

	// The declared profit strategy derives the verdict from the caller's
	// target and the loan fee alone, so the guard runs before the first
	// irreversible transfer.
	var fee uint64
	if flash {
		fee, err = lending.FlashLoanFee(loanAmount)
		if err != nil {
			return 0, fmt.Errorf("%w: flash loan fee on %d", ErrArithmetic, loanAmount)
		}
	}
	profit := saturatingSub(profitTarget, fee)
	if profit == 0 {
		return 0, fmt.Errorf("%w: target %d, flash loan fee %d", ErrInsufficientProfit, profitTarget, fee)
	}

	// phase A, borrow
	var handle lending.LoanHandle
	if flash {
		handle, err = e.lending.Borrow(loanAmount)
		if err != nil {
			return 0, err
		}
	}

	// phase B, swap sequence
	for i, route := range routes {
		if err := route.validate(); err != nil {
			return 0, e.unwind(handle, loanAmount, flash, err)
		}
		adapter := e.venues.Venue(route.Venue)
		if adapter == nil {
			err = fmt.Errorf("%w: venue %s is unknown", ErrAccountValidation, route.Venue)
			return 0, e.unwind(handle, loanAmount, flash, err)
		}
		amountOut, err := adapter.Swap(route.InputAsset, route.OutputAsset, route.AmountIn, route.MinAmountOut)
		if err != nil {
			return 0, e.unwind(handle, loanAmount, flash, err)
		}
		e.log.Printf("hop %d on %s: %d %s -> %d %s", i+1, adapter.Name(),
			route.AmountIn, route.InputAsset, amountOut, route.OutputAsset)
	}

	// phase C, repay
	if flash {
		repay, err := lending.RepayAmount(loanAmount)
		if err != nil {
			return 0, e.unwind(handle, loanAmount, flash, fmt.Errorf("%w: repay amount on %d", ErrArithmetic, loanAmount))
		}
		if err := e.lending.Repay(handle, repay); err != nil {
			return 0, e.unwind(handle, loanAmount, flash, err)
		}
	}

	// phase E, commit
	trades, err := checkedAdd(j.state.TotalTrades, 1)
	if err != nil {
		return 0, err
	}
	if _, err := checkedAdd(e.wallet.Balance(e.botWallet, e.settleToken), profit); err != nil {
		return 0, fmt.Errorf("%w: bot wallet credit of %d", ErrArithmetic, profit)
	}
	j.credit(e.botWallet, e.settleToken, profit)
	j.state.LastExecutionTime = now
	j.state.TotalTrades = trades
	j.state.TotalProfit = saturatingAdd(j.state.TotalProfit, profit)
	kind := EventArbitrageExecuted
	if flash {
		kind = EventFlashLoanArbitrageExecuted
	}
	event := newEvent(kind, caller, authority, now)
	event.Profit = profit
	event.Amount = loanAmount
	event.RouteCount = len(routes)
	j.emit(event)
	if err := j.commit(e.store, e.wallet, e.emitter); err != nil {
		return 0, err
	}
	return profit, nil
}

// unwind returns the principal of an open loan after a failed attempt so
// the pool is left whole, then reports the original failure.
func (e *Engine) unwind(handle lending.LoanHandle, loanAmount uint64, flash bool, cause error) error {
	if !flash {
		return cause
	}
	if err := e.lending.Repay(handle, loanAmount); err != nil {
		e.log.Printf("unwind of loan %d failed: %v", handle, err)
	}
	return cause
}

func (e *Engine) Pause(caller, authority solana.PublicKey) error {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state, err := e.store.Load(authority)
	if err != nil {
		return err
	}
	if caller != state.Authority {
		return fmt.Errorf("%w: %s is not the authority", ErrUnauthorized, caller)
	}
	if state.IsPaused {
		// repeat pause is a no-op and emits nothing
		return nil
	}
	j := newJournal(state)
	j.state.IsPaused = true
	j.emit(newEvent(EventPaused, caller, authority, e.clock.Now()))
	return j.commit(e.store, e.wallet, e.emitter)
}

func (e *Engine) Resume(caller, authority solana.PublicKey) error {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state, err := e.store.Load(authority)
	if err != nil {
		return err
	}
	if caller != state.Authority {
		return fmt.Errorf("%w: %s is not the authority", ErrUnauthorized, caller)
	}
	if !state.IsPaused {
		return nil
	}
	j := newJournal(state)
	j.state.IsPaused = false
	j.emit(newEvent(EventResumed, caller, authority, e.clock.Now()))
	return j.commit(e.store, e.wallet, e.emitter)
}

// UpdateConfig replaces the minimum execution interval when newInterval
// is non-nil.
func (e *Engine) UpdateConfig(caller, authority solana.PublicKey, newInterval *int64) error {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state, err := e.store.Load(authority)
	if err != nil {
		return err
	}
	if caller != state.Authority {
		return fmt.Errorf("%w: %s is not the authority", ErrUnauthorized, caller)
	}
	if newInterval != nil && *newInterval < 0 {
		return fmt.Errorf("%w: min interval is %d", ErrInvalidAmount, *newInterval)
	}
	j := newJournal(state)
	if newInterval != nil {
		j.state.MinExecutionInterval = *newInterval
	}
	event := newEvent(EventConfigUpdated, caller, authority, e.clock.Now())
	event.MinInterval = j.state.MinExecutionInterval
	j.emit(event)
	return j.commit(e.store, e.wallet, e.emitter)
}

func (e *Engine) WithdrawProfits(caller, authority solana.PublicKey, amount uint64) error {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state, err := e.store.Load(authority)
	if err != nil {
		return err
	}
	if caller != state.Authority {
		return fmt.Errorf("%w: %s is not the authority", ErrUnauthorized, caller)
	}
	if amount == 0 {
		return fmt.Errorf("%w: withdraw amount is 0", ErrInvalidAmount)
	}
	if err := e.wallet.Transfer(e.botWallet, state.Authority, e.settleToken, amount); err != nil {
		return err
	}
	event := newEvent(EventProfitsWithdrawn, caller, authority, e.clock.Now())
	event.Amount = amount
	e.emitter.Emit(event)
	return nil
}

func (e *Engine) State(authority solana.PublicKey) (*BotState, error) {
	l := e.lock(authority)
	l.Lock()
	defer l.Unlock()
	state, err := e.store.Load(authority)
	if err != nil {
		return nil, err
	}
	return state.Copy(), nil
}
