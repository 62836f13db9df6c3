package venue

import (
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrSlippageExceeded      = errors.New("slippage exceeded")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrUnknownAsset          = errors.New("asset is not traded on this venue")
)

var (
	Orca    = solana.MustPublicKeyFromBase58("9W959DqEETiGZocYWCQPaJ6sBmUzgfxXfqGeTEdp3aQP")
	Raydium = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	Phoenix = solana.MustPublicKeyFromBase58("PhoeNiXZ8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdXY")
)

// Adapter executes a single swap on one external trading venue. The
// returned amount honors minAmountOut; a shortfall fails with
// ErrSlippageExceeded, an exhausted pool with ErrInsufficientLiquidity.
type Adapter interface {
	Name() string
	Id() solana.PublicKey
	Swap(inputAsset, outputAsset solana.PublicKey, amountIn, minAmountOut uint64) (uint64, error)
}

type Registry struct {
	mu     sync.RWMutex
	venues map[solana.PublicKey]Adapter
}

func NewRegistry() *Registry {
	return &Registry{
		venues: make(map[solana.PublicKey]Adapter),
	}
}

func (r *Registry) Register(adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues[adapter.Id()] = adapter
}

func (r *Registry) Venue(id solana.PublicKey) Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.venues[id]
}

func (r *Registry) Venues() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapters := make([]Adapter, 0, len(r.venues))
	for _, adapter := range r.venues {
		adapters = append(adapters, adapter)
	}
	return adapters
}
