package engine

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	MaxHops = 4
)

// Route is one swap hop, supplied by the caller and never persisted.
// Hop order is execution order; hop n's output feeds hop n+1's input by
// caller convention.
type Route struct {
	Venue        solana.PublicKey
	InputAsset   solana.PublicKey
	OutputAsset  solana.PublicKey
	AmountIn     uint64
	MinAmountOut uint64
}

func (r *Route) validate() error {
	if r.AmountIn == 0 {
		return fmt.Errorf("%w: amount in is 0", ErrInvalidAmount)
	}
	if r.MinAmountOut == 0 {
		return fmt.Errorf("%w: min amount out is 0", ErrInvalidAmount)
	}
	if r.InputAsset == r.OutputAsset {
		return fmt.Errorf("%w: input asset is output asset (%s)", ErrInvalidSwapPair, r.InputAsset)
	}
	return nil
}
