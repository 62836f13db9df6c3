package venue

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// AmmPool is a constant-product market maker over one token pair. It is
// the in-process venue used by the simulate mode and by tests.
type AmmPool struct {
	mu                  sync.Mutex
	id                  solana.PublicKey
	name                string
	tokenA              solana.PublicKey
	tokenB              solana.PublicKey
	reserveA            uint64
	reserveB            uint64
	tradeFeeNumerator   uint64
	tradeFeeDenominator uint64
}

func NewAmmPool(id solana.PublicKey, name string, tokenA, tokenB solana.PublicKey, reserveA, reserveB uint64) *AmmPool {
	return &AmmPool{
		id:                  id,
		name:                name,
		tokenA:              tokenA,
		tokenB:              tokenB,
		reserveA:            reserveA,
		reserveB:            reserveB,
		tradeFeeNumerator:   25,
		tradeFeeDenominator: 10000,
	}
}

func (p *AmmPool) SetFee(numerator, denominator uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tradeFeeNumerator = numerator
	p.tradeFeeDenominator = denominator
}

func (p *AmmPool) Name() string {
	return p.name
}

func (p *AmmPool) Id() solana.PublicKey {
	return p.id
}

func (p *AmmPool) Reserves() (uint64, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reserveA, p.reserveB
}

func (p *AmmPool) Swap(inputAsset, outputAsset solana.PublicKey, amountIn, minAmountOut uint64) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if inputAsset != p.tokenA && inputAsset != p.tokenB {
		return 0, fmt.Errorf("%w: %s on %s", ErrUnknownAsset, inputAsset, p.name)
	}
	if outputAsset != p.tokenA && outputAsset != p.tokenB {
		return 0, fmt.Errorf("%w: %s on %s", ErrUnknownAsset, outputAsset, p.name)
	}
	fee := p.tradingFee(amountIn)
	amountLessFees := new(big.Int).Sub(new(big.Int).SetUint64(amountIn), fee)
	if amountLessFees.Cmp(new(big.Int).SetUint64(0)) <= 0 {
		return 0, fmt.Errorf("%w: amount %d is below the trading fee", ErrInsufficientLiquidity, amountIn)
	}
	sourceAmount := new(big.Int).SetUint64(p.reserveA)
	destinationAmount := new(big.Int).SetUint64(p.reserveB)
	if inputAsset == p.tokenB {
		sourceAmount = new(big.Int).SetUint64(p.reserveB)
		destinationAmount = new(big.Int).SetUint64(p.reserveA)
	}
	invariant := new(big.Int).Mul(sourceAmount, destinationAmount)
	newSourceAmount := new(big.Int).Add(sourceAmount, amountLessFees)
	newDestinationAmount := new(big.Int).Div(invariant, newSourceAmount)
	amountOut := new(big.Int).Sub(destinationAmount, newDestinationAmount)
	if !amountOut.IsUint64() || amountOut.Uint64() == 0 {
		return 0, fmt.Errorf("%w: pool %s is exhausted", ErrInsufficientLiquidity, p.name)
	}
	out := amountOut.Uint64()
	if out < minAmountOut {
		return 0, fmt.Errorf("%w: amount out %d is less than %d", ErrSlippageExceeded, out, minAmountOut)
	}
	if inputAsset == p.tokenA {
		p.reserveA = newSourceAmount.Uint64()
		p.reserveB = newDestinationAmount.Uint64()
	} else {
		p.reserveB = newSourceAmount.Uint64()
		p.reserveA = newDestinationAmount.Uint64()
	}
	return out, nil
}

func (p *AmmPool) tradingFee(amount uint64) *big.Int {
	if p.tradeFeeNumerator == 0 || amount == 0 {
		return new(big.Int).SetUint64(0)
	}
	fee := new(big.Int).Div(
		new(big.Int).Mul(
			new(big.Int).SetUint64(amount),
			new(big.Int).SetUint64(p.tradeFeeNumerator),
		),
		new(big.Int).SetUint64(p.tradeFeeDenominator),
	)
	if fee.Cmp(new(big.Int).SetUint64(0)) == 0 {
		return new(big.Int).SetUint64(1)
	}
	return fee
}
