package engine

import (
	"github.com/gagliardetto/solana-go"
)

// StateStore persists one BotState per authority. Create fails when a
// record for the authority already exists; Load and Save are atomic with
// respect to the enclosing unit of work.
type StateStore interface {
	Create(state *BotState) error
	Load(authority solana.PublicKey) (*BotState, error)
	Save(state *BotState) error
}

// Wallet is the transfer primitive the bot settles through.
type Wallet interface {
	Balance(owner, token solana.PublicKey) uint64
	Credit(owner, token solana.PublicKey, amount uint64) error
	Transfer(from, to, token solana.PublicKey, amount uint64) error
}
