package engine

import (
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

const (
	EventStateInitialized           = "StateInitialized"
	EventArbitrageExecuted          = "ArbitrageExecuted"
	EventFlashLoanArbitrageExecuted = "FlashLoanArbitrageExecuted"
	EventPaused                     = "Paused"
	EventResumed                    = "Resumed"
	EventConfigUpdated              = "ConfigUpdated"
	EventProfitsWithdrawn           = "ProfitsWithdrawn"
)

// Event is one entry in the append-only audit trail. A committed
// operation releases exactly one event.
type Event struct {
	Id          string
	Kind        string
	Actor       solana.PublicKey
	Authority   solana.PublicKey
	Profit      uint64
	Amount      uint64
	RouteCount  int
	MinInterval int64
	Timestamp   int64
}

type Emitter interface {
	Emit(event *Event)
}

func newEvent(kind string, actor, authority solana.PublicKey, timestamp int64) *Event {
	return &Event{
		Id:        uuid.NewString(),
		Kind:      kind,
		Actor:     actor,
		Authority: authority,
		Timestamp: timestamp,
	}
}
