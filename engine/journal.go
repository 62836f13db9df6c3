package engine

import (
	"github.com/badgerodon/collections/queue"
	"github.com/gagliardetto/solana-go"
)

// journal is the staged-commit unit of work. All state writes happen on a
// private copy, the settlement credit is staged, and all events are
// queued; nothing is observable until commit applies them in one step.
// Dropping the journal discards everything.
type journal struct {
	state        *BotState
	events       *queue.Queue
	creditOwner  solana.PublicKey
	creditToken  solana.PublicKey
	creditAmount uint64
}

func newJournal(state *BotState) *journal {
	return &journal{
		state:  state.Copy(),
		events: queue.New(),
	}
}

func (j *journal) emit(event *Event) {
	j.events.Enqueue(event)
}

func (j *journal) credit(owner, token solana.PublicKey, amount uint64) {
	j.creditOwner = owner
	j.creditToken = token
	j.creditAmount = amount
}

func (j *journal) commit(store StateStore, wallet Wallet, emitter Emitter) error {
	if err := store.Save(j.state); err != nil {
		return err
	}
	if j.creditAmount != 0 {
		if err := wallet.Credit(j.creditOwner, j.creditToken, j.creditAmount); err != nil {
			return err
		}
	}
	for j.events.Len() > 0 {
		emitter.Emit(j.events.Dequeue().(*Event))
	}
	return nil
}
