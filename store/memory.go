package store

import (
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/egaotan/arbitrage-bot/engine"
)

// MemoryStore keeps BotState records and the event trail in memory. It
// backs the simulate mode, where no MySQL instance is wired.
type MemoryStore struct {
	mu     sync.Mutex
	states map[solana.PublicKey]*engine.BotState
	events []*engine.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		states: make(map[solana.PublicKey]*engine.BotState),
	}
}

func (s *MemoryStore) Start() {
}

func (s *MemoryStore) Stop() {
}

func (s *MemoryStore) Create(state *engine.BotState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[state.Authority]; ok {
		return engine.ErrAlreadyInitialized
	}
	s.states[state.Authority] = state.Copy()
	return nil
}

func (s *MemoryStore) Load(authority solana.PublicKey) (*engine.BotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[authority]
	if !ok {
		return nil, engine.ErrStateNotFound
	}
	return state.Copy(), nil
}

func (s *MemoryStore) Save(state *engine.BotState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[state.Authority]; !ok {
		return engine.ErrStateNotFound
	}
	s.states[state.Authority] = state.Copy()
	return nil
}

func (s *MemoryStore) Emit(event *engine.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *MemoryStore) Events(authority solana.PublicKey) []*engine.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]*engine.Event, 0, len(s.events))
	for _, event := range s.events {
		if event.Authority == authority {
			events = append(events, event)
		}
	}
	return events
}

func (s *MemoryStore) GetEvents(authority solana.PublicKey) ([]*EventRecord, error) {
	events := s.Events(authority)
	records := make([]*EventRecord, 0, len(events))
	for _, event := range events {
		records = append(records, toEventRecord(event))
	}
	return records, nil
}
