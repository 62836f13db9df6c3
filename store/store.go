package store

import (
	"context"
	"log"

	"github.com/gagliardetto/solana-go"

	"github.com/egaotan/arbitrage-bot/engine"
)

// Store is the durable backend: synchronous BotState reads and writes,
// and an append-only event trail written by a background goroutine.
type Store struct {
	ctx       context.Context
	log       *log.Logger
	eventChan chan *engine.Event
	dao       *Dao
}

func NewStore(ctx context.Context, logger *log.Logger, url, scheme, user, passwd string) *Store {
	s := &Store{
		ctx:       ctx,
		log:       logger,
		eventChan: make(chan *engine.Event, 32),
	}
	s.dao = NewDao(url, scheme, user, passwd)
	return s
}

func (s *Store) Start() {
	go s.store()
}

func (s *Store) Stop() {

}

func (s *Store) store() {
	for {
		select {
		case event := <-s.eventChan:
			if err := s.dao.SaveEvent(toEventRecord(event)); err != nil {
				s.log.Printf("save event %s err: %v", event.Id, err)
			}
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Store) Emit(event *engine.Event) {
	s.eventChan <- event
}

func (s *Store) Create(state *engine.BotState) error {
	return s.dao.CreateBotState(toStateRecord(state))
}

func (s *Store) Load(authority solana.PublicKey) (*engine.BotState, error) {
	record, err := s.dao.SelectBotState(authority.String())
	if err != nil {
		return nil, err
	}
	return fromStateRecord(record)
}

func (s *Store) Save(state *engine.BotState) error {
	return s.dao.SaveBotState(toStateRecord(state))
}

func (s *Store) GetEvents(authority solana.PublicKey) ([]*EventRecord, error) {
	return s.dao.SelectEvents(authority.String())
}

func toStateRecord(state *engine.BotState) *BotStateRecord {
	return &BotStateRecord{
		Authority:         state.Authority.String(),
		IsPaused:          state.IsPaused,
		MinInterval:       state.MinExecutionInterval,
		LastExecutionTime: state.LastExecutionTime,
		TotalTrades:       state.TotalTrades,
		TotalProfit:       state.TotalProfit,
		Version:           state.Version,
	}
}

func fromStateRecord(record *BotStateRecord) (*engine.BotState, error) {
	authority, err := solana.PublicKeyFromBase58(record.Authority)
	if err != nil {
		return nil, err
	}
	return &engine.BotState{
		Authority:            authority,
		IsPaused:             record.IsPaused,
		MinExecutionInterval: record.MinInterval,
		LastExecutionTime:    record.LastExecutionTime,
		TotalTrades:          record.TotalTrades,
		TotalProfit:          record.TotalProfit,
		Version:              record.Version,
	}, nil
}

func toEventRecord(event *engine.Event) *EventRecord {
	return &EventRecord{
		Id:          event.Id,
		Kind:        event.Kind,
		Actor:       event.Actor.String(),
		Authority:   event.Authority.String(),
		Profit:      event.Profit,
		Amount:      event.Amount,
		RouteCount:  event.RouteCount,
		MinInterval: event.MinInterval,
		Timestamp:   event.Timestamp,
	}
}
