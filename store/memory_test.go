package store

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egaotan/arbitrage-bot/engine"
)

func authorityKey(n byte) solana.PublicKey {
	var key solana.PublicKey
	key[31] = n
	return key
}

func TestMemoryStoreStates(t *testing.T) {
	s := NewMemoryStore()
	alice := authorityKey(1)

	_, err := s.Load(alice)
	assert.ErrorIs(t, err, engine.ErrStateNotFound)
	assert.ErrorIs(t, s.Save(engine.NewBotState(alice, 0)), engine.ErrStateNotFound)

	require.NoError(t, s.Create(engine.NewBotState(alice, 60)))
	assert.ErrorIs(t, s.Create(engine.NewBotState(alice, 0)), engine.ErrAlreadyInitialized)

	state, err := s.Load(alice)
	require.NoError(t, err)
	assert.Equal(t, int64(60), state.MinExecutionInterval)

	// the store hands out copies, mutating one must not leak
	state.TotalTrades = 99
	reloaded, err := s.Load(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), reloaded.TotalTrades)

	state.TotalTrades = 1
	require.NoError(t, s.Save(state))
	reloaded, err = s.Load(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), reloaded.TotalTrades)
}

func TestMemoryStoreEvents(t *testing.T) {
	s := NewMemoryStore()
	alice := authorityKey(1)
	bob := authorityKey(2)

	s.Emit(&engine.Event{Id: "a", Kind: engine.EventPaused, Authority: alice, Actor: alice, Timestamp: 10})
	s.Emit(&engine.Event{Id: "b", Kind: engine.EventResumed, Authority: bob, Actor: bob, Timestamp: 20})

	records, err := s.GetEvents(alice)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].Id)
	assert.Equal(t, engine.EventPaused, records[0].Kind)
	assert.Equal(t, alice.String(), records[0].Authority)
}
