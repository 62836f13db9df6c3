package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateLayout(t *testing.T) {
	state := NewBotState(testKey(1), 60)
	state.IsPaused = true
	state.LastExecutionTime = 1_700_000_000
	state.TotalTrades = 7
	state.TotalProfit = 12345

	data, err := state.Marshal()
	require.NoError(t, err)
	require.Len(t, data, StateLayoutSize)

	// authority bytes lead, paused flag follows, version tag closes
	assert.Equal(t, byte(1), data[31])
	assert.Equal(t, byte(1), data[32])
	assert.Equal(t, StateVersion, data[StateLayoutSize-1])

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)
}

func TestStateLayoutRejectsBadInput(t *testing.T) {
	_, err := Unmarshal(make([]byte, 10))
	assert.ErrorIs(t, err, ErrAccountValidation)

	state := NewBotState(testKey(1), 0)
	data, err := state.Marshal()
	require.NoError(t, err)
	data[StateLayoutSize-1] = 9
	_, err = Unmarshal(data)
	assert.ErrorIs(t, err, ErrAccountValidation)
}

func TestCounterMath(t *testing.T) {
	sum, err := checkedAdd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sum)

	_, err = checkedAdd(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrArithmetic)

	assert.Equal(t, uint64(math.MaxUint64), saturatingAdd(math.MaxUint64-1, 5))
	assert.Equal(t, uint64(7), saturatingAdd(3, 4))
	assert.Equal(t, uint64(0), saturatingSub(3, 4))
	assert.Equal(t, uint64(1), saturatingSub(4, 3))
}
