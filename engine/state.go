package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
)

var (
	StateVersion    = uint8(1)
	StateLayoutSize = 66
)

type BotState struct {
	Authority            solana.PublicKey
	IsPaused             bool
	MinExecutionInterval int64
	LastExecutionTime    int64
	TotalTrades          uint64
	TotalProfit          uint64
	Version              uint8
}

func NewBotState(authority solana.PublicKey, minInterval int64) *BotState {
	return &BotState{
		Authority:            authority,
		MinExecutionInterval: minInterval,
		Version:              StateVersion,
	}
}

func (s *BotState) Copy() *BotState {
	c := *s
	return &c
}

type stateLayout struct {
	Authority            [32]byte
	IsPaused             uint8
	MinExecutionInterval int64
	LastExecutionTime    int64
	TotalTrades          uint64
	TotalProfit          uint64
	Version              uint8
}

func (s *BotState) Marshal() ([]byte, error) {
	layout := stateLayout{
		Authority:            s.Authority,
		MinExecutionInterval: s.MinExecutionInterval,
		LastExecutionTime:    s.LastExecutionTime,
		TotalTrades:          s.TotalTrades,
		TotalProfit:          s.TotalProfit,
		Version:              s.Version,
	}
	if s.IsPaused {
		layout.IsPaused = 1
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, &layout); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (*BotState, error) {
	if len(data) != StateLayoutSize {
		return nil, fmt.Errorf("%w: state layout size is %d, not %d", ErrAccountValidation, len(data), StateLayoutSize)
	}
	layout := stateLayout{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &layout); err != nil {
		return nil, err
	}
	if layout.Version != StateVersion {
		return nil, fmt.Errorf("%w: state version is %d, not %d", ErrAccountValidation, layout.Version, StateVersion)
	}
	return &BotState{
		Authority:            layout.Authority,
		IsPaused:             layout.IsPaused != 0,
		MinExecutionInterval: layout.MinExecutionInterval,
		LastExecutionTime:    layout.LastExecutionTime,
		TotalTrades:          layout.TotalTrades,
		TotalProfit:          layout.TotalProfit,
		Version:              layout.Version,
	}, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrArithmetic
	}
	return a + b, nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
