package app

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/egaotan/arbitrage-bot/engine"
	"github.com/egaotan/arbitrage-bot/ledger"
	"github.com/egaotan/arbitrage-bot/store"
)

type RouteRequest struct {
	Venue        string `json:"venue"`
	InputAsset   string `json:"input_asset"`
	OutputAsset  string `json:"output_asset"`
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out"`
}

type ExecuteRequest struct {
	Caller    string          `json:"caller"`
	Routes    []*RouteRequest `json:"routes"`
	MinProfit uint64          `json:"min_profit"`
}

type FlashLoanRequest struct {
	Caller         string          `json:"caller"`
	LoanAmount     uint64          `json:"loan_amount"`
	Routes         []*RouteRequest `json:"routes"`
	ExpectedProfit uint64          `json:"expected_profit"`
}

type AdminRequest struct {
	Caller string `json:"caller"`
}

type ConfigRequest struct {
	Caller      string `json:"caller"`
	MinInterval *int64 `json:"min_interval"`
}

type WithdrawRequest struct {
	Caller string `json:"caller"`
	Amount uint64 `json:"amount"`
}

type ExecuteResponse struct {
	Profit   uint64 `json:"profit"`
	ProfitUi string `json:"profit_ui"`
}

type StateView struct {
	Authority         string `json:"authority"`
	IsPaused          bool   `json:"is_paused"`
	MinInterval       int64  `json:"min_interval"`
	LastExecutionTime string `json:"last_execution_time"`
	TotalTrades       uint64 `json:"total_trades"`
	TotalProfit       string `json:"total_profit"`
}

type EventView struct {
	Id          string `json:"id"`
	Kind        string `json:"kind"`
	Actor       string `json:"actor"`
	Profit      string `json:"profit"`
	Amount      string `json:"amount"`
	RouteCount  int    `json:"route_count"`
	MinInterval int64  `json:"min_interval"`
	Time        string `json:"time"`
}

func parseRoutes(requests []*RouteRequest) ([]*engine.Route, error) {
	routes := make([]*engine.Route, 0, len(requests))
	for i, request := range requests {
		venue, err := solana.PublicKeyFromBase58(request.Venue)
		if err != nil {
			return nil, fmt.Errorf("route %d venue: %v", i, err)
		}
		inputAsset, err := solana.PublicKeyFromBase58(request.InputAsset)
		if err != nil {
			return nil, fmt.Errorf("route %d input asset: %v", i, err)
		}
		outputAsset, err := solana.PublicKeyFromBase58(request.OutputAsset)
		if err != nil {
			return nil, fmt.Errorf("route %d output asset: %v", i, err)
		}
		routes = append(routes, &engine.Route{
			Venue:        venue,
			InputAsset:   inputAsset,
			OutputAsset:  outputAsset,
			AmountIn:     request.AmountIn,
			MinAmountOut: request.MinAmountOut,
		})
	}
	return routes, nil
}

func buildStateView(state *engine.BotState, decimals int32) *StateView {
	lastExecution := ""
	if state.LastExecutionTime != 0 {
		lastExecution = time.Unix(state.LastExecutionTime, 0).Format("2006-01-02 15:04:05")
	}
	return &StateView{
		Authority:         state.Authority.String(),
		IsPaused:          state.IsPaused,
		MinInterval:       state.MinExecutionInterval,
		LastExecutionTime: lastExecution,
		TotalTrades:       state.TotalTrades,
		TotalProfit:       ledger.AmountUi(state.TotalProfit, decimals).StringFixed(decimals),
	}
}

func buildEventViews(records []*store.EventRecord, decimals int32) []*EventView {
	views := make([]*EventView, 0, len(records))
	for _, record := range records {
		views = append(views, &EventView{
			Id:          record.Id,
			Kind:        record.Kind,
			Actor:       record.Actor,
			Profit:      ledger.AmountUi(record.Profit, decimals).StringFixed(decimals),
			Amount:      ledger.AmountUi(record.Amount, decimals).StringFixed(decimals),
			RouteCount:  record.RouteCount,
			MinInterval: record.MinInterval,
			Time:        time.Unix(record.Timestamp, 0).Format("2006-01-02 15:04:05"),
		})
	}
	return views
}
