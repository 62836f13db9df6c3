package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/egaotan/arbitrage-bot/dingsdk"
	"github.com/egaotan/arbitrage-bot/engine"
	"github.com/egaotan/arbitrage-bot/ledger"
)

// Notify pushes committed executions to the webhook off the commit path.
type Notify struct {
	ctx      context.Context
	wg       sync.WaitGroup
	dsdk     *dingsdk.DingSdk
	decimals int32
	events   chan *engine.Event
}

func NewNotify(ctx context.Context, dsdk *dingsdk.DingSdk, decimals int32) *Notify {
	notify := &Notify{
		ctx:      ctx,
		dsdk:     dsdk,
		decimals: decimals,
		events:   make(chan *engine.Event, 32),
	}
	return notify
}

func (notify *Notify) Start() {
	notify.wg.Add(1)
	go notify.listen()
}

func (notify *Notify) Stop() {
	notify.wg.Wait()
}

func (notify *Notify) Emit(event *engine.Event) {
	select {
	case notify.events <- event:
	default:
	}
}

func (notify *Notify) listen() {
	defer notify.wg.Done()
	for {
		select {
		case event := <-notify.events:
			notify.tryNotify(event)
		case <-notify.ctx.Done():
			return
		}
	}
}

func (notify *Notify) tryNotify(event *engine.Event) {
	if event.Kind != engine.EventArbitrageExecuted && event.Kind != engine.EventFlashLoanArbitrageExecuted {
		return
	}
	items := make([]string, 0)
	items = append(items, fmt.Sprintf("%s: ", event.Kind))
	items = append(items, fmt.Sprintf("caller: %s;", event.Actor))
	items = append(items, fmt.Sprintf("profit: %s;", ledger.AmountUi(event.Profit, notify.decimals).StringFixed(2)))
	if event.Amount != 0 {
		items = append(items, fmt.Sprintf("loan: %s;", ledger.AmountUi(event.Amount, notify.decimals).StringFixed(2)))
	}
	items = append(items, fmt.Sprintf("hops: %d;", event.RouteCount))
	items = append(items, fmt.Sprintf("time: %s;", time.Unix(event.Timestamp, 0).Format("2006-01-02 15:04:05")))
	if _, err := notify.dsdk.NotifyText(strings.Join(items, "\n")); err != nil {
		return
	}
}
