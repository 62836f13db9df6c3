package engine

import (
	"fmt"
)

// admit runs the precondition checks in fixed order before any side
// effect. The first failure aborts the whole attempt.
func admit(state *BotState, routes []*Route, profitTarget uint64, now int64) error {
	if state.IsPaused {
		return ErrBotPaused
	}
	if len(routes) == 0 {
		return ErrEmptyRoutes
	}
	if len(routes) > MaxHops {
		return fmt.Errorf("%w: %d hops, max is %d", ErrTooManyHops, len(routes), MaxHops)
	}
	if profitTarget == 0 {
		return fmt.Errorf("%w: profit target is 0", ErrInvalidAmount)
	}
	if now-state.LastExecutionTime < state.MinExecutionInterval {
		return fmt.Errorf("%w: %d seconds since last execution, min interval is %d",
			ErrExecutionTooFrequent, now-state.LastExecutionTime, state.MinExecutionInterval)
	}
	return nil
}
