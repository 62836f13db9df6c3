package engine

import (
	"time"
)

// Clock supplies the timestamp used by the rate limiter and every
// committed state transition.
type Clock interface {
	Now() int64
}

type SystemClock struct {
}

func (c *SystemClock) Now() int64 {
	return time.Now().Unix()
}
