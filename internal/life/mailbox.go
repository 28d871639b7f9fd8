package life

import (
	"fmt"
	"sync/atomic"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// Mailbox carries inputs from any number of producer goroutines to the
// runner without blocking either side. Each producer writes to its own
// shard; the runner drains all shards from its loop.
type Mailbox struct {
	r         *ring.ShardedRing
	producers atomic.Uint64
}

// NewMailbox creates a mailbox holding up to capacity inputs spread over
// shards producer shards.
func NewMailbox(capacity, shards int) (*Mailbox, error) {
	r, err := ring.NewShardedRing(uint64(max(1, capacity)), uint64(max(1, shards)))
	if err != nil {
		return nil, fmt.Errorf("life: mailbox: %w", err)
	}
	return &Mailbox{r: r}, nil
}

// Producer returns a producer ID for a new sending goroutine. IDs beyond
// the shard count share shards.
func (m *Mailbox) Producer() uint64 {
	return m.producers.Add(1) - 1
}

// Post offers in from producer pid and reports whether there was room.
func (m *Mailbox) Post(pid uint64, in Input) bool {
	return m.r.Write(pid, in)
}

// Receive returns the next posted input, if any.
func (m *Mailbox) Receive() (Input, bool) {
	v, ok := m.r.TryRead()
	if !ok {
		return Input{}, false
	}
	in, ok := v.(Input)
	return in, ok
}
