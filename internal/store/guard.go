package store

import "sync/atomic"

// Guard detects concurrent mutation of a container.
//
// The containers are single-owner: exactly one goroutine may mutate an
// instance at a time. A Guard turns a violation of that contract into a
// panic instead of silent corruption. It costs one CAS and one store per
// guarded call.
//
// The zero value is ready to use.
type Guard struct {
	active atomic.Uint32
}

// Enter marks the start of a mutating call. It panics if another mutating
// call is already in progress. op names the container method in the panic
// message.
func (g *Guard) Enter(op string) {
	if !g.active.CompareAndSwap(0, 1) {
		panic("axcontainers: concurrent " + op + " on single-owner container")
	}
}

// Exit marks the end of a mutating call.
func (g *Guard) Exit() {
	g.active.Store(0)
}
