package life_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/axcontainers/internal/life"
)

func TestMailbox(t *testing.T) {
	mb, err := life.NewMailbox(64, 2)
	require.NoError(t, err)

	_, ok := mb.Receive()
	require.False(t, ok)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pid := mb.Producer()
			for i := range 4 {
				for !mb.Post(pid, life.Input{Kind: life.InputRate, Delta: int(pid)*10 + i}) {
				}
			}
		}()
	}
	wg.Wait()

	var got []int
	for {
		in, ok := mb.Receive()
		if !ok {
			break
		}
		got = append(got, in.Delta)
	}
	require.ElementsMatch(t, []int{0, 1, 2, 3, 10, 11, 12, 13}, got)
}
