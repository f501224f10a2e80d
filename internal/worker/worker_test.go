package worker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3, 0)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaults(t *testing.T) {
	p := NewPool(0, -1)
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestTrySubmit(t *testing.T) {
	block := make(chan struct{})
	p := NewPool(1, 1)

	// Occupy the single worker, then fill the queue.
	p.Submit(func() { <-block })
	require.True(t, p.TrySubmit(func() {}))
	require.False(t, p.TrySubmit(func() {}))

	close(block)
	p.Stop()
}
