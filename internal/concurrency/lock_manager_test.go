package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLockReturnsSameMutexForKey(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("round:alice:slots")
	b := lm.GetLock("round:alice:slots")
	assert.Same(t, a, b)

	c := lm.GetLock("round:alice:dice")
	assert.NotSame(t, a, c)
}

func TestWithLockSerializesSameKey(t *testing.T) {
	lm := NewLockManager()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = lm.WithLock("round:bob:blackjack", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestRoundKey(t *testing.T) {
	assert.Equal(t, "round:alice:slots", RoundKey("alice", "slots"))
	assert.NotEqual(t, RoundKey("alice", "slots"), RoundKey("alice", "dice"))
}
