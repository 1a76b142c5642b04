package locker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLockService(t *testing.T) {
	svc := NewLockService(zap.NewNop())

	t.Run("serializes holders of the same key", func(t *testing.T) {
		const workers = 50
		counter := 0

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				svc.Lock("schedule-lock:inst-1:Mon")
				defer svc.Unlock("schedule-lock:inst-1:Mon")
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, workers, counter)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		svc.Lock("schedule-lock:inst-1:Mon")
		defer svc.Unlock("schedule-lock:inst-1:Mon")

		done := make(chan struct{})
		go func() {
			svc.Lock("schedule-lock:inst-2:Mon")
			svc.Unlock("schedule-lock:inst-2:Mon")
			close(done)
		}()

		<-done
	})

	t.Run("unlock of an unheld key does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			svc.Unlock("never-locked")
		})
	})
}
