package parallel

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

var errWorker = errors.New("worker failed")

// race starts n goroutines behind a barrier, each calling set with its index.
func race(n int, set func(i int)) {
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range n {
		wg.Go(func() {
			<-start
			set(i)
		})
	}
	close(start)
	wg.Wait()
}

func TestErrorCollector_Contention(t *testing.T) {
	for round := range 50 {
		var ec ErrorCollector
		race(512, func(i int) {
			ec.SetError(fmt.Errorf("partition %d: %w", i, errWorker))
		})
		if err := ec.Err(); !errors.Is(err, errWorker) {
			t.Fatalf("round %d: Err() = %v, want a wrapped worker error", round, err)
		}
	}
}

func TestErrorCollector_StableAfterFirst(t *testing.T) {
	var ec ErrorCollector
	race(256, func(i int) {
		if i%2 == 0 {
			ec.SetError(nil)
			return
		}
		ec.SetError(fmt.Errorf("partition %d: %w", i, errWorker))
	})
	first := ec.Err()
	if !errors.Is(first, errWorker) {
		t.Fatalf("Err() = %v, want a worker error", first)
	}

	race(64, func(i int) { ec.SetError(fmt.Errorf("late %d", i)) })
	if got := ec.Err(); got != first {
		t.Errorf("Err() changed from %v to %v", first, got)
	}
}

func TestErrorCollector_Sequential(t *testing.T) {
	var ec ErrorCollector
	ec.SetError(nil)
	if err := ec.Err(); err != nil {
		t.Fatalf("zero collector reported %v", err)
	}
	ec.SetError(errWorker)
	ec.SetError(errors.New("second"))
	if got := ec.Err(); got != errWorker {
		t.Errorf("Err() = %v, want the first error", got)
	}
}
