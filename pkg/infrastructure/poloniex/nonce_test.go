package poloniex

import (
	"sync"
	"testing"
)

func TestNonceSource_Next_Increases(t *testing.T) {
	n := NewNonceSource()
	if n.last <= 0 {
		t.Fatalf("seed should be positive, got: %d", n.last)
	}

	prev := n.Next()
	for i := 0; i < 100; i++ {
		got := n.Next()
		if got != prev+nonceStep {
			t.Fatalf("nonce should advance by %d\nprev: %d\ngot: %d", nonceStep, prev, got)
		}
		prev = got
	}
}

func TestNonceSource_Next_Concurrent(t *testing.T) {
	n := NewNonceSource()

	const workers = 20
	const perWorker = 50

	values := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				values <- n.Next()
			}
		}()
	}
	wg.Wait()
	close(values)

	seen := map[int64]bool{}
	for v := range values {
		if seen[v] {
			t.Fatalf("nonce %d was issued twice", v)
		}
		seen[v] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("nonce count is wrong\nwant: %d\ngot: %d", workers*perWorker, len(seen))
	}
}
