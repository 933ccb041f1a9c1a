package parallel

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}

	var counter int64
	for i := 0; i < 100; i++ {
		if !pool.Submit(func() { atomic.AddInt64(&counter, 1) }) {
			t.Fatal("Submit returned false on an open pool")
		}
	}
	pool.Wait()

	if counter != 100 {
		t.Errorf("ran %d tasks, want 100", counter)
	}
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit succeeded on a closed pool")
	}
}

func TestWorkerPool_NonPositiveWorkerCount(t *testing.T) {
	pool, err := NewWorkerPool(0)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool failed: %v", err)
	}
	pool.Close()
	pool.Close() // must not panic
	pool.Wait()
}
