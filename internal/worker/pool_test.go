package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsEveryTask(t *testing.T) {
	pool := NewPool(3, 10)

	var ran int64
	for i := 0; i < 10; i++ {
		pool.Submit(func(context.Context) error {
			atomic.AddInt64(&ran, 1)
			return nil
		})
	}
	pool.Close()

	results := 0
	for res := range pool.Run(context.Background()) {
		if res.Err != nil {
			t.Fatalf("unexpected task error: %v", res.Err)
		}
		results++
	}

	if results != 10 {
		t.Fatalf("expected 10 results, got %d", results)
	}
	if atomic.LoadInt64(&ran) != 10 {
		t.Fatalf("expected 10 executions, got %d", ran)
	}
}

func TestPool_ReportsTaskErrors(t *testing.T) {
	pool := NewPool(2, 2)
	wantErr := errors.New("boom")

	pool.Submit(func(context.Context) error { return wantErr })
	pool.Submit(func(context.Context) error { return nil })
	pool.Close()

	failed := 0
	for res := range pool.Run(context.Background()) {
		if res.Err != nil {
			failed++
			if !errors.Is(res.Err, wantErr) {
				t.Fatalf("unexpected error: %v", res.Err)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed result, got %d", failed)
	}
}

func TestPool_StopsOnContextCancel(t *testing.T) {
	pool := NewPool(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	pool.Submit(func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	})
	pool.Close()

	done := make(chan struct{})
	go func() {
		for range pool.Run(ctx) {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("pool did not stop after cancellation")
	}
}
