package fanout_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/app/fanout"
)

var languages = []string{"en", "ja", "ko", "zh-Hans", "zh-Hant"}

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (string, error) {
		t.Fatal("fn should not be called for empty items")
		return "", nil
	})

	if results == nil {
		t.Fatal("expected non-nil slice for empty items")
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

func TestRun_PartialFailureKeepsSiblings(t *testing.T) {
	t.Parallel()

	errDown := errors.New("cms down")

	results := fanout.Run(context.Background(), 3, languages, func(_ context.Context, lang string) (string, error) {
		if lang == "ko" {
			return "", errDown
		}
		return lang + ".json", nil
	})

	if len(results) != len(languages) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(languages))
	}
	for i, r := range results {
		if languages[i] == "ko" {
			if !errors.Is(r.Err, errDown) {
				t.Errorf("results[%d].Err = %v, want %v", i, r.Err, errDown)
			}
			continue
		}
		if r.Err != nil || r.Value != languages[i]+".json" {
			t.Errorf("results[%d] = {%q, %v}, want {%q, nil}", i, r.Value, r.Err, languages[i]+".json")
		}
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 5 * time.Millisecond, 15 * time.Millisecond}

	results := fanout.Run(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Value != delays[i] {
			t.Errorf("results[%d].Value = %v, want %v", i, r.Value, delays[i])
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var peak, active atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (struct{}, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		return struct{}{}, nil
	})

	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_SingleWorkerRunsInOrder(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		order []string
	)

	fanout.Run(context.Background(), 1, languages, func(_ context.Context, lang string) (struct{}, error) {
		mu.Lock()
		order = append(order, lang)
		mu.Unlock()
		return struct{}{}, nil
	})

	if len(order) != len(languages) {
		t.Fatalf("called %d times, want %d", len(order), len(languages))
	}
	for i := range languages {
		if order[i] != languages[i] {
			t.Fatalf("call order = %v, want %v", order, languages)
		}
	}
}

func TestRun_SingleWorkerStopsAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, languages, func(_ context.Context, lang string) (string, error) {
		calls.Add(1)
		if lang == "ja" {
			cancel()
		}
		return lang, nil
	})

	if got := calls.Load(); got != 2 {
		t.Fatalf("fn called %d times, want 2", got)
	}
	for i := 2; i < len(results); i++ {
		if !errors.Is(results[i].Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, results[i].Err)
		}
	}
}

func TestRun_CancelWhileWaitingForSlot(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})

	items := []int{0, 1, 2, 3}
	var started atomic.Int32

	go func() {
		for started.Load() < 2 {
			time.Sleep(time.Millisecond)
		}
		time.Sleep(20 * time.Millisecond)
		cancel()
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	results := fanout.Run(ctx, 2, items, func(_ context.Context, n int) (int, error) {
		started.Add(1)
		<-release
		return n, nil
	})

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected at least one result with context.Canceled error")
	}
}
