package gridsearch

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
)

func TestParallel(t *testing.T) {
	var running, peak atomic.Int32
	got, err := Parallel(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(_ context.Context, v int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return v * v, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 4, 9, 16, 25}; !slices.Equal(got, want) {
		t.Errorf("Parallel = %v, want %v", got, want)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("%d calls ran at once, limit 2", p)
	}
}

func TestParallelError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parallel(context.Background(), []int{1, 2, 3}, 0, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}
