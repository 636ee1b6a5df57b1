package gridsearch

import (
	"slices"
	"testing"
)

func TestPQ(t *testing.T) {
	tests := []struct {
		name string
		q    *PQ[string, float64]
		want []string
	}{
		{"min", MinQueue[string, float64](), []string{"a", "b", "c", "d"}},
		{"max", MaxQueue[string, float64](), []string{"d", "c", "b", "a"}},
	}
	for _, tt := range tests {
		items := map[string]*PQI[string, float64]{}
		for i, v := range []string{"c", "a", "d", "b"} {
			items[v] = &PQI[string, float64]{V: v, P: float64(i)}
			tt.q.Push(items[v])
		}
		for i, v := range []string{"a", "b", "c", "d"} {
			items[v].P = float64(i) / 2
			tt.q.Update(items[v])
		}
		var got []string
		for tt.q.Len() > 0 {
			it := tt.q.Pop()
			if it.Index() != -1 {
				t.Errorf("%s: popped %v has index %d", tt.name, it, it.Index())
			}
			got = append(got, it.V)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: pop order = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestQueueStack(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	if !slices.Equal(got, []int{1, 2}) || q.Len() != 1 {
		t.Errorf("queue popped %v, %d left; want [1 2], 1 left", got, q.Len())
	}

	var s Stack[int]
	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	if got := s.Drain(); !slices.Equal(got, []int{3, 2, 1}) || s.Len() != 0 {
		t.Errorf("Drain = %v, %d left; want [3 2 1], 0 left", got, s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack returned ok")
	}
}
