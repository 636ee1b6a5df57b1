package gridsearch

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO list.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// Drain pops every element into a new slice, last pushed first.
func (s *Stack[T]) Drain() []T {
	out := make([]T, 0, len(s.s))
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		out = append(out, v)
	}
	return out
}

// PQI is an item in a PQ. V is the value and P its priority.
type PQI[T any, P Number] struct {
	V  T
	P  P
	ix int
}

func (i *PQI[T, P]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index returns the position of the item in its queue, or -1 once it has
// been popped.
func (i *PQI[T, P]) Index() int {
	return i.ix
}

// MinQueue returns a queue that pops the lowest priority first.
func MinQueue[T any, P Number]() *PQ[T, P] {
	return &PQ[T, P]{pq: pq[T, P]{min: true}}
}

// MaxQueue returns a queue that pops the highest priority first.
func MaxQueue[T any, P Number]() *PQ[T, P] {
	return &PQ[T, P]{}
}

// PQ is a priority queue backed by container/heap. The zero value is a
// max queue.
type PQ[T any, P Number] struct {
	pq pq[T, P]
}

func (pq *PQ[T, P]) Push(v *PQI[T, P]) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T, P]) Pop() *PQI[T, P] {
	return heap.Pop(&pq.pq).(*PQI[T, P])
}

// Update restores the heap order after v.P was changed in place.
func (pq *PQ[T, P]) Update(v *PQI[T, P]) {
	heap.Fix(&pq.pq, v.ix)
}

func (pq *PQ[T, P]) Len() int {
	return pq.pq.Len()
}

type pq[T any, P Number] struct {
	q   []*PQI[T, P]
	min bool
}

func (pq pq[T, P]) Len() int { return len(pq.q) }

func (pq pq[T, P]) Less(i, j int) bool {
	if pq.min {
		return pq.q[i].P < pq.q[j].P
	}
	return pq.q[i].P > pq.q[j].P
}

func (pq pq[T, P]) Swap(i, j int) {
	q := pq.q
	q[i], q[j] = q[j], q[i]
	q[i].ix = i
	q[j].ix = j
}

func (pq *pq[T, P]) Push(x any) {
	n := len(pq.q)
	i := x.(*PQI[T, P])
	i.ix = n
	pq.q = append(pq.q, i)
}

func (pq *pq[T, P]) Pop() any {
	old := pq.q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1   // for safety

	pq.q = old[0 : n-1]
	return item
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO list.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
