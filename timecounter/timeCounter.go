package timecounter

import (
	"log"
	"sort"
	"time"
)

// DequeTimeCounter accumulates elapsed microseconds and call counts per
// deque operation kind.
type DequeTimeCounter struct {
	Times  map[string]int64
	Counts map[string]int
}

func NewDequeTimeCounter() *DequeTimeCounter {
	return &DequeTimeCounter{
		Times:  make(map[string]int64),
		Counts: make(map[string]int),
	}
}

func (t *DequeTimeCounter) Add(kind string, start_time time.Time) {
	elapsed := time.Since(start_time)
	t.Times[kind] += elapsed.Microseconds()
	t.Counts[kind]++
}

func (t *DequeTimeCounter) Get(kind string) int64 {
	return t.Times[kind]
}

func (t *DequeTimeCounter) Count(kind string) int {
	return t.Counts[kind]
}

func (t *DequeTimeCounter) Print() {
	kinds := make([]string, 0, len(t.Counts))
	for kind := range t.Counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		log.Printf("%v: %v ops, %vus", kind, t.Counts[kind], t.Times[kind])
	}
}

func (t *DequeTimeCounter) Clear() {
	t.Times = make(map[string]int64)
	t.Counts = make(map[string]int)
}
