package scheduling

import "container/heap"

type triaged struct {
	severity int
	token    Token
}

// triageHeap orders by severity (lower first), ties broken by lower
// token id so the earlier admission wins.
type triageHeap []triaged

func (h triageHeap) Len() int { return len(h) }

func (h triageHeap) Less(i, j int) bool {
	if h[i].severity != h[j].severity {
		return h[i].severity < h[j].severity
	}
	return h[i].token.ID < h[j].token.ID
}

func (h triageHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *triageHeap) Push(x any) { *h = append(*h, x.(triaged)) }

func (h *triageHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TriageQueue is the global emergency queue.
type TriageQueue struct {
	h triageHeap
}

func NewTriageQueue() *TriageQueue {
	return &TriageQueue{}
}

func (q *TriageQueue) Len() int { return q.h.Len() }

func (q *TriageQueue) Insert(t Token, severity int) {
	heap.Push(&q.h, triaged{severity: severity, token: t})
}

// ExtractMin removes and returns the most urgent token along with its
// severity.
func (q *TriageQueue) ExtractMin() (Token, int, error) {
	if q.h.Len() == 0 {
		return Token{}, 0, ErrNothingToServe
	}
	e := heap.Pop(&q.h).(triaged)
	return e.token, e.severity, nil
}

// RemoveByID drains the heap, drops the first entry with the given
// token id and reinserts the rest. O(n), used only to undo a triage
// insert. Relative order of the survivors is unchanged since they are
// reinserted under the same ordering.
func (q *TriageQueue) RemoveByID(tokenID int) bool {
	keep := make([]triaged, 0, q.h.Len())
	removed := false
	for q.h.Len() > 0 {
		e := heap.Pop(&q.h).(triaged)
		if !removed && e.token.ID == tokenID {
			removed = true
			continue
		}
		keep = append(keep, e)
	}
	for _, e := range keep {
		heap.Push(&q.h, e)
	}
	return removed
}
