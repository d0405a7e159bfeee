package scheduling

import (
	"errors"
	"testing"
)

func TestTriageSeverityOrder(t *testing.T) {
	q := NewTriageQueue()
	q.Insert(Token{ID: 1}, 5)
	q.Insert(Token{ID: 2}, 2)
	q.Insert(Token{ID: 3}, 2)

	// Ties resolve to the lower token id: earlier admission wins.
	wantIDs := []int{2, 3, 1}
	wantSev := []int{2, 2, 5}
	for i := range wantIDs {
		tk, sev, err := q.ExtractMin()
		if err != nil {
			t.Fatalf("extract %d: %v", i, err)
		}
		if tk.ID != wantIDs[i] || sev != wantSev[i] {
			t.Errorf("extract %d: got (id=%d sev=%d), want (id=%d sev=%d)",
				i, tk.ID, sev, wantIDs[i], wantSev[i])
		}
	}

	if _, _, err := q.ExtractMin(); !errors.Is(err, ErrNothingToServe) {
		t.Errorf("extract from empty queue: got %v, want ErrNothingToServe", err)
	}
}

func TestTriageRemoveByID(t *testing.T) {
	q := NewTriageQueue()
	q.Insert(Token{ID: 1}, 4)
	q.Insert(Token{ID: 2}, 1)
	q.Insert(Token{ID: 3}, 4)
	q.Insert(Token{ID: 4}, 2)

	if !q.RemoveByID(3) {
		t.Fatal("RemoveByID(3) reported no removal")
	}
	if q.RemoveByID(3) {
		t.Fatal("second RemoveByID(3) reported a removal")
	}
	if q.Len() != 3 {
		t.Fatalf("length after removal: got %d, want 3", q.Len())
	}

	// Survivors keep their relative order under the same rule.
	want := []int{2, 4, 1}
	for i, id := range want {
		tk, _, err := q.ExtractMin()
		if err != nil {
			t.Fatalf("extract %d: %v", i, err)
		}
		if tk.ID != id {
			t.Errorf("extract %d: got id %d, want %d", i, tk.ID, id)
		}
	}
}
