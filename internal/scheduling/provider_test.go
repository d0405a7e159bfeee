package scheduling

import (
	"errors"
	"testing"
)

func TestRoutineQueueFIFO(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 5)

	for i := 1; i <= 5; i++ {
		if err := p.Enqueue(Token{ID: i}); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}
	for i := 1; i <= 5; i++ {
		if head, err := p.Peek(); err != nil || head.ID != i {
			t.Fatalf("peek %d: got (%v, %v)", i, head, err)
		}
		tk, err := p.Dequeue()
		if err != nil {
			t.Fatalf("dequeue %d: %v", i, err)
		}
		if tk.ID != i {
			t.Errorf("dequeue order: got token %d, want %d", tk.ID, i)
		}
	}
	if _, err := p.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Errorf("dequeue from empty queue: got %v, want ErrQueueEmpty", err)
	}
}

func TestRoutineQueueCapacity(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 2)

	if err := p.Enqueue(Token{ID: 1}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := p.Enqueue(Token{ID: 2}); err != nil {
		t.Fatalf("second enqueue: %v", err)
	}
	if err := p.Enqueue(Token{ID: 3}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("third enqueue: got %v, want ErrQueueFull", err)
	}

	if _, err := p.Dequeue(); err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	if err := p.Enqueue(Token{ID: 3}); err != nil {
		t.Fatalf("enqueue after dequeue: %v", err)
	}
}

func TestRoutineQueueWrapsAround(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 3)

	// Cycle through more tokens than the capacity so the indices wrap.
	next := 1
	for i := 0; i < 2; i++ {
		if err := p.Enqueue(Token{ID: next}); err != nil {
			t.Fatalf("enqueue %d: %v", next, err)
		}
		next++
	}
	want := 1
	for i := 0; i < 7; i++ {
		tk, err := p.Dequeue()
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		if tk.ID != want {
			t.Fatalf("wrap order: got token %d, want %d", tk.ID, want)
		}
		want++
		if err := p.Enqueue(Token{ID: next}); err != nil {
			t.Fatalf("enqueue %d: %v", next, err)
		}
		next++
	}
	if p.QueueLen() != 2 {
		t.Errorf("queue length after cycling: got %d, want 2", p.QueueLen())
	}
}

func TestRoutineQueueCanonicalReset(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 4)

	for i := 1; i <= 3; i++ {
		if err := p.Enqueue(Token{ID: i}); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := p.Dequeue(); err != nil {
			t.Fatalf("dequeue: %v", err)
		}
	}
	if p.front != 0 || p.rear != -1 {
		t.Errorf("indices after emptying: front=%d rear=%d, want front=0 rear=-1", p.front, p.rear)
	}
}

func TestSlotSequence(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 5)
	p.InsertSlot(101, "09:00", "09:15")
	p.InsertSlot(102, "09:15", "09:30")
	p.InsertSlot(103, "09:30", "09:45")

	slots := p.Slots()
	if len(slots) != 3 {
		t.Fatalf("slot count: got %d, want 3", len(slots))
	}
	for i, want := range []int{101, 102, 103} {
		if slots[i].ID != want {
			t.Errorf("slot %d: got id %d, want %d", i, slots[i].ID, want)
		}
	}

	if s := p.FindSlot(102); s == nil || s.ID != 102 {
		t.Fatalf("FindSlot(102) = %v", s)
	}
	if s := p.FindSlot(999); s != nil {
		t.Fatalf("FindSlot(999) = %v, want nil", s)
	}

	if !p.CancelSlot(102) {
		t.Fatal("CancelSlot(102) reported no removal")
	}
	if p.CancelSlot(102) {
		t.Fatal("second CancelSlot(102) reported a removal")
	}
	slots = p.Slots()
	if len(slots) != 2 || slots[0].ID != 101 || slots[1].ID != 103 {
		t.Errorf("sequence after cancel: %+v", slots)
	}
}

func TestNextFreeSlot(t *testing.T) {
	p := NewProvider(1, "Dr. A", "General Practice", 5)
	p.InsertSlot(101, "09:00", "09:15")
	p.InsertSlot(102, "09:15", "09:30")

	free := p.NextFreeSlot()
	if free == nil || free.ID != 101 {
		t.Fatalf("NextFreeSlot = %v, want slot 101", free)
	}

	free.Taken = true
	free.TokenID = 7

	free = p.NextFreeSlot()
	if free == nil || free.ID != 102 {
		t.Fatalf("NextFreeSlot after occupying 101 = %v, want slot 102", free)
	}
}
