package scheduling

// Provider owns an ordered sequence of slots and a bounded circular
// queue of pending routine tokens. The queue capacity is fixed at
// creation.
type Provider struct {
	ID        int
	Name      string
	Specialty string

	slots []Slot

	buf   []Token
	front int
	rear  int
	size  int
}

func NewProvider(id int, name, specialty string, capacity int) *Provider {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Provider{
		ID:        id,
		Name:      name,
		Specialty: specialty,
		buf:       make([]Token, capacity),
		rear:      -1,
	}
}

func (p *Provider) QueueCap() int { return len(p.buf) }
func (p *Provider) QueueLen() int { return p.size }

func (p *Provider) queueFull() bool  { return p.size == len(p.buf) }
func (p *Provider) queueEmpty() bool { return p.size == 0 }

// Enqueue appends a token at the rear of the routine queue.
func (p *Provider) Enqueue(t Token) error {
	if p.queueFull() {
		return ErrQueueFull
	}
	p.rear = (p.rear + 1) % len(p.buf)
	p.buf[p.rear] = t
	p.size++
	return nil
}

// Dequeue removes and returns the token at the front of the routine
// queue. When the queue empties the indices return to their canonical
// position.
func (p *Provider) Dequeue() (Token, error) {
	if p.queueEmpty() {
		return Token{}, ErrQueueEmpty
	}
	t := p.buf[p.front]
	p.front = (p.front + 1) % len(p.buf)
	p.size--
	if p.size == 0 {
		p.front = 0
		p.rear = -1
	}
	return t, nil
}

func (p *Provider) Peek() (Token, error) {
	if p.queueEmpty() {
		return Token{}, ErrQueueEmpty
	}
	return p.buf[p.front], nil
}

// InsertSlot appends a free slot at the tail of the slot sequence.
// Insertion order is the sequence order.
func (p *Provider) InsertSlot(id int, start, end string) {
	p.slots = append(p.slots, Slot{ID: id, Start: start, End: end, TokenID: Unassigned})
}

// CancelSlot unlinks the first slot with the given id, regardless of
// occupancy. Reports whether a slot was removed.
func (p *Provider) CancelSlot(id int) bool {
	for i := range p.slots {
		if p.slots[i].ID == id {
			p.slots = append(p.slots[:i], p.slots[i+1:]...)
			return true
		}
	}
	return false
}

// slotIndex returns the position of a slot in the sequence, or -1.
func (p *Provider) slotIndex(id int) int {
	for i := range p.slots {
		if p.slots[i].ID == id {
			return i
		}
	}
	return -1
}

// restoreSlotAt re-links a previously unlinked slot at its old
// position, clamped to the current sequence length.
func (p *Provider) restoreSlotAt(idx int, s Slot) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.slots) {
		idx = len(p.slots)
	}
	p.slots = append(p.slots, Slot{})
	copy(p.slots[idx+1:], p.slots[idx:])
	p.slots[idx] = s
}

// FindSlot returns a pointer into the live sequence, valid until the
// next InsertSlot or CancelSlot.
func (p *Provider) FindSlot(id int) *Slot {
	for i := range p.slots {
		if p.slots[i].ID == id {
			return &p.slots[i]
		}
	}
	return nil
}

// NextFreeSlot returns the first unoccupied slot in sequence order.
func (p *Provider) NextFreeSlot() *Slot {
	for i := range p.slots {
		if !p.slots[i].Taken {
			return &p.slots[i]
		}
	}
	return nil
}

// firstTakenSlot returns the oldest-inserted occupied slot.
func (p *Provider) firstTakenSlot() *Slot {
	for i := range p.slots {
		if p.slots[i].Taken {
			return &p.slots[i]
		}
	}
	return nil
}

// Slots returns a copy of the slot sequence for listing.
func (p *Provider) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	copy(out, p.slots)
	return out
}
