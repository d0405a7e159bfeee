package scheduling

// Service owns every structure in the system: the patient registry,
// the per-provider schedules, the global triage heap, the undo ledger
// and the served/pending counters. All mutation goes through it, one
// operation at a time; each mutating operation either fully commits
// its change plus one ledger record, or changes nothing.
type Service struct {
	providers map[int]*Provider
	registry  *Registry
	triage    *TriageQueue
	ledger    ledger

	nextTokenID int
	served      int
	pending     int
}

func NewService() *Service {
	return &Service{
		providers:   make(map[int]*Provider),
		registry:    NewRegistry(),
		triage:      NewTriageQueue(),
		nextTokenID: 1,
	}
}

// AddProvider creates a provider with an empty slot sequence and an
// empty routine queue of the given capacity.
func (s *Service) AddProvider(id int, name, specialty string, capacity int) error {
	if _, ok := s.providers[id]; ok {
		return ErrProviderExists
	}
	s.providers[id] = NewProvider(id, name, specialty, capacity)
	return nil
}

// AddSlot appends a free slot to the provider's schedule. Structural
// setup: it pushes no ledger record and cannot be undone, while
// CancelSlot can. The asymmetry is deliberate.
func (s *Service) AddSlot(providerID, slotID int, start, end string) error {
	p, ok := s.providers[providerID]
	if !ok {
		return ErrProviderNotFound
	}
	p.InsertSlot(slotID, start, end)
	return nil
}

// CancelSlot unlinks a slot from the provider's schedule. If the slot
// is occupied, the occupying token is recorded for undo and the
// pending total drops before the slot goes away.
func (s *Service) CancelSlot(providerID, slotID int) error {
	p, ok := s.providers[providerID]
	if !ok {
		return ErrProviderNotFound
	}
	slot := p.FindSlot(slotID)
	if slot == nil {
		return ErrSlotNotFound
	}
	if slot.Taken {
		s.ledger.push(cancelSlotRecord{
			token: Token{
				ID:         slot.TokenID,
				PatientID:  Unassigned,
				ProviderID: providerID,
				SlotID:     slotID,
				Kind:       KindRoutine,
			},
			providerID: providerID,
			slot:       *slot,
			index:      p.slotIndex(slotID),
		})
		s.pending--
		slot.Taken = false
		slot.TokenID = Unassigned
	}
	p.CancelSlot(slotID)
	return nil
}

// RegisterPatient inserts or fully replaces a patient record. Always
// succeeds; the prior value (or its absence) is snapshotted for undo.
func (s *Service) RegisterPatient(p Patient) {
	prior, existed := s.registry.Upsert(p)
	s.ledger.push(registerPatientRecord{
		patientID: p.ID,
		existed:   existed,
		prior:     prior,
	})
}

func (s *Service) GetPatient(id int) (Patient, error) {
	p, ok := s.registry.Get(id)
	if !ok {
		return Patient{}, ErrPatientNotFound
	}
	return p, nil
}

// BookRoutine admits a routine token for a patient with a provider.
// With slotID set, it occupies that exact slot; with slotID ==
// Unassigned it joins the provider's routine queue.
func (s *Service) BookRoutine(patientID, providerID, slotID int) (Token, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return Token{}, ErrProviderNotFound
	}
	if _, ok := s.registry.Get(patientID); !ok {
		return Token{}, ErrPatientNotFound
	}

	if slotID != Unassigned {
		slot := p.FindSlot(slotID)
		if slot == nil {
			return Token{}, ErrSlotNotFound
		}
		if slot.Taken {
			return Token{}, ErrSlotTaken
		}
		tk := s.mintToken(patientID, providerID, slotID, KindRoutine)
		slot.Taken = true
		slot.TokenID = tk.ID
		s.ledger.push(bookRecord{token: tk})
		s.pending++
		s.registry.bumpVisits(patientID)
		return tk, nil
	}

	if p.queueFull() {
		return Token{}, ErrQueueFull
	}
	tk := s.mintToken(patientID, providerID, Unassigned, KindRoutine)
	_ = p.Enqueue(tk)
	s.ledger.push(bookRecord{token: tk})
	s.pending++
	s.registry.bumpVisits(patientID)
	return tk, nil
}

// TriageInsert admits an emergency token ranked by severity; a lower
// severity value is served first.
func (s *Service) TriageInsert(patientID, severity int) (Token, error) {
	if _, ok := s.registry.Get(patientID); !ok {
		return Token{}, ErrPatientNotFound
	}
	tk := s.mintToken(patientID, Unassigned, Unassigned, KindEmergency)
	s.triage.Insert(tk, severity)
	s.ledger.push(triageInsertRecord{token: tk, severity: severity})
	s.pending++
	s.registry.bumpVisits(patientID)
	return tk, nil
}

// ServeNext serves one pending token. A non-empty triage heap wins
// over everything, no matter which provider was asked for; only when
// triage is empty does the named provider's queue get tried, then its
// slot sequence, oldest occupied slot first.
func (s *Service) ServeNext(providerID int) (Token, error) {
	if s.triage.Len() > 0 {
		tk, severity, err := s.triage.ExtractMin()
		if err != nil {
			return Token{}, err
		}
		s.served++
		s.pending--
		s.ledger.push(serveRecord{token: tk, severity: severity})
		if tk.PatientID != Unassigned {
			s.registry.bumpVisits(tk.PatientID)
		}
		return tk, nil
	}

	p, ok := s.providers[providerID]
	if !ok {
		return Token{}, ErrProviderNotFound
	}

	if tk, err := p.Dequeue(); err == nil {
		s.served++
		s.pending--
		s.ledger.push(serveRecord{token: tk})
		if tk.PatientID != Unassigned {
			s.registry.bumpVisits(tk.PatientID)
		}
		return tk, nil
	}

	// Walk-in fallback: free the oldest occupied slot. The slot does
	// not remember the booking patient, so the served token carries an
	// unknown patient id.
	slot := p.firstTakenSlot()
	if slot == nil {
		return Token{}, ErrNothingToServe
	}
	tk := Token{
		ID:         slot.TokenID,
		PatientID:  Unassigned,
		ProviderID: providerID,
		SlotID:     slot.ID,
		Kind:       KindRoutine,
	}
	slot.Taken = false
	slot.TokenID = Unassigned
	s.served++
	s.pending--
	s.ledger.push(serveRecord{token: tk})
	return tk, nil
}

// Undo reverses exactly one ledger record, the most recent one. It
// never cascades and never re-validates business rules: restoring
// state is a mechanical inversion of what the record describes. When
// the live state no longer matches the record, nothing is rolled back
// and ErrUndoStateDiverged comes back.
//
// Patient visit counters are not reverted; they count attempts, not
// currently pending work.
func (s *Service) Undo() error {
	rec, ok := s.ledger.pop()
	if !ok {
		return ErrNothingToUndo
	}

	switch r := rec.(type) {
	case bookRecord:
		p, ok := s.providers[r.token.ProviderID]
		if !ok {
			return ErrProviderNotFound
		}
		if r.token.SlotID != Unassigned {
			slot := p.FindSlot(r.token.SlotID)
			if slot == nil || !slot.Taken || slot.TokenID != r.token.ID {
				return ErrUndoStateDiverged
			}
			slot.Taken = false
			slot.TokenID = Unassigned
			s.pending--
			return nil
		}
		if !s.removeFromQueue(p, r.token.ID) {
			return ErrUndoStateDiverged
		}
		s.pending--
		return nil

	case cancelSlotRecord:
		p, ok := s.providers[r.providerID]
		if !ok {
			return ErrProviderNotFound
		}
		// The cancellation unlinked the slot, so it is re-linked from
		// the snapshot at its old position. If a slot with the same id
		// was added since, that one is re-occupied instead.
		if slot := p.FindSlot(r.slot.ID); slot != nil {
			slot.Taken = true
			slot.TokenID = r.token.ID
		} else {
			p.restoreSlotAt(r.index, r.slot)
		}
		s.pending++
		return nil

	case serveRecord:
		if r.token.Kind == KindEmergency {
			s.triage.Insert(r.token, r.severity)
			s.pending++
			s.served--
			return nil
		}
		p, ok := s.providers[r.token.ProviderID]
		if !ok {
			return ErrProviderNotFound
		}
		// Re-admission does not re-check queue capacity.
		_ = p.Enqueue(r.token)
		s.pending++
		s.served--
		return nil

	case registerPatientRecord:
		s.registry.restore(r.patientID, r.prior, r.existed)
		return nil

	case triageInsertRecord:
		if !s.triage.RemoveByID(r.token.ID) {
			return ErrUndoStateDiverged
		}
		s.pending--
		return nil
	}

	return ErrUndoStateDiverged
}

// removeFromQueue drains the provider's routine queue, drops the first
// entry with the given token id and re-enqueues the remainder in their
// original relative order.
func (s *Service) removeFromQueue(p *Provider, tokenID int) bool {
	rest := make([]Token, 0, p.QueueLen())
	removed := false
	for {
		tk, err := p.Dequeue()
		if err != nil {
			break
		}
		if !removed && tk.ID == tokenID {
			removed = true
			continue
		}
		rest = append(rest, tk)
	}
	for _, tk := range rest {
		_ = p.Enqueue(tk)
	}
	return removed
}

func (s *Service) mintToken(patientID, providerID, slotID int, kind TokenKind) Token {
	tk := Token{
		ID:         s.nextTokenID,
		PatientID:  patientID,
		ProviderID: providerID,
		SlotID:     slotID,
		Kind:       kind,
	}
	s.nextTokenID++
	return tk
}
