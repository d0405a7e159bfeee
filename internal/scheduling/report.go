package scheduling

// ProviderReport is the per-provider summary used by the reports
// surface.
type ProviderReport struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	QueueDepth   int    `json:"queue_depth"`
	QueueCap     int    `json:"queue_cap"`
	NextFreeSlot *Slot  `json:"next_free_slot,omitempty"`
}

func (s *Service) ProviderSummary(providerID int) (ProviderReport, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return ProviderReport{}, ErrProviderNotFound
	}
	rep := ProviderReport{
		ID:         p.ID,
		Name:       p.Name,
		Specialty:  p.Specialty,
		QueueDepth: p.QueueLen(),
		QueueCap:   p.QueueCap(),
	}
	if free := p.NextFreeSlot(); free != nil {
		cp := *free
		rep.NextFreeSlot = &cp
	}
	return rep, nil
}

// Totals reports the served and pending counters. Pending covers
// queued routine tokens, triage entries and occupied slots.
func (s *Service) Totals() (served, pending int) {
	return s.served, s.pending
}

// TopFrequent returns up to k patients by visit count.
func (s *Service) TopFrequent(k int) []Patient {
	return s.registry.TopFrequent(k)
}

// ListSlots returns a copy of a provider's slot sequence in order.
func (s *Service) ListSlots(providerID int) ([]Slot, error) {
	p, ok := s.providers[providerID]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return p.Slots(), nil
}

// LedgerDepth reports how many mutations are currently reversible.
func (s *Service) LedgerDepth() int {
	return s.ledger.depth()
}
