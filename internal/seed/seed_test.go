package seed

import (
	"testing"

	"github.com/hackgods/hospital-triage/internal/scheduling"
)

func TestSample(t *testing.T) {
	svc := scheduling.NewService()
	if err := Sample(svc); err != nil {
		t.Fatalf("sample seed: %v", err)
	}

	for _, id := range []int{1, 2, 3} {
		if _, err := svc.GetPatient(id); err != nil {
			t.Errorf("patient %d not seeded: %v", id, err)
		}
	}

	slots, err := svc.ListSlots(1)
	if err != nil {
		t.Fatalf("list slots: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("provider 1 slots: got %d, want 2", len(slots))
	}

	// Seeding is idempotent only for patients; providers collide.
	if err := Sample(svc); err == nil {
		t.Error("second sample seed should fail on duplicate providers")
	}
}

func TestRandom(t *testing.T) {
	svc := scheduling.NewService()
	if err := Random(svc, 3, 5, 4); err != nil {
		t.Fatalf("random seed: %v", err)
	}

	for id := 100; id < 103; id++ {
		rep, err := svc.ProviderSummary(id)
		if err != nil {
			t.Fatalf("provider %d not seeded: %v", id, err)
		}
		if rep.QueueCap != 4 {
			t.Errorf("provider %d queue cap: got %d, want 4", id, rep.QueueCap)
		}
	}
	for id := 1000; id < 1005; id++ {
		if _, err := svc.GetPatient(id); err != nil {
			t.Errorf("patient %d not seeded: %v", id, err)
		}
	}
}
