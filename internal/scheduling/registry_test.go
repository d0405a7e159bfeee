package scheduling

import "testing"

func TestRegistryUpsertSnapshot(t *testing.T) {
	r := NewRegistry()

	prior, existed := r.Upsert(Patient{ID: 1, Name: "Ananya", Age: 22})
	if existed {
		t.Fatalf("first upsert reported existed, prior=%+v", prior)
	}

	prior, existed = r.Upsert(Patient{ID: 1, Name: "Ananya K", Age: 23})
	if !existed {
		t.Fatal("second upsert did not report existed")
	}
	if prior.Name != "Ananya" || prior.Age != 22 {
		t.Errorf("prior snapshot: %+v", prior)
	}

	p, ok := r.Get(1)
	if !ok || p.Name != "Ananya K" {
		t.Errorf("Get after upsert: %+v ok=%t", p, ok)
	}
}

func TestRegistryRestore(t *testing.T) {
	r := NewRegistry()

	// New key: restore removes it entirely.
	prior, existed := r.Upsert(Patient{ID: 7, Name: "Saieena"})
	r.restore(7, prior, existed)
	if _, ok := r.Get(7); ok {
		t.Error("restore of a fresh insert left the key behind")
	}

	// Pre-existing key: restore reverts to the snapshot.
	r.Upsert(Patient{ID: 7, Name: "Saieena", Age: 21})
	prior, existed = r.Upsert(Patient{ID: 7, Name: "Saieena M", Age: 22})
	r.restore(7, prior, existed)
	p, ok := r.Get(7)
	if !ok || p.Name != "Saieena" || p.Age != 21 {
		t.Errorf("restore of an upsert: %+v ok=%t", p, ok)
	}
}

func TestRegistryTopFrequent(t *testing.T) {
	r := NewRegistry()
	r.Upsert(Patient{ID: 1, Visits: 3})
	r.Upsert(Patient{ID: 2, Visits: 5})
	r.Upsert(Patient{ID: 3, Visits: 5})
	r.Upsert(Patient{ID: 4, Visits: 1})

	top := r.TopFrequent(3)
	if len(top) != 3 {
		t.Fatalf("TopFrequent(3) returned %d entries", len(top))
	}
	// Ties break to the higher patient id.
	want := []int{3, 2, 1}
	for i, id := range want {
		if top[i].ID != id {
			t.Errorf("rank %d: got patient %d, want %d", i, top[i].ID, id)
		}
	}

	if got := len(r.TopFrequent(10)); got != 4 {
		t.Errorf("TopFrequent(10) returned %d entries, want 4", got)
	}
}
