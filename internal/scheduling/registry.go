package scheduling

import "sort"

// Registry is the keyed store of patient records. Upsert is a full
// replace; the prior value is returned so the caller can snapshot it
// for undo.
type Registry struct {
	patients map[int]Patient
}

func NewRegistry() *Registry {
	return &Registry{patients: make(map[int]Patient)}
}

func (r *Registry) Upsert(p Patient) (prior Patient, existed bool) {
	prior, existed = r.patients[p.ID]
	r.patients[p.ID] = p
	return prior, existed
}

func (r *Registry) Get(id int) (Patient, bool) {
	p, ok := r.patients[id]
	return p, ok
}

func (r *Registry) Len() int {
	return len(r.patients)
}

// bumpVisits rides along with the mutation that caused it and is not
// undoable on its own.
func (r *Registry) bumpVisits(id int) {
	if p, ok := r.patients[id]; ok {
		p.Visits++
		r.patients[id] = p
	}
}

// restore puts a key back to its pre-upsert state: the prior snapshot
// if the key existed before, otherwise no entry at all.
func (r *Registry) restore(id int, prior Patient, existed bool) {
	if existed {
		r.patients[id] = prior
	} else {
		delete(r.patients, id)
	}
}

// TopFrequent returns up to k patients ordered by visit count, highest
// first, ties broken by higher patient id.
func (r *Registry) TopFrequent(k int) []Patient {
	all := make([]Patient, 0, len(r.patients))
	for _, p := range r.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Visits != all[j].Visits {
			return all[i].Visits > all[j].Visits
		}
		return all[i].ID > all[j].ID
	})
	if k < len(all) {
		all = all[:k]
	}
	return all
}
