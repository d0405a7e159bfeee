// Package seed loads demo data straight into a scheduling service.
package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hackgods/hospital-triage/internal/scheduling"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

// Sample loads the canonical demo fixture: two providers with a few
// slots and three registered patients.
func Sample(svc *scheduling.Service) error {
	if err := svc.AddProvider(1, "Dr. Ahuja", "General Practice", 5); err != nil {
		return fmt.Errorf("add provider: %w", err)
	}
	if err := svc.AddProvider(2, "Dr. Mehta", "Cardiology", 5); err != nil {
		return fmt.Errorf("add provider: %w", err)
	}

	slots := []struct {
		providerID, slotID int
		start, end         string
	}{
		{1, 101, "09:00", "09:15"},
		{1, 102, "09:15", "09:30"},
		{2, 201, "10:00", "10:15"},
	}
	for _, s := range slots {
		if err := svc.AddSlot(s.providerID, s.slotID, s.start, s.end); err != nil {
			return fmt.Errorf("add slot %d: %w", s.slotID, err)
		}
	}

	svc.RegisterPatient(scheduling.Patient{ID: 1, Name: "Ananya", Age: 22, History: "No history"})
	svc.RegisterPatient(scheduling.Patient{ID: 2, Name: "Lakshita", Age: 19, History: "Allergy: pollen"})
	svc.RegisterPatient(scheduling.Patient{ID: 3, Name: "Saieena", Age: 21, History: "Asthma"})

	return nil
}

// Random registers generated providers and patients on top of whatever
// the service already holds. Provider ids start above existing sample
// ids; patient ids follow the provider range.
func Random(svc *scheduling.Service, providers, patients, queueCap int) error {
	for i := 0; i < providers; i++ {
		id := 100 + i
		name := "Dr. " + gofakeit.LastName()
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]
		if err := svc.AddProvider(id, name, spec, queueCap); err != nil {
			return fmt.Errorf("add provider %d: %w", id, err)
		}
		for s := 0; s < gofakeit.Number(1, 4); s++ {
			hour := 9 + s
			start := fmt.Sprintf("%02d:00", hour)
			end := fmt.Sprintf("%02d:30", hour)
			if err := svc.AddSlot(id, id*100+s, start, end); err != nil {
				return fmt.Errorf("add slot for provider %d: %w", id, err)
			}
		}
	}

	for i := 0; i < patients; i++ {
		svc.RegisterPatient(scheduling.Patient{
			ID:      1000 + i,
			Name:    gofakeit.Name(),
			Age:     gofakeit.Number(1, 90),
			History: gofakeit.SentenceSimple(),
		})
	}

	return nil
}
