// Command simulate runs a randomized workload against an in-process
// scheduling service and prints per-operation tallies. Operations run
// sequentially: the core is single-threaded by contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/hackgods/hospital-triage/internal/scheduling"
	"github.com/hackgods/hospital-triage/internal/seed"
)

type SimConfig struct {
	Ops       int
	Providers int
	Patients  int
	QueueCap  int
	Seed      uint64
}

type opTally struct {
	success int
	failure int
}

func main() {
	cfg := SimConfig{}
	flag.IntVar(&cfg.Ops, "ops", 10000, "number of operations to run")
	flag.IntVar(&cfg.Providers, "providers", 10, "number of generated providers")
	flag.IntVar(&cfg.Patients, "patients", 200, "number of generated patients")
	flag.IntVar(&cfg.QueueCap, "queue-cap", 10, "routine queue capacity per provider")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "fake data seed (0 = random)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().
		Int("ops", cfg.Ops).
		Int("providers", cfg.Providers).
		Int("patients", cfg.Patients).
		Msg("simulate starting")

	if err := gofakeit.Seed(cfg.Seed); err != nil {
		logger.Fatal().Err(err).Msg("seed fake data source")
	}

	svc := scheduling.NewService()
	if err := seed.Random(svc, cfg.Providers, cfg.Patients, cfg.QueueCap); err != nil {
		logger.Fatal().Err(err).Msg("populate service")
	}

	tallies := run(svc, cfg)

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("--- simulation summary ---")
	for _, name := range names {
		t := tallies[name]
		fmt.Printf("%-12s success=%-6d failure=%-6d\n", name, t.success, t.failure)
	}
	served, pending := svc.Totals()
	fmt.Printf("served=%d pending=%d undoable=%d\n", served, pending, svc.LedgerDepth())
}

func run(svc *scheduling.Service, cfg SimConfig) map[string]*opTally {
	tallies := map[string]*opTally{
		"book":   {},
		"triage": {},
		"serve":  {},
		"undo":   {},
		"cancel": {},
	}
	record := func(name string, err error) {
		if err != nil {
			tallies[name].failure++
		} else {
			tallies[name].success++
		}
	}

	providerID := func() int { return 100 + gofakeit.Number(0, cfg.Providers-1) }
	patientID := func() int { return 1000 + gofakeit.Number(0, cfg.Patients-1) }

	for i := 0; i < cfg.Ops; i++ {
		switch roll := gofakeit.Number(1, 100); {
		case roll <= 40:
			// Mostly queue bookings, occasionally slot-bound.
			slotID := scheduling.Unassigned
			pid := providerID()
			if gofakeit.Number(1, 4) == 1 {
				if slots, err := svc.ListSlots(pid); err == nil && len(slots) > 0 {
					slotID = slots[gofakeit.Number(0, len(slots)-1)].ID
				}
			}
			_, err := svc.BookRoutine(patientID(), pid, slotID)
			record("book", err)
		case roll <= 55:
			_, err := svc.TriageInsert(patientID(), gofakeit.Number(1, 10))
			record("triage", err)
		case roll <= 85:
			_, err := svc.ServeNext(providerID())
			record("serve", err)
		case roll <= 95:
			record("undo", svc.Undo())
		default:
			pid := providerID()
			slots, err := svc.ListSlots(pid)
			if err != nil || len(slots) == 0 {
				record("cancel", scheduling.ErrSlotNotFound)
				continue
			}
			slotID := slots[gofakeit.Number(0, len(slots)-1)].ID
			record("cancel", svc.CancelSlot(pid, slotID))
		}
	}

	return tallies
}
