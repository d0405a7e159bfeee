// Command opd is the interactive menu front end for the scheduling
// core. All input is whitespace-separated; it contains no scheduling
// logic of its own.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hackgods/hospital-triage/internal/config"
	"github.com/hackgods/hospital-triage/internal/scheduling"
	"github.com/hackgods/hospital-triage/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	svc := scheduling.NewService()
	if cfg.SeedSample {
		if err := seed.Sample(svc); err != nil {
			fmt.Fprintf(os.Stderr, "sample seed failed: %v\n", err)
			os.Exit(1)
		}
	}

	in := bufio.NewReader(os.Stdin)
	runMenu(svc, in, os.Stdout)
}

func printMenu(out io.Writer) {
	fmt.Fprint(out, "\n=== Hospital Appointment & Triage System ===\n"+
		"1. Register/Update Patient\n"+
		"2. Book Slot / Enqueue Routine\n"+
		"3. Emergency In (Triage)\n"+
		"4. Serve Next (provider)\n"+
		"5. Undo Last Action\n"+
		"6. Reports\n"+
		"7. List Provider Slots\n"+
		"8. Add Provider\n"+
		"9. Add Slot to Provider\n"+
		"0. Exit\n"+
		"Choose option: ")
}

func runMenu(svc *scheduling.Service, in *bufio.Reader, out io.Writer) {
	for {
		printMenu(out)
		var opt int
		if _, err := fmt.Fscan(in, &opt); err != nil {
			return
		}
		if opt == 0 {
			return
		}

		switch opt {
		case 1:
			var p scheduling.Patient
			fmt.Fprint(out, "Enter patientId name age history: ")
			if _, err := fmt.Fscan(in, &p.ID, &p.Name, &p.Age, &p.History); err != nil {
				return
			}
			svc.RegisterPatient(p)
			fmt.Fprintf(out, "Registered/Updated patient %s id %d\n", p.Name, p.ID)

		case 2:
			var pid, did, slot int
			fmt.Fprint(out, "Enter patientId providerId (slotId or -1): ")
			if _, err := fmt.Fscan(in, &pid, &did, &slot); err != nil {
				return
			}
			tk, err := svc.BookRoutine(pid, did, slot)
			if err != nil {
				fmt.Fprintf(out, "Booking failed: %v\n", err)
			} else {
				fmt.Fprintf(out, "Booked tokenId: %d\n", tk.ID)
			}

		case 3:
			var pid, severity int
			fmt.Fprint(out, "Enter patientId severityScore (lower -> more urgent): ")
			if _, err := fmt.Fscan(in, &pid, &severity); err != nil {
				return
			}
			if _, err := svc.TriageInsert(pid, severity); err != nil {
				fmt.Fprintf(out, "Triage failed: %v\n", err)
			} else {
				fmt.Fprintln(out, "Triage inserted")
			}

		case 4:
			var did int
			fmt.Fprint(out, "Enter providerId to serve next: ")
			if _, err := fmt.Fscan(in, &did); err != nil {
				return
			}
			tk, err := svc.ServeNext(did)
			if err != nil {
				fmt.Fprintf(out, "Nothing to serve for provider %d\n", did)
			} else {
				fmt.Fprintf(out, "Served tokenId %d patientId %d kind %s\n", tk.ID, tk.PatientID, tk.Kind)
			}

		case 5:
			if err := svc.Undo(); err != nil {
				if errors.Is(err, scheduling.ErrNothingToUndo) {
					fmt.Fprintln(out, "Nothing to undo")
				} else {
					fmt.Fprintf(out, "Undo failed: %v\n", err)
				}
			} else {
				fmt.Fprintln(out, "Undo successful")
			}

		case 6:
			runReports(svc, in, out)

		case 7:
			var did int
			fmt.Fprint(out, "Enter providerId: ")
			if _, err := fmt.Fscan(in, &did); err != nil {
				return
			}
			listSlots(svc, did, out)

		case 8:
			var id, capQ int
			var name, spec string
			fmt.Fprint(out, "Enter providerId name specialty queueCapacity: ")
			if _, err := fmt.Fscan(in, &id, &name, &spec, &capQ); err != nil {
				return
			}
			if err := svc.AddProvider(id, name, spec, capQ); err != nil {
				fmt.Fprintf(out, "Failed: %v\n", err)
			} else {
				fmt.Fprintln(out, "Provider added")
			}

		case 9:
			var did, sid int
			var start, end string
			fmt.Fprint(out, "Enter providerId slotId startTime endTime: ")
			if _, err := fmt.Fscan(in, &did, &sid, &start, &end); err != nil {
				return
			}
			if err := svc.AddSlot(did, sid, start, end); err != nil {
				fmt.Fprintf(out, "Slot add failed: %v\n", err)
			} else {
				fmt.Fprintln(out, "Slot added")
			}
		}
	}
}

func runReports(svc *scheduling.Service, in *bufio.Reader, out io.Writer) {
	fmt.Fprint(out, "Reports menu:\n1. Per provider summary\n2. Served vs pending\n3. Top-K frequent\nChoose: ")
	var r int
	if _, err := fmt.Fscan(in, &r); err != nil {
		return
	}
	switch r {
	case 1:
		var did int
		fmt.Fprint(out, "Enter providerId: ")
		if _, err := fmt.Fscan(in, &did); err != nil {
			return
		}
		rep, err := svc.ProviderSummary(did)
		if err != nil {
			fmt.Fprintln(out, "Provider not found")
			return
		}
		fmt.Fprintf(out, "Provider: %s (id %d), Specialty: %s\n", rep.Name, rep.ID, rep.Specialty)
		fmt.Fprintf(out, "Pending routine queue: %d\n", rep.QueueDepth)
		if rep.NextFreeSlot != nil {
			fmt.Fprintf(out, "Next free slot: %d [%s-%s]\n", rep.NextFreeSlot.ID, rep.NextFreeSlot.Start, rep.NextFreeSlot.End)
		} else {
			fmt.Fprintln(out, "No free slots")
		}
	case 2:
		served, pending := svc.Totals()
		fmt.Fprintf(out, "Served: %d | Pending: %d\n", served, pending)
	case 3:
		var k int
		if _, err := fmt.Fscan(in, &k); err != nil {
			return
		}
		fmt.Fprintf(out, "Top %d frequent patients:\n", k)
		for _, p := range svc.TopFrequent(k) {
			fmt.Fprintf(out, "  PatientId %d visits %d name: %s\n", p.ID, p.Visits, p.Name)
		}
	}
}

func listSlots(svc *scheduling.Service, providerID int, out io.Writer) {
	slots, err := svc.ListSlots(providerID)
	if err != nil {
		fmt.Fprintln(out, "Provider not found")
		return
	}
	fmt.Fprintf(out, "Slots for provider %d:\n", providerID)
	for _, s := range slots {
		status := "FREE"
		if s.Taken {
			status = "TAKEN"
		}
		fmt.Fprintf(out, "  SlotId: %d [%s-%s] (%s)\n", s.ID, s.Start, s.End, status)
	}
}
