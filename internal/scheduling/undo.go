package scheduling

// undoRecord is a closed set of variants, one per mutating action
// kind. Each variant carries exactly the fields needed to invert the
// action it describes. Records are immutable once pushed.
type undoRecord interface {
	undoRecord()
}

// bookRecord inverts a routine booking. The token's SlotID
// distinguishes the slot-bound path from the queue path.
type bookRecord struct {
	token Token
}

// cancelSlotRecord inverts the cancellation of an occupied slot. Only
// pushed when the cancelled slot was taken. The slot is snapshotted in
// its occupied state together with its position in the sequence, since
// the cancellation unlinks it.
type cancelSlotRecord struct {
	token      Token
	providerID int
	slot       Slot
	index      int
}

// serveRecord inverts a serve: the token returns to the triage heap
// (emergency, with its original severity) or the provider queue
// (routine).
type serveRecord struct {
	token    Token
	severity int
}

// registerPatientRecord inverts an upsert: restore the prior snapshot,
// or delete the key if it did not exist before.
type registerPatientRecord struct {
	patientID int
	existed   bool
	prior     Patient
}

type triageInsertRecord struct {
	token    Token
	severity int
}

func (bookRecord) undoRecord()            {}
func (cancelSlotRecord) undoRecord()      {}
func (serveRecord) undoRecord()           {}
func (registerPatientRecord) undoRecord() {}
func (triageInsertRecord) undoRecord()    {}

// ledger is the LIFO stack of undo records. Read top to bottom it is
// the exact reverse chronology of every mutation not yet undone.
type ledger struct {
	records []undoRecord
}

func (l *ledger) push(r undoRecord) {
	l.records = append(l.records, r)
}

func (l *ledger) pop() (undoRecord, bool) {
	if len(l.records) == 0 {
		return nil, false
	}
	r := l.records[len(l.records)-1]
	l.records = l.records[:len(l.records)-1]
	return r, true
}

func (l *ledger) depth() int {
	return len(l.records)
}
