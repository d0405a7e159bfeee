package scheduling

type TokenKind string

const (
	KindRoutine   TokenKind = "routine"
	KindEmergency TokenKind = "emergency"
)

// Unassigned marks a token field with no provider or slot bound to it.
const Unassigned = -1

// DefaultQueueCapacity is used when a provider is created with a
// non-positive routine queue capacity.
const DefaultQueueCapacity = 10

// Patient is a registry entry. Visits counts booking, triage and serve
// events for this patient and is never decremented, not even by Undo.
type Patient struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	History string `json:"history,omitempty"`
	Visits  int    `json:"visits"`
}

// Token is one request admitted into the system. Token ids are assigned
// from a process-wide counter, strictly increasing and never reused. A
// token is immutable once created.
type Token struct {
	ID         int       `json:"id"`
	PatientID  int       `json:"patient_id"`
	ProviderID int       `json:"provider_id"`
	SlotID     int       `json:"slot_id"`
	Kind       TokenKind `json:"kind"`
}

// Slot is a provider-owned unit of capacity. Start and End are opaque
// labels, not clock instants. TokenID is Unassigned while the slot is
// free.
type Slot struct {
	ID      int    `json:"id"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Taken   bool   `json:"taken"`
	TokenID int    `json:"token_id"`
}
