package api

import "github.com/hackgods/hospital-triage/internal/scheduling"

type RegisterPatientRequest struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	History string `json:"history"`
}

type AddProviderRequest struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Capacity  int    `json:"capacity"`
}

type AddSlotRequest struct {
	ID    int    `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookRequest struct {
	PatientID  int  `json:"patient_id"`
	ProviderID int  `json:"provider_id"`
	SlotID     *int `json:"slot_id,omitempty"`
}

type TriageRequest struct {
	PatientID int `json:"patient_id"`
	Severity  int `json:"severity"`
}

type TokenResponse struct {
	Token scheduling.Token `json:"token"`
}

type TotalsResponse struct {
	Served  int `json:"served"`
	Pending int `json:"pending"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
