package dto

import "github.com/google/uuid"

// Response DTOs

type AdherenceSummaryResponse struct {
	PatientID     uuid.UUID `json:"patient_id"`
	Range         string    `json:"range"`
	TotalDoses    int64     `json:"total_doses"`
	TakenDoses    int64     `json:"taken_doses"`
	AdherenceRate string    `json:"adherence_rate"` // "NN.NN%"
}

type AdherenceHistoryResponse struct {
	PatientID uuid.UUID          `json:"patient_id"`
	Results   []ActivityResponse `json:"results"`
}
