package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	NationalID string `json:"national_id" validate:"required,len=11,numeric"`
	Email      string `json:"email" validate:"required,email"`
}

type UpdatePatientRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	NationalID string `json:"national_id" validate:"omitempty,len=11,numeric"`
	Email      string `json:"email" validate:"omitempty,email"`
}

// FindPatientsQuery collects the listing filters parsed from the query string.
type FindPatientsQuery struct {
	Name       string
	NationalID string
	Page       int
	Limit      int
}

// Response DTOs

type PatientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Data       []PatientResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
