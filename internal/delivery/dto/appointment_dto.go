package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ScheduledAt    string `json:"scheduled_at" validate:"required"`
	PractitionerID string `json:"practitioner_id" validate:"required,uuid"`
}

type UpdateAppointmentRequest struct {
	Status string  `json:"status" validate:"omitempty,oneof=scheduled occurred cancelled"`
	Notes  *string `json:"notes" validate:"omitempty"`
}

// FindAppointmentsQuery collects the listing filters parsed from the query
// string. DateFrom and DateTo are applied only when both are present.
type FindAppointmentsQuery struct {
	Status         string
	DateFrom       string
	DateTo         string
	PractitionerID string
	Page           int
	Limit          int
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID     `json:"id"`
	ScheduledAt    time.Time     `json:"scheduled_at"`
	Status         string        `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	PatientID      uuid.UUID     `json:"patient_id"`
	PractitionerID uuid.UUID     `json:"practitioner_id"`
	Patient        *UserResponse `json:"patient,omitempty"`
	Practitioner   *UserResponse `json:"practitioner,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type AppointmentListResponse struct {
	Data  []AppointmentResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
