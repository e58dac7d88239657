package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusOccurred  AppointmentStatus = "occurred"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusOccurred, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a consultation booked by a patient with a
// practitioner. Both sides of the relation are user rows. Status starts at
// scheduled; update may set any status, only Cancel forces cancelled.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ScheduledAt    time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PractitionerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"practitioner_id"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Practitioner *User `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsOwnedBy reports whether the appointment belongs to the given patient user.
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.PatientID == userID
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel sets the status to cancelled regardless of the current status.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
