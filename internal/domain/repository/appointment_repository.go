package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentFilter narrows the paginated appointment listing. PatientID is
// set by the caller when results must be scoped to a single owner; the date
// range is inclusive on both ends and applies only when both bounds are set.
type AppointmentFilter struct {
	Status         entity.AppointmentStatus
	DateFrom       *time.Time
	DateTo         *time.Time
	PractitionerID uuid.UUID
	PatientID      uuid.UUID
	Page           int
	Limit          int
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindPaginated(ctx context.Context, filter AppointmentFilter) ([]entity.Appointment, int64, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
}
