package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientFilter narrows the paginated patient listing. Name matches
// partially and case-insensitively, NationalID matches exactly.
type PatientFilter struct {
	Name       string
	NationalID string
	Page       int
	Limit      int
}

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Patient, error)
	FindPaginated(ctx context.Context, filter PatientFilter) ([]entity.Patient, int64, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, patient *entity.Patient) error
}
