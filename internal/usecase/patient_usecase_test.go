package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func newPatientUsecase(repo *mockPatientRepository) PatientUsecase {
	return NewPatientUsecase(testLogger(), repo, &mockAuditService{})
}

func TestCreatePatientSuccess(t *testing.T) {
	var created *entity.Patient
	repo := &mockPatientRepository{
		createFn: func(ctx context.Context, patient *entity.Patient) error {
			patient.ID = uuid.New()
			created = patient
			return nil
		},
	}
	uc := newPatientUsecase(repo)

	resp, err := uc.Create(authContext(uuid.New(), entity.RoleAdmin), &dto.CreatePatientRequest{
		Name:       "John Doe",
		NationalID: "12345678901",
		Email:      "john@example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created == nil {
		t.Fatal("expected the repository to receive the patient")
	}
	if resp.NationalID != "12345678901" {
		t.Errorf("expected national id to round-trip, got %q", resp.NationalID)
	}
	if resp.ID != created.ID {
		t.Errorf("response id mismatch: %s vs %s", resp.ID, created.ID)
	}
}

func TestCreatePatientDuplicateNationalID(t *testing.T) {
	existing := &entity.Patient{
		ID:         uuid.New(),
		Name:       "John Doe",
		NationalID: "12345678901",
	}
	repo := &mockPatientRepository{
		findByNationalIDFn: func(ctx context.Context, nationalID string) (*entity.Patient, error) {
			if nationalID == existing.NationalID {
				return existing, nil
			}
			return nil, nil
		},
		createFn: func(ctx context.Context, patient *entity.Patient) error {
			t.Fatal("create must not be reached when the national id is taken")
			return nil
		},
	}
	uc := newPatientUsecase(repo)

	_, err := uc.Create(authContext(uuid.New(), entity.RoleAdmin), &dto.CreatePatientRequest{
		Name:       "Impostor",
		NationalID: existing.NationalID,
		Email:      "other@example.com",
	})
	if !errors.Is(err, ErrNationalIDExists) {
		t.Errorf("expected ErrNationalIDExists, got %v", err)
	}
}

func TestCreatePatientUniqueIndexViolation(t *testing.T) {
	// The pre-check is racy; when two creations race, the unique index wins
	// and must surface as the same conflict error.
	repo := &mockPatientRepository{
		createFn: func(ctx context.Context, patient *entity.Patient) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_national_id"}
		},
	}
	uc := newPatientUsecase(repo)

	_, err := uc.Create(authContext(uuid.New(), entity.RoleAdmin), &dto.CreatePatientRequest{
		Name:       "John Doe",
		NationalID: "12345678901",
		Email:      "john@example.com",
	})
	if !errors.Is(err, ErrNationalIDExists) {
		t.Errorf("expected ErrNationalIDExists, got %v", err)
	}
}

func TestUpdatePatientNationalIDInUse(t *testing.T) {
	target := &entity.Patient{ID: uuid.New(), Name: "John", NationalID: "11111111111"}
	other := &entity.Patient{ID: uuid.New(), Name: "Jane", NationalID: "22222222222"}

	repo := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			if id == target.ID {
				return target, nil
			}
			return nil, nil
		},
		findByNationalIDFn: func(ctx context.Context, nationalID string) (*entity.Patient, error) {
			if nationalID == other.NationalID {
				return other, nil
			}
			return nil, nil
		},
	}
	uc := newPatientUsecase(repo)

	_, err := uc.Update(authContext(uuid.New(), entity.RoleAdmin), target.ID, &dto.UpdatePatientRequest{
		NationalID: other.NationalID,
	})
	if !errors.Is(err, ErrNationalIDInUse) {
		t.Errorf("expected ErrNationalIDInUse, got %v", err)
	}
}

func TestUpdatePatientKeepingOwnNationalID(t *testing.T) {
	target := &entity.Patient{ID: uuid.New(), Name: "John", NationalID: "11111111111"}

	repo := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return target, nil
		},
		findByNationalIDFn: func(ctx context.Context, nationalID string) (*entity.Patient, error) {
			return target, nil
		},
	}
	uc := newPatientUsecase(repo)

	// Re-submitting the current national id is not a conflict.
	resp, err := uc.Update(authContext(uuid.New(), entity.RoleAdmin), target.ID, &dto.UpdatePatientRequest{
		Name:       "John Updated",
		NationalID: target.NationalID,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if resp.Name != "John Updated" {
		t.Errorf("expected updated name, got %q", resp.Name)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	uc := newPatientUsecase(&mockPatientRepository{})

	_, err := uc.Get(authContext(uuid.New(), entity.RoleAdmin), uuid.New())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDeletePatient(t *testing.T) {
	target := &entity.Patient{ID: uuid.New(), Name: "John", NationalID: "11111111111"}

	var deleted *entity.Patient
	repo := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			if id == target.ID {
				return target, nil
			}
			return nil, nil
		},
		deleteFn: func(ctx context.Context, patient *entity.Patient) error {
			deleted = patient
			return nil
		},
	}
	uc := newPatientUsecase(repo)

	if err := uc.Delete(authContext(uuid.New(), entity.RoleAdmin), target.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted == nil || deleted.ID != target.ID {
		t.Error("expected the target patient to be deleted")
	}

	if err := uc.Delete(authContext(uuid.New(), entity.RoleAdmin), uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound for unknown id, got %v", err)
	}
}

func TestListPatientsTotalPages(t *testing.T) {
	repo := &mockPatientRepository{
		findPaginatedFn: func(ctx context.Context, filter repository.PatientFilter) ([]entity.Patient, int64, error) {
			return []entity.Patient{{ID: uuid.New(), Name: "John"}}, 25, nil
		},
	}
	uc := newPatientUsecase(repo)

	resp, err := uc.List(authContext(uuid.New(), entity.RoleAdmin), &dto.FindPatientsQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if resp.Total != 25 {
		t.Errorf("expected total 25, got %d", resp.Total)
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages for 25 rows at limit 10, got %d", resp.TotalPages)
	}
}
