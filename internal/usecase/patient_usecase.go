package usecase

import (
	"context"
	"errors"
	"math"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrNationalIDExists = errors.New("national id already registered")
	ErrNationalIDInUse  = errors.New("national id already in use by another patient")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, query *dto.FindPatientsQuery) (*dto.PatientListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// Create registers a new patient. The read-then-write uniqueness check is
// racy under concurrent creation; the unique index on national_id is the
// actual guarantee and surfaces as the same conflict error.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	existing, err := u.patientRepo.FindByNationalID(ctx, req.NationalID)
	if err != nil {
		u.log.Warnf("Failed to check national id: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrNationalIDExists
	}

	patient := &entity.Patient{
		Name:       req.Name,
		NationalID: req.NationalID,
		Email:      req.Email,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	callerID, _ := getUserID(ctx)
	if err := u.auditService.LogCreate(ctx, &callerID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to write patient create audit entry: %+v", err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, query *dto.FindPatientsQuery) (*dto.PatientListResponse, error) {
	filter := repository.PatientFilter{
		Name:       query.Name,
		NationalID: query.NationalID,
		Page:       query.Page,
		Limit:      query.Limit,
	}

	patients, total, err := u.patientRepo.FindPaginated(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Data:       converter.PatientsToResponses(patients),
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if req.NationalID != "" {
		existing, err := u.patientRepo.FindByNationalID(ctx, req.NationalID)
		if err != nil {
			u.log.Warnf("Failed to check national id: %+v", err)
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrNationalIDInUse
		}
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.NationalID != "" {
		patient.NationalID = req.NationalID
	}
	if req.Email != "" {
		patient.Email = req.Email
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDInUse
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	callerID, _ := getUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, &callerID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), oldValue, converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to write patient update audit entry: %+v", err)
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, patient); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	callerID, _ := getUserID(ctx)
	if err := u.auditService.LogDelete(ctx, &callerID, entity.AuditActionPatientDelete, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		u.log.Warnf("Failed to write patient delete audit entry: %+v", err)
	}

	return nil
}
