package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentAccessDenied = errors.New("appointment does not belong to you")
	ErrPractitionerNotFound    = errors.New("practitioner not found")
	ErrIdentityMissing         = errors.New("authenticated identity not found in context")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD or RFC 3339")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *dto.FindAppointmentsQuery) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// Create books a new appointment for the calling patient. The owning patient
// is always the caller: the request carries no patient id, so nobody can book
// on behalf of someone else. The route admits only the patient role.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := getUserID(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	scheduledAt, err := parseDateTime(req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	practitionerID, err := uuid.Parse(req.PractitionerID)
	if err != nil {
		return nil, ErrPractitionerNotFound
	}

	appointment := &entity.Appointment{
		ScheduledAt:    scheduledAt,
		Status:         entity.AppointmentStatusScheduled,
		PatientID:      userID,
		PractitionerID: practitionerID,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isForeignKeyError(err, "practitioner") {
			return nil, ErrPractitionerNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to write appointment create audit entry: %+v", err)
	}

	// Reload with patient and practitioner for the response; fall back to
	// the bare record when the reload fails.
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, practitioner=%s", appointment.ID, userID, practitionerID)
	return converter.AppointmentToResponse(full), nil
}

// List returns a page of appointments. Patients are implicitly restricted to
// their own appointments no matter which filters they pass; practitioners and
// admins see everything that matches the filters.
func (u *appointmentUsecase) List(ctx context.Context, query *dto.FindAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	userID, ok := getUserID(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}
	role, ok := getRole(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	filter := repository.AppointmentFilter{
		Status: entity.AppointmentStatus(query.Status),
		Page:   query.Page,
		Limit:  query.Limit,
	}

	if role == entity.RolePatient {
		filter.PatientID = userID
	}

	if query.PractitionerID != "" {
		practitionerID, err := uuid.Parse(query.PractitionerID)
		if err != nil {
			return nil, ErrPractitionerNotFound
		}
		filter.PractitionerID = practitionerID
	}

	if query.DateFrom != "" && query.DateTo != "" {
		from, err := parseDateTime(query.DateFrom)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		to, err := parseDateTime(query.DateTo)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.DateFrom = &from
		filter.DateTo = &to
	}

	appointments, total, err := u.appointmentRepo.FindPaginated(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Data:  converter.AppointmentsToResponses(appointments),
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// Get returns a single appointment. Existence is checked before ownership,
// so an unknown id yields not-found even for a caller who would otherwise be
// denied. Patients may only read their own appointments.
func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.loadOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

// Update sets arbitrary fields on an appointment. The route admits only
// practitioner and admin; there is no ownership check here and no transition
// guard, so any status may replace any other.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	callerID, _ := getUserID(ctx)
	if err := u.auditService.LogUpdate(ctx, &callerID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to write appointment update audit entry: %+v", err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel forces the status to cancelled, regardless of the current status.
// The same ownership rule as Get applies: a patient may only cancel their own
// appointment, an admin may cancel any.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.loadOwned(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Cancel()

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return nil, err
	}

	callerID, _ := getUserID(ctx)
	if err := u.auditService.Log(ctx, &callerID, entity.AuditActionAppointmentCancel, entity.JSON{
		"entity":    "appointment",
		"entity_id": appointment.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to write appointment cancel audit entry: %+v", err)
	}

	return converter.AppointmentToResponse(appointment), nil
}

// loadOwned fetches an appointment and applies the patient ownership rule:
// not-found wins over forbidden, practitioners and admins are never denied
// on ownership grounds.
func (u *appointmentUsecase) loadOwned(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	userID, ok := getUserID(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}
	role, ok := getRole(ctx)
	if !ok {
		return nil, ErrIdentityMissing
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if role == entity.RolePatient && !appointment.IsOwnedBy(userID) {
		return nil, ErrAppointmentAccessDenied
	}

	return appointment, nil
}

// parseDateTime accepts either a bare date or a full RFC 3339 timestamp.
func parseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
