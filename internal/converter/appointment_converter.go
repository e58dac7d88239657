package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Patient and practitioner are included when the relation was preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		ScheduledAt:    appointment.ScheduledAt,
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		PatientID:      appointment.PatientID,
		PractitionerID: appointment.PractitionerID,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.Patient = UserToResponse(appointment.Patient)
	}
	if appointment.Practitioner != nil {
		response.Practitioner = UserToResponse(appointment.Practitioner)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
