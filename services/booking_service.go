package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/repositories"
	"hospital-chatbot-backend/schedule"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrNotAvailable   = errors.New("doctor not available at the requested slot")
)

// BookingService runs the appointment flow: resolve the requested day/time,
// check the doctor's weekly slots, then commit. The availability check and
// the insert are not one transaction; the appointment store's unique index
// is what catches a concurrent double-booking.
type BookingService struct {
	doctors      DoctorFinder
	availability AvailabilityFinder
	appointments AppointmentInserter
	logger       zerolog.Logger
}

func NewBookingService(doctors DoctorFinder, availability AvailabilityFinder, appointments AppointmentInserter, logger zerolog.Logger) *BookingService {
	return &BookingService{
		doctors:      doctors,
		availability: availability,
		appointments: appointments,
		logger:       logger.With().Str("component", "booking").Logger(),
	}
}

const (
	msgStoreTrouble = "I'm having trouble reaching our records right now. Please try again in a moment."
)

// HandleBooking turns an extracted booking request into a user-facing reply.
// Every failure is recovered into a message; nothing here is fatal.
func (s *BookingService) HandleBooking(ctx context.Context, result models.IntentResult, patientID string, now time.Time) string {
	resolved, err := schedule.Resolve(result.Date, result.Time, now)
	if err != nil {
		return bookingErrorMessage(err)
	}

	// No doctor named: suggest candidates for the requested specialization.
	if result.DoctorName == "" {
		return s.suggestDoctors(ctx, result.Specialization, resolved)
	}

	doctors, err := s.doctors.FindByName(ctx, result.DoctorName)
	if err != nil {
		s.logger.Error().Err(err).Str("doctor_name", result.DoctorName).Msg("doctor lookup failed")
		return msgStoreTrouble
	}
	if len(doctors) == 0 {
		return fmt.Sprintf("Doctor '%s' not found.", result.DoctorName)
	}
	doctor := doctors[0]

	appointment, err := s.book(ctx, doctor, patientID, resolved)
	switch {
	case errors.Is(err, ErrDoctorNotFound):
		return fmt.Sprintf("Dr. %s has no availability on record.", doctor.Name)
	case errors.Is(err, ErrNotAvailable):
		return s.notAvailableMessage(ctx, doctor, resolved)
	case errors.Is(err, repositories.ErrSlotTaken):
		return fmt.Sprintf("That slot with Dr. %s has just been booked. Please choose another time.", doctor.Name)
	case err != nil:
		s.logger.Error().Err(err).Str("doctor_id", doctor.ID.Hex()).Msg("booking failed")
		return "Sorry, I couldn't complete the booking right now. Please try again."
	}

	// Confirmation is only worded after the store reported success.
	return fmt.Sprintf(
		"Appointment booked successfully!\nDoctor: %s\nDate: %s\nTime: %s (%s)",
		doctor.Name, appointment.Date, appointment.Time, now.Location(),
	)
}

// BookDirect is the REST booking path. Preconditions match the chat flow:
// the doctor must exist and the resolved slot must pass the availability
// check before any insert is attempted.
func (s *BookingService) BookDirect(ctx context.Context, doctorID primitive.ObjectID, patientID, dateExpr, timeExpr string, now time.Time) (*models.Appointment, error) {
	resolved, err := schedule.Resolve(dateExpr, timeExpr, now)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return s.book(ctx, *doctor, patientID, resolved)
}

// book enforces the slot precondition, then inserts.
func (s *BookingService) book(ctx context.Context, doctor models.Doctor, patientID string, resolved schedule.ResolvedQuery) (*models.Appointment, error) {
	slots, err := s.availability.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	// Zero availability rows rejects the booking before any insert.
	if len(slots) == 0 {
		return nil, ErrDoctorNotFound
	}

	matched := false
	for _, slot := range slots {
		ok, err := schedule.MatchesSlot(slot, resolved)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = true
			break
		}
	}
	if !matched {
		return nil, ErrNotAvailable
	}

	appointment := &models.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patientID,
		Date:      resolved.DateString(),
		Time:      resolved.Time.String(),
	}
	if err := s.appointments.Insert(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID.Hex()).
		Str("doctor_id", doctor.ID.Hex()).
		Str("date", appointment.Date).
		Str("time", appointment.Time).
		Msg("appointment booked")
	return appointment, nil
}

// suggestDoctors lists specialists free at the resolved slot when the user
// hasn't picked a doctor yet.
func (s *BookingService) suggestDoctors(ctx context.Context, specialization string, resolved schedule.ResolvedQuery) string {
	if specialization == "" {
		return "Please mention the doctor or your health concern (e.g., skin issue, bones, heart)."
	}

	doctors, err := s.doctors.FindBySpecialization(ctx, specialization)
	if err != nil {
		s.logger.Error().Err(err).Str("specialization", specialization).Msg("specialization lookup failed")
		return msgStoreTrouble
	}
	if len(doctors) == 0 {
		return fmt.Sprintf("No doctors found for specialization '%s'.", specialization)
	}

	available, err := s.filterAvailable(ctx, doctors, resolved)
	if err != nil {
		s.logger.Error().Err(err).Str("specialization", specialization).Msg("availability filtering failed")
		return msgStoreTrouble
	}
	if len(available) == 0 {
		return fmt.Sprintf("No %s doctors are available on %s at %s.", specialization, resolved.DateString(), resolved.Time)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Available %s doctors for %s at %s:\n", specialization, resolved.DateString(), resolved.Time)
	for _, doc := range available {
		fmt.Fprintf(&sb, "- Dr. %s (%d yrs exp)\n", doc.Name, doc.Experience)
	}
	sb.WriteString("\nPlease tell me which doctor you'd like to book an appointment with.")
	return sb.String()
}

func (s *BookingService) filterAvailable(ctx context.Context, doctors []models.Doctor, resolved schedule.ResolvedQuery) ([]models.Doctor, error) {
	slotsByDoctor := make(map[primitive.ObjectID][]models.WeeklySlot, len(doctors))
	for _, doc := range doctors {
		slots, err := s.availability.FindByDoctorID(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		slotsByDoctor[doc.ID] = slots
	}
	return schedule.FilterAvailable(doctors, slotsByDoctor, resolved)
}

// notAvailableMessage distinguishes a wrong-day miss from a wrong-time miss.
func (s *BookingService) notAvailableMessage(ctx context.Context, doctor models.Doctor, resolved schedule.ResolvedQuery) string {
	slots, err := s.availability.FindByDoctorID(ctx, doctor.ID)
	if err == nil {
		for _, slot := range slots {
			if onDay, rangeErr := schedule.DayInRange(slot.Days, resolved.Weekday); rangeErr == nil && onDay {
				return fmt.Sprintf("Dr. %s is not available at %s. Please choose another time.", doctor.Name, resolved.Time)
			}
		}
	}
	return fmt.Sprintf("Dr. %s is not available on %s.", doctor.Name, resolved.Date.Format("Monday"))
}

func bookingErrorMessage(err error) string {
	switch {
	case errors.Is(err, schedule.ErrMissingDate):
		return "Please provide a valid date."
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		return "Please provide a valid date in YYYY/MM/DD format."
	case errors.Is(err, schedule.ErrMissingTime):
		return "Please provide a valid date and time for the appointment."
	case errors.Is(err, schedule.ErrInvalidTimeFormat):
		return "Please provide a valid time in HH:MM (24-hour) format."
	default:
		return "Please provide a valid date and time for the appointment."
	}
}
