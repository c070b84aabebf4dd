package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"hospital-chatbot-backend/models"
)

// InfoService answers doctor directory questions: by specialization, by
// name, or the whole roster when neither was given (an explicit unfiltered
// listing).
type InfoService struct {
	doctors DoctorFinder
	logger  zerolog.Logger
}

func NewInfoService(doctors DoctorFinder, logger zerolog.Logger) *InfoService {
	return &InfoService{
		doctors: doctors,
		logger:  logger.With().Str("component", "info").Logger(),
	}
}

func (s *InfoService) HandleInfo(ctx context.Context, result models.IntentResult) string {
	var (
		doctors []models.Doctor
		err     error
	)
	switch {
	case result.Specialization != "":
		doctors, err = s.doctors.FindBySpecialization(ctx, result.Specialization)
	case result.DoctorName != "":
		doctors, err = s.doctors.FindByName(ctx, result.DoctorName)
	default:
		doctors, err = s.doctors.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("doctor info lookup failed")
		return msgStoreTrouble
	}
	if len(doctors) == 0 {
		return "I couldn't find any matching doctors. Could you check the name or specialization?"
	}

	var sb strings.Builder
	sb.WriteString("Here's what I found:\n")
	for _, doc := range doctors {
		fmt.Fprintf(&sb, "- Dr. %s, %s (%s, %d yrs exp, Room %s)\n",
			doc.Name, doc.Specialization, doc.Qualification, doc.Experience, doc.Room)
	}
	sb.WriteString("\nWould you like to book an appointment with any of them?")
	return sb.String()
}
