package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/schedule"
)

const triagePromptTemplate = `You are a medical triage assistant (non-diagnostic). A patient reports:

"%s"

Return one short sentence recommending the doctor specialization and a brief reason, for example: "You should consult a Cardiologist because of chest pain and shortness of breath."`

// RecommendationService suggests doctors for a specialization, optionally
// narrowed to the ones free at a resolved day and time.
type RecommendationService struct {
	ai      TextGenerator
	doctors DoctorFinder
	booking *BookingService
	logger  zerolog.Logger
}

func NewRecommendationService(ai TextGenerator, doctors DoctorFinder, booking *BookingService, logger zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		ai:      ai,
		doctors: doctors,
		booking: booking,
		logger:  logger.With().Str("component", "recommendation").Logger(),
	}
}

// HandleRecommendation builds the reply for a recommend_doctor turn.
// Without a specialization the user's message is triaged by the LLM; with
// one, matching doctors are listed. Availability filtering only happens when
// the user gave both a date and a time — listing everyone otherwise is a
// deliberate mode, not a fallback.
func (s *RecommendationService) HandleRecommendation(ctx context.Context, result models.IntentResult, userMessage string, now time.Time) string {
	if result.Specialization == "" {
		return s.triage(ctx, userMessage)
	}

	doctors, err := s.doctors.FindBySpecialization(ctx, result.Specialization)
	if err != nil {
		s.logger.Error().Err(err).Str("specialization", result.Specialization).Msg("specialization lookup failed")
		return msgStoreTrouble
	}
	if len(doctors) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any available %ss right now.", strings.ToLower(result.Specialization))
	}

	filtered := doctors
	var slotSuffix string
	if result.Date != "" && result.Time != "" {
		resolved, err := schedule.Resolve(result.Date, result.Time, now)
		if err != nil {
			return bookingErrorMessage(err)
		}
		filtered, err = s.booking.filterAvailable(ctx, doctors, resolved)
		if err != nil {
			s.logger.Error().Err(err).Str("specialization", result.Specialization).Msg("availability filtering failed")
			return msgStoreTrouble
		}
		slotSuffix = fmt.Sprintf(" on %s at %s", resolved.DateString(), resolved.Time)
		if len(filtered) == 0 {
			return fmt.Sprintf("No %s doctors are available%s.", result.Specialization, slotSuffix)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I recommend consulting a %s.\n", result.Specialization)
	fmt.Fprintf(&sb, "Here are some available doctors%s:\n", slotSuffix)
	for _, doc := range filtered {
		fmt.Fprintf(&sb, "- Dr. %s (%s, %d yrs exp, Room %s)\n", doc.Name, doc.Qualification, doc.Experience, doc.Room)
	}
	sb.WriteString("Would you like to book an appointment with one?")
	return sb.String()
}

func (s *RecommendationService) triage(ctx context.Context, symptoms string) string {
	reply, err := s.ai.GenerateResponse(ctx, fmt.Sprintf(triagePromptTemplate, symptoms))
	if err != nil {
		s.logger.Error().Err(err).Msg("triage call failed")
		return "Please specify the specialization you are looking for, or describe your symptoms in more detail."
	}
	return strings.TrimSpace(reply)
}
