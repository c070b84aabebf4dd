package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/utils"
)

const generalChatPromptTemplate = `You are a helpful customer support agent working at a hospital.
Your job is to politely converse with the patient and answer questions that
are sensible and within the hospital's domain. If the patient seems to want a
doctor recommendation or an appointment, invite them to say so.

Conversation so far:
%s

User: "%s"`

// ChatbotService runs one chat turn: extract intent, dispatch to the
// matching handler, record the transcript, assemble the response. The
// dispatch table is fixed and acyclic: booking, recommendation, info,
// general chat.
type ChatbotService struct {
	ai             TextGenerator
	extractor      *IntentExtractor
	classifier     *utils.IntentClassifier
	booking        *BookingService
	recommendation *RecommendationService
	info           *InfoService
	sessions       *SessionStore
	messages       MessageRecorder
	logger         zerolog.Logger

	defaultPatientID string
	now              func() time.Time
}

func NewChatbotService(
	ai TextGenerator,
	extractor *IntentExtractor,
	booking *BookingService,
	recommendation *RecommendationService,
	info *InfoService,
	sessions *SessionStore,
	messages MessageRecorder,
	defaultPatientID string,
	clock func() time.Time,
	logger zerolog.Logger,
) *ChatbotService {
	return &ChatbotService{
		ai:               ai,
		extractor:        extractor,
		classifier:       utils.NewIntentClassifier(),
		booking:          booking,
		recommendation:   recommendation,
		info:             info,
		sessions:         sessions,
		messages:         messages,
		defaultPatientID: defaultPatientID,
		now:              clock,
		logger:           logger.With().Str("component", "chatbot").Logger(),
	}
}

// ProcessMessage handles a single inbound chat message and returns the reply
// plus the session transcript.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("empty message")
	}

	history := s.sessions.ContextWindow(req.SessionID)
	s.sessions.Append(req.SessionID, "user", req.Message)

	intent, result := s.classify(ctx, req.Message, history)

	patientID := req.PatientID
	if patientID == "" {
		patientID = s.defaultPatientID
	}

	var reply string
	switch intent {
	case models.IntentBookAppointment:
		reply = s.booking.HandleBooking(ctx, result, patientID, s.now())
	case models.IntentRecommendDoctor:
		reply = s.recommendation.HandleRecommendation(ctx, result, req.Message, s.now())
	case models.IntentGetInfo:
		reply = s.info.HandleInfo(ctx, result)
	default:
		intent = models.IntentGeneralQuery
		reply = s.generalChat(ctx, req.Message, history)
	}

	s.sessions.Append(req.SessionID, "bot", reply)
	s.record(ctx, req.SessionID, req.Message, reply, intent)

	return &models.ChatResponse{
		Response: reply,
		Intent:   intent,
		History:  s.sessions.History(req.SessionID),
	}, nil
}

// classify prefers the LLM extractor; when that fails the keyword classifier
// picks the branch and all slot values stay empty.
func (s *ChatbotService) classify(ctx context.Context, message, history string) (models.Intent, models.IntentResult) {
	result, err := s.extractor.Extract(ctx, message, history)
	if err != nil {
		if !errors.Is(err, ErrIntentParse) {
			s.logger.Warn().Err(err).Msg("intent extraction unavailable, using keyword fallback")
		}
		return s.classifier.Classify(message), models.IntentResult{}
	}

	switch models.Intent(result.Intent) {
	case models.IntentBookAppointment, models.IntentRecommendDoctor, models.IntentGetInfo, models.IntentGeneralQuery:
		return models.Intent(result.Intent), result
	default:
		return models.IntentGeneralQuery, result
	}
}

func (s *ChatbotService) generalChat(ctx context.Context, message, history string) string {
	reply, err := s.ai.GenerateResponse(ctx, fmt.Sprintf(generalChatPromptTemplate, history, message))
	if err != nil {
		s.logger.Error().Err(err).Msg("general chat call failed")
		return "I'm sorry, I'm having trouble responding right now. I can still help you book an appointment or find a doctor."
	}
	return strings.TrimSpace(reply)
}

// record persists both turns; transcript write failures are logged, never
// surfaced to the user.
func (s *ChatbotService) record(ctx context.Context, sessionID, userMessage, botReply string, intent models.Intent) {
	if err := s.messages.Insert(ctx, &models.Message{
		SessionID: sessionID,
		Role:      "user",
		Content:   userMessage,
		Intent:    intent,
	}); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist user message")
	}
	if err := s.messages.Insert(ctx, &models.Message{
		SessionID: sessionID,
		Role:      "bot",
		Content:   botReply,
		Intent:    intent,
	}); err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist bot message")
	}
}
