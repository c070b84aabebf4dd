package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
)

// scriptedGenerator answers the extractor prompt and chat prompts
// separately, so one fake can drive a whole turn.
type scriptedGenerator struct {
	extractReply string
	extractErr   error
	chatReply    string
	chatErr      error
}

func (g *scriptedGenerator) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "intent and entity extractor") {
		return g.extractReply, g.extractErr
	}
	return g.chatReply, g.chatErr
}

type fakeMessageStore struct {
	inserted []*models.Message
}

func (f *fakeMessageStore) Insert(ctx context.Context, message *models.Message) error {
	f.inserted = append(f.inserted, message)
	return nil
}

func newChatFixture(gen TextGenerator, doctors []models.Doctor, slots map[primitive.ObjectID][]models.WeeklySlot) (*ChatbotService, *fakeAppointmentStore, *fakeMessageStore) {
	doctorStore := &fakeDoctorStore{doctors: doctors}
	availabilityStore := &fakeAvailabilityStore{slots: slots}
	appointmentStore := &fakeAppointmentStore{}
	messageStore := &fakeMessageStore{}

	booking := NewBookingService(doctorStore, availabilityStore, appointmentStore, zerolog.Nop())
	recommendation := NewRecommendationService(gen, doctorStore, booking, zerolog.Nop())
	info := NewInfoService(doctorStore, zerolog.Nop())
	extractor := NewIntentExtractor(gen, zerolog.Nop())

	svc := NewChatbotService(
		gen,
		extractor,
		booking,
		recommendation,
		info,
		NewSessionStore(6),
		messageStore,
		"anonymous",
		func() time.Time { return bookingNow },
		zerolog.Nop(),
	)
	return svc, appointmentStore, messageStore
}

func TestProcessMessageBooksThroughExtractedIntent(t *testing.T) {
	doc := models.Doctor{ID: primitive.NewObjectID(), Name: "Ayesha Khan", Specialization: "Cardiologist"}
	gen := &scriptedGenerator{
		extractReply: `{"intent":"book_appointment","specialization":"cardiologist","doctor_name":"Ayesha","date":"tomorrow","time":"10:00"}`,
	}
	svc, appointments, messages := newChatFixture(gen, []models.Doctor{doc}, map[primitive.ObjectID][]models.WeeklySlot{
		doc.ID: {{DoctorID: doc.ID, Days: "mon-fri", StartTime: "09:00:00", EndTime: "17:00:00"}},
	})

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "book me with Dr. Ayesha tomorrow at 10",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentBookAppointment, resp.Intent)
	assert.Contains(t, resp.Response, "booked successfully")
	assert.Len(t, appointments.inserted, 1)

	// Both turns went to the transcript and the session history.
	assert.Len(t, messages.inserted, 2)
	require.Len(t, resp.History, 2)
	assert.Equal(t, "user", resp.History[0].Role)
	assert.Equal(t, "bot", resp.History[1].Role)
}

func TestProcessMessageFallsBackToKeywordsWhenLLMFails(t *testing.T) {
	gen := &scriptedGenerator{
		extractErr: errors.New("upstream down"),
		chatErr:    errors.New("upstream down"),
	}
	svc, appointments, _ := newChatFixture(gen, nil, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "I want to book an appointment",
		SessionID: "s1",
	})
	require.NoError(t, err)

	// Keyword fallback picks the booking branch; with no extracted slots the
	// handler asks for a date instead of failing.
	assert.Equal(t, models.IntentBookAppointment, resp.Intent)
	assert.Contains(t, resp.Response, "Please provide a valid date")
	assert.Empty(t, appointments.inserted)
}

func TestProcessMessageGeneralChat(t *testing.T) {
	gen := &scriptedGenerator{
		extractReply: `{"intent":"general_query"}`,
		chatReply:    "Hello! How can I help you today?",
	}
	svc, _, _ := newChatFixture(gen, nil, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "hi there",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentGeneralQuery, resp.Intent)
	assert.Equal(t, "Hello! How can I help you today?", resp.Response)
}

func TestProcessMessageUnknownIntentRoutesToGeneral(t *testing.T) {
	gen := &scriptedGenerator{
		extractReply: `{"intent":"order_pizza"}`,
		chatReply:    "I can help with doctors and appointments.",
	}
	svc, _, _ := newChatFixture(gen, nil, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "get me a pizza",
		SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.IntentGeneralQuery, resp.Intent)
}

func TestProcessMessageRejectsEmptyMessage(t *testing.T) {
	svc, _, _ := newChatFixture(&scriptedGenerator{}, nil, nil)

	_, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "   ",
		SessionID: "s1",
	})
	assert.Error(t, err)
}

func TestProcessMessageInfoIntent(t *testing.T) {
	doc := models.Doctor{ID: primitive.NewObjectID(), Name: "Ayesha Khan", Specialization: "Cardiologist", Qualification: "MBBS, FCPS", Experience: 12, Room: "204"}
	gen := &scriptedGenerator{
		extractReply: `{"intent":"get_info","specialization":"cardiologist"}`,
	}
	svc, _, _ := newChatFixture(gen, []models.Doctor{doc}, nil)

	resp, err := svc.ProcessMessage(context.Background(), models.ChatRequest{
		Message:   "which cardiologists do you have?",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentGetInfo, resp.Intent)
	assert.Contains(t, resp.Response, "Dr. Ayesha Khan")
	assert.Contains(t, resp.Response, "Room 204")
}
