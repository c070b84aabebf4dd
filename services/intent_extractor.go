package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"hospital-chatbot-backend/models"
)

// ErrIntentParse means the extractor's output could not be decoded into a
// structured result. The raw model text is logged, never propagated.
var ErrIntentParse = errors.New("could not parse intent from model output")

const extractPromptTemplate = `You are a structured intent and entity extractor for a hospital assistant.

Conversation so far:
%s

Latest user message: "%s"

Return a JSON object with these keys:
{
  "intent": one of ["book_appointment", "recommend_doctor", "get_info", "general_query"],
  "specialization": "probable specialization (e.g. cardiologist, orthopedic, dentist) or empty string",
  "doctor_name": "doctor's name or empty string if not mentioned",
  "date": "YYYY/MM/DD format if a proper date was given, otherwise keep what the user said, like 'tomorrow' or 'day after tomorrow'; empty string if absent",
  "time": "24-hour HH:MM format; morning=09:00, afternoon=14:00, evening=18:00; empty string if absent"
}
Return ONLY the JSON object, nothing else.`

// IntentExtractor asks the LLM to turn free text into a structured intent
// plus slot guesses.
type IntentExtractor struct {
	ai     TextGenerator
	logger zerolog.Logger
}

func NewIntentExtractor(ai TextGenerator, logger zerolog.Logger) *IntentExtractor {
	return &IntentExtractor{
		ai:     ai,
		logger: logger.With().Str("component", "intent_extractor").Logger(),
	}
}

// Extract returns the model's best-effort intent and slot values. The model
// often wraps its JSON in prose, so the first balanced {...} span is cut out
// before decoding. A partially-decoded structure is never returned.
func (e *IntentExtractor) Extract(ctx context.Context, message, history string) (models.IntentResult, error) {
	prompt := fmt.Sprintf(extractPromptTemplate, history, message)

	raw, err := e.ai.GenerateResponse(ctx, prompt)
	if err != nil {
		return models.IntentResult{}, fmt.Errorf("intent extraction call failed: %w", err)
	}

	span, ok := ExtractJSONObject(raw)
	if !ok {
		e.logger.Debug().Str("raw", raw).Msg("no JSON object in model output")
		return models.IntentResult{}, ErrIntentParse
	}

	var result models.IntentResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		e.logger.Debug().Str("raw", raw).Err(err).Msg("model output JSON did not decode")
		return models.IntentResult{}, ErrIntentParse
	}

	result.Intent = strings.ToLower(strings.TrimSpace(result.Intent))
	if result.Intent == "" {
		e.logger.Debug().Str("raw", raw).Msg("model output missing intent key")
		return models.IntentResult{}, ErrIntentParse
	}

	result.Specialization = strings.TrimSpace(result.Specialization)
	result.DoctorName = strings.TrimSpace(result.DoctorName)
	result.Date = strings.TrimSpace(result.Date)
	result.Time = strings.TrimSpace(result.Time)
	return result, nil
}

// ExtractJSONObject returns the first balanced {...} span in s.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
