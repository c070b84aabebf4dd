package utils

import (
	"strings"

	"hospital-chatbot-backend/models"
)

// IntentClassifier is the offline keyword fallback used when the LLM
// extractor is unreachable or returns something undecodable.
type IntentClassifier struct {
	patterns map[models.Intent][]string
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		patterns: map[models.Intent][]string{
			models.IntentBookAppointment: {
				"book", "appointment", "schedule", "slot", "visit",
				"reserve", "checkup",
			},
			models.IntentRecommendDoctor: {
				"pain", "recommend", "fever", "consult", "symptom",
				"hurts", "which doctor", "who should i see",
			},
			models.IntentGetInfo: {
				"specialization", "qualification", "experience",
				"doctor list", "doctors do you have", "tell me about dr",
				"which doctors", "room",
			},
		},
	}
}

// Classify scores keyword hits per intent; ties and zero hits fall through
// to general chat.
func (ic *IntentClassifier) Classify(message string) models.Intent {
	message = strings.ToLower(message)

	scores := make(map[models.Intent]int)
	for intent, keywords := range ic.patterns {
		for _, keyword := range keywords {
			if strings.Contains(message, keyword) {
				scores[intent]++
			}
		}
	}

	maxIntent := models.IntentGeneralQuery
	maxScore := 0
	for _, intent := range []models.Intent{
		models.IntentBookAppointment,
		models.IntentRecommendDoctor,
		models.IntentGetInfo,
	} {
		if scores[intent] > maxScore {
			maxScore = scores[intent]
			maxIntent = intent
		}
	}

	return maxIntent
}
