package utils

import (
	"testing"

	"hospital-chatbot-backend/models"
)

func TestClassify(t *testing.T) {
	ic := NewIntentClassifier()

	tests := []struct {
		input string
		want  models.Intent
	}{
		{"I want to book an appointment", models.IntentBookAppointment},
		{"is there a free slot tomorrow?", models.IntentBookAppointment},
		{"I have chest pain and fever", models.IntentRecommendDoctor},
		{"who should I see for back pain?", models.IntentRecommendDoctor},
		{"what is Dr. Khan's qualification and experience?", models.IntentGetInfo},
		{"which doctors do you have?", models.IntentGetInfo},
		{"hello there", models.IntentGeneralQuery},
		{"thanks, bye", models.IntentGeneralQuery},
	}

	for _, tt := range tests {
		if got := ic.Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
