package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			"bare object",
			`{"intent":"book_appointment"}`,
			`{"intent":"book_appointment"}`,
			true,
		},
		{
			"wrapped in prose",
			"Sure! Here is the JSON you asked for:\n```json\n{\"intent\":\"get_info\"}\n```\nLet me know if you need anything else.",
			`{"intent":"get_info"}`,
			true,
		},
		{
			"nested braces",
			`prefix {"a":{"b":1},"c":2} suffix {"d":3}`,
			`{"a":{"b":1},"c":2}`,
			true,
		},
		{"no object", "I could not produce JSON, sorry.", "", false},
		{"unbalanced", `{"intent":"book_appointment"`, "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractJSONObject(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s: ExtractJSONObject() = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractDecodesWrappedJSON(t *testing.T) {
	gen := &fakeGenerator{
		reply: "Here you go:\n{\"intent\": \"Book_Appointment\", \"specialization\": \"cardiologist\", \"doctor_name\": \" Ayesha Khan \", \"date\": \"tomorrow\", \"time\": \"09:00\"}",
	}
	extractor := NewIntentExtractor(gen, zerolog.Nop())

	result, err := extractor.Extract(context.Background(), "book me a cardiologist for tomorrow 9am", "")
	require.NoError(t, err)
	assert.Equal(t, "book_appointment", result.Intent)
	assert.Equal(t, "cardiologist", result.Specialization)
	assert.Equal(t, "Ayesha Khan", result.DoctorName)
	assert.Equal(t, "tomorrow", result.Date)
	assert.Equal(t, "09:00", result.Time)
}

func TestExtractRejectsNonJSONOutput(t *testing.T) {
	extractor := NewIntentExtractor(&fakeGenerator{reply: "I'd say this is a booking request."}, zerolog.Nop())

	_, err := extractor.Extract(context.Background(), "book me in", "")
	assert.ErrorIs(t, err, ErrIntentParse)
}

func TestExtractRejectsMissingIntent(t *testing.T) {
	extractor := NewIntentExtractor(&fakeGenerator{reply: `{"specialization":"dentist"}`}, zerolog.Nop())

	_, err := extractor.Extract(context.Background(), "tooth hurts", "")
	assert.ErrorIs(t, err, ErrIntentParse)
}

func TestExtractPropagatesCallFailure(t *testing.T) {
	extractor := NewIntentExtractor(&fakeGenerator{err: errors.New("upstream down")}, zerolog.Nop())

	_, err := extractor.Extract(context.Background(), "hello", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIntentParse)
}
