package schedule

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
)

func resolvedAt(t *testing.T, dateExpr, timeExpr string) ResolvedQuery {
	t.Helper()
	resolved, err := Resolve(dateExpr, timeExpr, time.Date(2025, 11, 5, 8, 0, 0, 0, pkt))
	if err != nil {
		t.Fatalf("Resolve(%q, %q) error = %v", dateExpr, timeExpr, err)
	}
	return resolved
}

func TestMatchesSlotBoundariesInclusive(t *testing.T) {
	slot := models.WeeklySlot{Days: "mon-fri", StartTime: "09:00:00", EndTime: "17:00:00"}

	tests := []struct {
		timeExpr string
		want     bool
	}{
		{"09:00", true},
		{"17:00", true},
		{"08:59", false},
		{"17:01", false},
		{"12:30", true},
	}
	for _, tt := range tests {
		// 2025/11/05 is a Wednesday.
		got, err := MatchesSlot(slot, resolvedAt(t, "2025/11/05", tt.timeExpr))
		if err != nil {
			t.Fatalf("MatchesSlot at %s error = %v", tt.timeExpr, err)
		}
		if got != tt.want {
			t.Errorf("MatchesSlot at %s = %v, want %v", tt.timeExpr, got, tt.want)
		}
	}
}

func TestMatchesSlotWrongDay(t *testing.T) {
	slot := models.WeeklySlot{Days: "mon-tue", StartTime: "09:00:00", EndTime: "17:00:00"}
	got, err := MatchesSlot(slot, resolvedAt(t, "2025/11/05", "10:00"))
	if err != nil {
		t.Fatalf("MatchesSlot error = %v", err)
	}
	if got {
		t.Error("MatchesSlot on wed against mon-tue slot = true, want false")
	}
}

func TestFilterAvailableOrAcrossSlots(t *testing.T) {
	doc := models.Doctor{ID: primitive.NewObjectID(), Name: "Ayesha Khan", Specialization: "Cardiologist"}
	slots := map[primitive.ObjectID][]models.WeeklySlot{
		doc.ID: {
			{DoctorID: doc.ID, Days: "mon-tue", StartTime: "09:00:00", EndTime: "12:00:00"},
			{DoctorID: doc.ID, Days: "wed-fri", StartTime: "13:00:00", EndTime: "18:00:00"},
		},
	}

	// Wednesday 14:00 hits the second slot.
	got, err := FilterAvailable([]models.Doctor{doc}, slots, resolvedAt(t, "2025/11/05", "14:00"))
	if err != nil {
		t.Fatalf("FilterAvailable error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FilterAvailable(wed 14:00) returned %d doctors, want 1", len(got))
	}

	// Saturday 14:00 hits neither slot.
	got, err = FilterAvailable([]models.Doctor{doc}, slots, resolvedAt(t, "2025/11/08", "14:00"))
	if err != nil {
		t.Fatalf("FilterAvailable error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("FilterAvailable(sat 14:00) returned %d doctors, want 0", len(got))
	}
}

func TestFilterAvailableExcludesDoctorsWithoutSlots(t *testing.T) {
	withSlots := models.Doctor{ID: primitive.NewObjectID(), Name: "Ayesha Khan"}
	noSlots := models.Doctor{ID: primitive.NewObjectID(), Name: "Bilal Ahmed"}
	slots := map[primitive.ObjectID][]models.WeeklySlot{
		withSlots.ID: {
			{DoctorID: withSlots.ID, Days: "wed", StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	}

	got, err := FilterAvailable([]models.Doctor{withSlots, noSlots}, slots, resolvedAt(t, "2025/11/05", "10:00"))
	if err != nil {
		t.Fatalf("FilterAvailable error = %v", err)
	}
	if len(got) != 1 || got[0].ID != withSlots.ID {
		t.Fatalf("FilterAvailable = %v, want only the doctor with slots", got)
	}
}

func TestFilterAvailableMalformedRangeIsAnError(t *testing.T) {
	doc := models.Doctor{ID: primitive.NewObjectID(), Name: "Ayesha Khan"}
	slots := map[primitive.ObjectID][]models.WeeklySlot{
		doc.ID: {
			{DoctorID: doc.ID, Days: "monday-wed", StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	}
	if _, err := FilterAvailable([]models.Doctor{doc}, slots, resolvedAt(t, "2025/11/05", "10:00")); err == nil {
		t.Fatal("FilterAvailable with malformed day range returned nil error")
	}
}
