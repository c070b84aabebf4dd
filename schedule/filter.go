package schedule

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
)

// MatchesSlot reports whether the slot covers the resolved weekday and time.
// Boundary times count as available on both ends.
func MatchesSlot(slot models.WeeklySlot, resolved ResolvedQuery) (bool, error) {
	onDay, err := DayInRange(slot.Days, resolved.Weekday)
	if err != nil {
		return false, fmt.Errorf("slot %s: %w", slot.ID.Hex(), err)
	}
	if !onDay {
		return false, nil
	}
	start, err := ParseSlotClock(slot.StartTime)
	if err != nil {
		return false, fmt.Errorf("slot %s start: %w", slot.ID.Hex(), err)
	}
	end, err := ParseSlotClock(slot.EndTime)
	if err != nil {
		return false, fmt.Errorf("slot %s end: %w", slot.ID.Hex(), err)
	}
	return start <= resolved.Time && resolved.Time <= end, nil
}

// FilterAvailable returns the doctors with at least one slot covering the
// resolved weekday and time. A doctor's slots are ORed: the first match wins.
// Doctors with zero slots on record are excluded. Callers that have no
// resolved query simply don't call this — returning an unfiltered list is
// always an explicit caller decision, never a fallback here.
func FilterAvailable(doctors []models.Doctor, slotsByDoctor map[primitive.ObjectID][]models.WeeklySlot, resolved ResolvedQuery) ([]models.Doctor, error) {
	available := make([]models.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		for _, slot := range slotsByDoctor[doc.ID] {
			ok, err := MatchesSlot(slot, resolved)
			if err != nil {
				return nil, err
			}
			if ok {
				available = append(available, doc)
				break
			}
		}
	}
	return available, nil
}
