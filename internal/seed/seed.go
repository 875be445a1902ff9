// Package seed populates the store with a small deterministic sample
// dataset: one college, ten students, five events, and a spread of
// registrations, attendance, and feedback for the reports to chew on.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"campus-events-backend/internal/store"
)

const collegeID = "college_alpha"

var eventTypes = []string{"Workshop", "Seminar", "Fest", "Workshop", "Tech Talk"}

// Run seeds sample data through the store. Conflict errors on the fixed-id
// college and students are ignored; events carry generated ids, so a second
// run adds a fresh batch of events alongside the first.
func Run(ctx context.Context, s store.Store) error {
	if _, err := s.CreateCollege(ctx, collegeID, "Alpha Institute of Tech"); err != nil && !store.IsConflict(err) {
		return fmt.Errorf("seed college: %w", err)
	}

	studentIDs := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("%s::s%03d", collegeID, i)
		studentIDs = append(studentIDs, id)
		_, err := s.CreateStudent(ctx, store.NewStudent{
			ID:        id,
			CollegeID: collegeID,
			Name:      fmt.Sprintf("Student %d", i),
			Email:     fmt.Sprintf("s%d@alpha.edu", i),
		})
		if err != nil && !store.IsConflict(err) {
			return fmt.Errorf("seed student %d: %w", i, err)
		}
	}

	capacity := 100
	eventIDs := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		event, err := s.CreateEvent(ctx, store.NewEvent{
			CollegeID: collegeID,
			Name:      fmt.Sprintf("Event %d", i),
			Type:      eventTypes[i-1],
			Date:      time.Now().AddDate(0, 0, i).Format("2006-01-02"),
			Capacity:  &capacity,
		})
		if err != nil {
			return fmt.Errorf("seed event %d: %w", i, err)
		}
		eventIDs = append(eventIDs, event.ID)
	}

	// First event gets everyone; the rest a thinning subset.
	for ei, eventID := range eventIDs {
		for si, studentID := range studentIDs {
			if ei > 0 && si%(ei+2) != 0 {
				continue
			}
			if _, err := s.Register(ctx, eventID, studentID); err != nil && !store.IsConflict(err) {
				return fmt.Errorf("seed registration: %w", err)
			}
		}
	}

	for ei, eventID := range eventIDs {
		for si, studentID := range studentIDs {
			if (si+ei)%3 != 0 {
				continue
			}
			_, err := s.MarkAttendance(ctx, eventID, studentID)
			if err != nil && !store.IsConflict(err) && !store.IsStateRejection(err) {
				return fmt.Errorf("seed attendance: %w", err)
			}
		}
	}

	for ei, eventID := range eventIDs {
		for si, studentID := range studentIDs {
			if (si+ei)%4 != 0 {
				continue
			}
			rating := 3 + (si+ei)%3
			_, err := s.SubmitFeedback(ctx, eventID, studentID, rating, fmt.Sprintf("Feedback %d", rating))
			if err != nil && !store.IsConflict(err) {
				return fmt.Errorf("seed feedback: %w", err)
			}
		}
	}

	log.Printf("seed complete: %d students, %d events", len(studentIDs), len(eventIDs))
	return nil
}
