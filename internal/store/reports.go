package store

import (
	"context"
	"fmt"
	"math"
)

// EventPopularity returns registration counts for every non-cancelled event,
// most popular first.
func (s *gormStore) EventPopularity(ctx context.Context) ([]EventPopularityRow, error) {
	rows := make([]EventPopularityRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS event_id, e.name AS event_name, e.type AS type,
		       COUNT(r.id) AS registrations
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE NOT e.cancelled
		GROUP BY e.id, e.name, e.type
		ORDER BY registrations DESC, e.id`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("popularity report: %w", err)
	}
	return rows, nil
}

// EventReport returns the detail report for a single event. Scalar subqueries
// keep the feedback count and average exact; a flat three-way LEFT JOIN would
// multiply feedback rows by the number of registrations.
func (s *gormStore) EventReport(ctx context.Context, eventID string) (*EventReportRow, error) {
	var row EventReportRow
	res := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS event_id, e.name AS name,
		       (SELECT COUNT(DISTINCT r.student_id) FROM registrations r WHERE r.event_id = e.id) AS registered,
		       (SELECT COUNT(DISTINCT a.student_id) FROM attendance a WHERE a.event_id = e.id) AS attended,
		       (SELECT ROUND(AVG(f.rating), 2) FROM feedback f WHERE f.event_id = e.id) AS avg_rating,
		       (SELECT COUNT(*) FROM feedback f WHERE f.event_id = e.id) AS feedback_count
		FROM events e
		WHERE e.id = ?`, eventID).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("event report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}
	row.AttendancePercent = percent(row.Attended, row.Registered)
	return &row, nil
}

// AttendancePercent returns the attendance percentage for every non-cancelled
// event, highest first. The DISTINCT counts are immune to the row
// multiplication of the double join.
func (s *gormStore) AttendancePercent(ctx context.Context) ([]AttendancePercentRow, error) {
	rows := make([]AttendancePercentRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS event_id, e.name AS name,
		       COUNT(DISTINCT a.student_id) AS attended,
		       COUNT(DISTINCT r.student_id) AS registered,
		       CASE WHEN COUNT(DISTINCT r.student_id) = 0 THEN 0
		            ELSE ROUND(100.0 * COUNT(DISTINCT a.student_id) / COUNT(DISTINCT r.student_id), 2)
		       END AS attendance_percent
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		LEFT JOIN attendance a ON a.event_id = e.id
		WHERE NOT e.cancelled
		GROUP BY e.id, e.name
		ORDER BY attendance_percent DESC, e.id`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("attendance report: %w", err)
	}
	return rows, nil
}

// AverageFeedback returns the average rating per non-cancelled event, best
// first. Events with no feedback have a NULL average and are pinned to the
// end of the result regardless of the engine's null-ordering default.
func (s *gormStore) AverageFeedback(ctx context.Context) ([]AverageFeedbackRow, error) {
	rows := make([]AverageFeedbackRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT e.id AS event_id, e.name AS name,
		       ROUND(AVG(f.rating), 2) AS avg_rating,
		       COUNT(f.id) AS feedback_count
		FROM events e
		LEFT JOIN feedback f ON f.event_id = e.id
		WHERE NOT e.cancelled
		GROUP BY e.id, e.name
		ORDER BY (AVG(f.rating) IS NULL), AVG(f.rating) DESC, e.id`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("feedback report: %w", err)
	}
	return rows, nil
}

// StudentParticipation returns how many distinct events a student attended.
func (s *gormStore) StudentParticipation(ctx context.Context, studentID string) (*StudentParticipationRow, error) {
	var row StudentParticipationRow
	res := s.db.WithContext(ctx).Raw(`
		SELECT s.id AS student_id, s.name AS name,
		       COUNT(DISTINCT a.event_id) AS events_attended
		FROM students s
		LEFT JOIN attendance a ON a.student_id = s.id
		WHERE s.id = ?
		GROUP BY s.id, s.name`, studentID).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("participation report: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrStudentNotFound
	}
	return &row, nil
}

// TopActiveStudents ranks students by distinct events attended. The inner
// join excludes students with zero attendance.
func (s *gormStore) TopActiveStudents(ctx context.Context, limit int) ([]StudentParticipationRow, error) {
	if limit <= 0 {
		limit = 3
	}
	rows := make([]StudentParticipationRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT s.id AS student_id, s.name AS name,
		       COUNT(DISTINCT a.event_id) AS events_attended
		FROM students s
		JOIN attendance a ON a.student_id = s.id
		GROUP BY s.id, s.name
		ORDER BY events_attended DESC, s.id
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top active report: %w", err)
	}
	return rows, nil
}

// percent computes round(100*attended/registered, 2), defined as 0 when
// nothing is registered. math.Round rounds half away from zero, matching
// the SQL ROUND used by the list reports.
func percent(attended, registered int64) float64 {
	if registered == 0 {
		return 0
	}
	return math.Round(100*float64(attended)/float64(registered)*100) / 100
}
