package store

// EventPopularityRow is one entry of the popularity report.
type EventPopularityRow struct {
	EventID       string `json:"event_id"`
	EventName     string `json:"event_name"`
	Type          string `json:"type,omitempty"`
	Registrations int64  `json:"registrations"`
}

// EventReportRow is the per-event detail report.
type EventReportRow struct {
	EventID           string   `json:"event_id"`
	Name              string   `json:"name"`
	Registered        int64    `json:"registered"`
	Attended          int64    `json:"attended"`
	AttendancePercent float64  `json:"attendance_percent"`
	AvgRating         *float64 `json:"avg_rating"`
	FeedbackCount     int64    `json:"feedback_count"`
}

// AttendancePercentRow is one entry of the all-events attendance report.
type AttendancePercentRow struct {
	EventID           string  `json:"event_id"`
	Name              string  `json:"name"`
	Attended          int64   `json:"attended"`
	Registered        int64   `json:"registered"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// AverageFeedbackRow is one entry of the all-events feedback report.
// AvgRating is nil for events with no feedback; such events sort last.
type AverageFeedbackRow struct {
	EventID       string   `json:"event_id"`
	Name          string   `json:"name"`
	AvgRating     *float64 `json:"avg_rating"`
	FeedbackCount int64    `json:"feedback_count"`
}

// StudentParticipationRow counts the distinct events a student attended.
type StudentParticipationRow struct {
	StudentID      string `json:"student_id"`
	Name           string `json:"name"`
	EventsAttended int64  `json:"events_attended"`
}
