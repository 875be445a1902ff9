package model

import "time"

// Feedback is a post-event rating with an optional comment. One row per
// (event, student) pair; the rating bounds are enforced by the schema as
// well as the store layer.
type Feedback struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID     string    `gorm:"size:256;not null;uniqueIndex:idx_feedback_event_student" json:"event_id"`
	StudentID   string    `gorm:"size:256;not null;uniqueIndex:idx_feedback_event_student" json:"student_id"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `gorm:"not null;autoCreateTime" json:"submitted_at"`
}

// TableName keeps the singular table name of the persisted schema.
func (Feedback) TableName() string { return "feedback" }
