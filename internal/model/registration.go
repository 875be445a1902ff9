package model

import "time"

// Registration is a student's claim to a seat at an event. The composite
// unique index makes a second registration for the same pair fail at the
// store, which is the final authority against duplicate races.
type Registration struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID      string    `gorm:"size:256;not null;uniqueIndex:idx_registrations_event_student" json:"event_id"`
	StudentID    string    `gorm:"size:256;not null;uniqueIndex:idx_registrations_event_student" json:"student_id"`
	RegisteredAt time.Time `gorm:"not null;autoCreateTime" json:"registered_at"`
}
