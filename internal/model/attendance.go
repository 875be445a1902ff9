package model

import "time"

// Attendance confirms a registered student actually showed up. There is no
// unique constraint on the pair; duplicates are rejected by a pre-check
// inside the same transaction as the insert.
type Attendance struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID     string    `gorm:"size:256;not null;index" json:"event_id"`
	StudentID   string    `gorm:"size:256;not null;index" json:"student_id"`
	CheckedInAt time.Time `gorm:"not null;autoCreateTime" json:"checked_in_at"`
}

// TableName keeps the singular table name of the persisted schema.
func (Attendance) TableName() string { return "attendance" }
