package model

// Student represents a student enrolled at a college.
type Student struct {
	ID        string `gorm:"primaryKey;size:256" json:"id"`
	CollegeID string `gorm:"index;size:256;not null" json:"college_id"`
	Name      string `gorm:"size:256;not null" json:"name"`
	Email     string `gorm:"size:256" json:"email,omitempty"`

	// Associations
	Registrations []Registration `gorm:"foreignKey:StudentID" json:"-"`
	Attendance    []Attendance   `gorm:"foreignKey:StudentID" json:"-"`
	Feedback      []Feedback     `gorm:"foreignKey:StudentID" json:"-"`
}
