package model

// Event represents a campus event. Capacity is optional; when set it bounds
// the number of registrations. Date is an ISO date string, as supplied.
type Event struct {
	ID        string `gorm:"primaryKey;size:256" json:"id"`
	CollegeID string `gorm:"index;size:256;not null" json:"college_id"`
	Name      string `gorm:"size:256;not null" json:"name"`
	Type      string `gorm:"size:64" json:"type,omitempty"`
	Date      string `gorm:"size:32" json:"date,omitempty"`
	Capacity  *int   `json:"capacity,omitempty"`
	Cancelled bool   `gorm:"not null;default:false" json:"cancelled"`

	// Associations
	Registrations []Registration `gorm:"foreignKey:EventID" json:"-"`
	Attendance    []Attendance   `gorm:"foreignKey:EventID" json:"-"`
	Feedback      []Feedback     `gorm:"foreignKey:EventID" json:"-"`
}
