package model

// College is the tenant root: students and events belong to exactly one college.
type College struct {
	ID   string `gorm:"primaryKey;size:256" json:"id"`
	Name string `gorm:"size:256;not null" json:"name"`

	// Associations
	Students []Student `gorm:"foreignKey:CollegeID" json:"-"`
	Events   []Event   `gorm:"foreignKey:CollegeID" json:"-"`
}
