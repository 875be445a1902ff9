package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-events-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	CreateCollege(ctx context.Context, id, name string) (*model.College, error)
	CreateStudent(ctx context.Context, in NewStudent) (*model.Student, error)
	CreateEvent(ctx context.Context, in NewEvent) (*model.Event, error)
	ListEvents(ctx context.Context, collegeID string) ([]model.Event, error)
	ListStudents(ctx context.Context, collegeID string) ([]model.Student, error)

	Register(ctx context.Context, eventID, studentID string) (*model.Registration, error)
	MarkAttendance(ctx context.Context, eventID, studentID string) (*model.Attendance, error)
	SubmitFeedback(ctx context.Context, eventID, studentID string, rating int, comment string) (*model.Feedback, error)

	EventPopularity(ctx context.Context) ([]EventPopularityRow, error)
	EventReport(ctx context.Context, eventID string) (*EventReportRow, error)
	AttendancePercent(ctx context.Context) ([]AttendancePercentRow, error)
	AverageFeedback(ctx context.Context) ([]AverageFeedbackRow, error)
	StudentParticipation(ctx context.Context, studentID string) (*StudentParticipationRow, error)
	TopActiveStudents(ctx context.Context, limit int) ([]StudentParticipationRow, error)
}

// NewStudent carries the caller-supplied fields for CreateStudent. ID is
// optional; when empty one is generated as "{college_id}::{token}".
type NewStudent struct {
	ID        string
	CollegeID string
	Name      string
	Email     string
}

// NewEvent carries the caller-supplied fields for CreateEvent.
type NewEvent struct {
	CollegeID string
	Name      string
	Type      string
	Date      string
	Capacity  *int
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for seeding and tests.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// freshID builds a generated identifier carrying the college as a prefix.
// The prefix is a convention, not an invariant; uniqueness comes from the token.
func freshID(collegeID string) string {
	return collegeID + "::" + uuid.NewString()
}

func (s *gormStore) CreateCollege(ctx context.Context, id, name string) (*model.College, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if id == "" {
		id = uuid.NewString()
	}

	college := model.College{ID: id, Name: name}
	if err := s.db.WithContext(ctx).Create(&college).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("create college: %w", err)
	}
	return &college, nil
}

func (s *gormStore) CreateStudent(ctx context.Context, in NewStudent) (*model.Student, error) {
	if in.CollegeID == "" {
		return nil, fmt.Errorf("%w: college_id", ErrMissingField)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if in.ID == "" {
		in.ID = freshID(in.CollegeID)
	}

	student := model.Student{
		ID:        in.ID,
		CollegeID: in.CollegeID,
		Name:      in.Name,
		Email:     in.Email,
	}
	if err := s.db.WithContext(ctx).Create(&student).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateID
		}
		if isForeignKeyViolation(err) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &student, nil
}

func (s *gormStore) CreateEvent(ctx context.Context, in NewEvent) (*model.Event, error) {
	if in.CollegeID == "" {
		return nil, fmt.Errorf("%w: college_id", ErrMissingField)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}

	event := model.Event{
		ID:        freshID(in.CollegeID),
		CollegeID: in.CollegeID,
		Name:      in.Name,
		Type:      in.Type,
		Date:      in.Date,
		Capacity:  in.Capacity,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrCollegeNotFound
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

func (s *gormStore) ListEvents(ctx context.Context, collegeID string) ([]model.Event, error) {
	events := make([]model.Event, 0)
	q := s.db.WithContext(ctx).Order("id")
	if collegeID != "" {
		q = q.Where("college_id = ?", collegeID)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *gormStore) ListStudents(ctx context.Context, collegeID string) ([]model.Student, error) {
	students := make([]model.Student, 0)
	q := s.db.WithContext(ctx).Order("id")
	if collegeID != "" {
		q = q.Where("college_id = ?", collegeID)
	}
	if err := q.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Register inserts a registration after checking the event's state. The
// capacity check is a read-then-write inside one transaction; the unique
// (event_id, student_id) index remains the final authority for duplicates.
func (s *gormStore) Register(ctx context.Context, eventID, studentID string) (*model.Registration, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id", ErrMissingField)
	}
	if studentID == "" {
		return nil, fmt.Errorf("%w: student_id", ErrMissingField)
	}

	var reg model.Registration
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("load event: %w", err)
		}
		if event.Cancelled {
			return ErrEventCancelled
		}

		if event.Capacity != nil {
			var count int64
			if err := tx.Model(&model.Registration{}).
				Where("event_id = ?", eventID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("count registrations: %w", err)
			}
			if count >= int64(*event.Capacity) {
				return ErrCapacityReached
			}
		}

		reg = model.Registration{EventID: eventID, StudentID: studentID}
		if err := tx.Create(&reg).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyRegistered
			}
			if isForeignKeyViolation(err) {
				return ErrStudentNotFound
			}
			return fmt.Errorf("create registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// MarkAttendance inserts an attendance row for a registered student. The
// duplicate pre-check runs in the same transaction as the insert.
func (s *gormStore) MarkAttendance(ctx context.Context, eventID, studentID string) (*model.Attendance, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id", ErrMissingField)
	}
	if studentID == "" {
		return nil, fmt.Errorf("%w: student_id", ErrMissingField)
	}

	var att model.Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("load event: %w", err)
		}

		var reg model.Registration
		err := tx.Where("event_id = ? AND student_id = ?", eventID, studentID).First(&reg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotRegistered
		}
		if err != nil {
			return fmt.Errorf("load registration: %w", err)
		}

		var prior model.Attendance
		err = tx.Where("event_id = ? AND student_id = ?", eventID, studentID).First(&prior).Error
		if err == nil {
			return ErrAlreadyAttended
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load attendance: %w", err)
		}

		att = model.Attendance{EventID: eventID, StudentID: studentID}
		if err := tx.Create(&att).Error; err != nil {
			return fmt.Errorf("create attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// SubmitFeedback inserts one feedback row per (event, student) pair.
// Registration or attendance is deliberately not required.
func (s *gormStore) SubmitFeedback(ctx context.Context, eventID, studentID string, rating int, comment string) (*model.Feedback, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id", ErrMissingField)
	}
	if studentID == "" {
		return nil, fmt.Errorf("%w: student_id", ErrMissingField)
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	fb := model.Feedback{
		EventID:   eventID,
		StudentID: studentID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.db.WithContext(ctx).Create(&fb).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFeedbackExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return &fb, nil
}
