package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-events-backend/internal/model"
)

// reportFixture builds a small dataset with known aggregates:
//
//	e1: 4 registered (a,b,c,d), 2 attended (a,b), feedback a=5, b=4
//	e2: 3 registered (a,b,c), 1 attended (a), no feedback
//	e3: cancelled, 1 registered (a)
//	e4: nothing at all
type reportFixture struct {
	a, b, c, d     *model.Student
	e1, e2, e3, e4 *model.Event
}

func setupReportFixture(t *testing.T, s Store) reportFixture {
	t.Helper()
	ctx := context.Background()
	mustCollege(t, s, "c1")

	f := reportFixture{
		a:  mustStudent(t, s, "c1", "c1::a"),
		b:  mustStudent(t, s, "c1", "c1::b"),
		c:  mustStudent(t, s, "c1", "c1::c"),
		d:  mustStudent(t, s, "c1", "c1::d"),
		e1: mustEvent(t, s, "c1", nil),
		e2: mustEvent(t, s, "c1", nil),
		e3: mustEvent(t, s, "c1", nil),
		e4: mustEvent(t, s, "c1", nil),
	}

	for _, st := range []*model.Student{f.a, f.b, f.c, f.d} {
		_, err := s.Register(ctx, f.e1.ID, st.ID)
		require.NoError(t, err)
	}
	for _, st := range []*model.Student{f.a, f.b, f.c} {
		_, err := s.Register(ctx, f.e2.ID, st.ID)
		require.NoError(t, err)
	}
	_, err := s.Register(ctx, f.e3.ID, f.a.ID)
	require.NoError(t, err)
	require.NoError(t, s.DB().Model(&model.Event{}).Where("id = ?", f.e3.ID).Update("cancelled", true).Error)

	for _, st := range []*model.Student{f.a, f.b} {
		_, err := s.MarkAttendance(ctx, f.e1.ID, st.ID)
		require.NoError(t, err)
	}
	_, err = s.MarkAttendance(ctx, f.e2.ID, f.a.ID)
	require.NoError(t, err)

	_, err = s.SubmitFeedback(ctx, f.e1.ID, f.a.ID, 5, "great")
	require.NoError(t, err)
	_, err = s.SubmitFeedback(ctx, f.e1.ID, f.b.ID, 4, "")
	require.NoError(t, err)

	return f
}

func TestEventPopularity(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.EventPopularity(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3, "cancelled events are excluded")

	assert.Equal(t, f.e1.ID, rows[0].EventID)
	assert.Equal(t, int64(4), rows[0].Registrations)
	assert.Equal(t, f.e2.ID, rows[1].EventID)
	assert.Equal(t, int64(3), rows[1].Registrations)
	assert.Equal(t, f.e4.ID, rows[2].EventID)
	assert.Equal(t, int64(0), rows[2].Registrations)
}

func TestEventReport(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)
	ctx := context.Background()

	row, err := s.EventReport(ctx, f.e1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), row.Registered)
	assert.Equal(t, int64(2), row.Attended)
	assert.Equal(t, 50.0, row.AttendancePercent)
	require.NotNil(t, row.AvgRating)
	assert.Equal(t, 4.5, *row.AvgRating)
	assert.Equal(t, int64(2), row.FeedbackCount, "feedback count must not be inflated by registrations")

	row, err = s.EventReport(ctx, f.e2.ID)
	require.NoError(t, err)
	assert.Equal(t, 33.33, row.AttendancePercent, "100*1/3 rounds to 33.33")
	assert.Nil(t, row.AvgRating, "no feedback means no average")
	assert.Equal(t, int64(0), row.FeedbackCount)

	row, err = s.EventReport(ctx, f.e4.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, row.AttendancePercent, "percent is defined as 0 when nobody registered")

	_, err = s.EventReport(ctx, "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAttendancePercentReport(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.AttendancePercent(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, f.e1.ID, rows[0].EventID)
	assert.Equal(t, 50.0, rows[0].AttendancePercent)
	assert.Equal(t, f.e2.ID, rows[1].EventID)
	assert.Equal(t, 33.33, rows[1].AttendancePercent)
	assert.Equal(t, f.e4.ID, rows[2].EventID)
	assert.Equal(t, 0.0, rows[2].AttendancePercent)
}

func TestAverageFeedbackReport(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)

	rows, err := s.AverageFeedback(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, f.e1.ID, rows[0].EventID)
	require.NotNil(t, rows[0].AvgRating)
	assert.Equal(t, 4.5, *rows[0].AvgRating)
	assert.Equal(t, int64(2), rows[0].FeedbackCount)

	// Events without feedback sort after every rated event, in id order.
	assert.Nil(t, rows[1].AvgRating)
	assert.Nil(t, rows[2].AvgRating)
	assert.ElementsMatch(t,
		[]string{f.e2.ID, f.e4.ID},
		[]string{rows[1].EventID, rows[2].EventID})
}

func TestStudentParticipation(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)
	ctx := context.Background()

	row, err := s.StudentParticipation(ctx, f.a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), row.EventsAttended)

	row, err = s.StudentParticipation(ctx, f.d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), row.EventsAttended, "a known student with no attendance reports zero")

	_, err = s.StudentParticipation(ctx, "missing")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestTopActiveStudents(t *testing.T) {
	s := newTestStore(t)
	f := setupReportFixture(t, s)
	ctx := context.Background()

	rows, err := s.TopActiveStudents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, f.a.ID, rows[0].StudentID)
	assert.Equal(t, int64(2), rows[0].EventsAttended)
	assert.Equal(t, f.b.ID, rows[1].StudentID)
	assert.Equal(t, int64(1), rows[1].EventsAttended)

	// Zero defaults the limit to 3; students with no attendance stay excluded.
	rows, err = s.TopActiveStudents(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 0.0, percent(0, 0))
	assert.Equal(t, 50.0, percent(1, 2))
	assert.Equal(t, 33.33, percent(1, 3))
	assert.Equal(t, 66.67, percent(2, 3))
	assert.Equal(t, 12.5, percent(1, 8))
	assert.Equal(t, 100.0, percent(7, 7))
}
