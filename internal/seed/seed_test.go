package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campus-events-backend/internal/db"
	"campus-events-backend/internal/model"
	"campus-events-backend/internal/store"
)

func TestRunSeedsAndIsIdempotent(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "campus.db") + "?_foreign_keys=on"
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))
	defer func() {
		sqlDB, err := testDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}()

	s := store.NewGormStore(testDB)
	ctx := context.Background()
	require.NoError(t, Run(ctx, s))

	students, err := s.ListStudents(ctx, collegeID)
	require.NoError(t, err)
	assert.Len(t, students, 10)

	events, err := s.ListEvents(ctx, collegeID)
	require.NoError(t, err)
	assert.Len(t, events, 5)

	var regs, atts, fbs int64
	require.NoError(t, testDB.Model(&model.Registration{}).Count(&regs).Error)
	require.NoError(t, testDB.Model(&model.Attendance{}).Count(&atts).Error)
	require.NoError(t, testDB.Model(&model.Feedback{}).Count(&fbs).Error)
	assert.Positive(t, regs)
	assert.Positive(t, atts)
	assert.Positive(t, fbs)

	// The reports have material to work with.
	rows, err := s.EventPopularity(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	top, err := s.TopActiveStudents(ctx, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, top)

	// A second run conflict-skips the fixed-id college and students and
	// adds a fresh batch of generated-id events.
	require.NoError(t, Run(ctx, s))
	students, err = s.ListStudents(ctx, collegeID)
	require.NoError(t, err)
	assert.Len(t, students, 10)
	events, err = s.ListEvents(ctx, collegeID)
	require.NoError(t, err)
	assert.Len(t, events, 10)
}
