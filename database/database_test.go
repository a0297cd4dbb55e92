package database

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/cbtengine/config"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_SQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{Database: config.Database{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "cbt.db"),
	}}

	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, m := range []any{&model.ExamDefinition{}, &model.ExamAttemptResult{}, &model.ScoreRow{}, &model.StudentClearance{}, &model.GuardianLink{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&model.ExamAttemptResult{}, "idx_exam_results_student_exam"))
	assert.True(t, db.Migrator().HasIndex(&model.ScoreRow{}, "idx_score_rows_key"))
	assert.True(t, db.Migrator().HasIndex(&model.GuardianLink{}, "idx_guardian_links_pair"))
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(&config.Config{Database: config.Database{Driver: "oracle"}})
	assert.Error(t, err)
}
