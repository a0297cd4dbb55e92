package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/cbtengine/database"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a migrated in-memory database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedQuestion(t *testing.T, repo QuestionRepository, subject string, marks int, key string) *model.QuestionBankItem {
	t.Helper()
	q := &model.QuestionBankItem{
		Stem:          "stem for " + subject,
		Type:          model.QuestionTypeMultipleChoice,
		Options:       []model.Option{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}},
		CorrectAnswer: key,
		Marks:         marks,
		Subject:       subject,
		Difficulty:    model.DifficultyEasy,
	}
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func seedExam(t *testing.T, db *gorm.DB, questions ...*model.QuestionBankItem) *model.ExamDefinition {
	t.Helper()
	exam := &model.ExamDefinition{
		Title:          "Mid-Term",
		Subject:        "maths",
		TargetClass:    "JSS1A",
		Term:           "first",
		Session:        "2024/2025",
		Duration:       60,
		StartTime:      time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		PassPercentage: 50,
		AllowBacktrack: true,
		Status:         model.ExamStatusPublished,
	}
	for i, q := range questions {
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			QuestionID:    q.ID,
			Position:      i + 1,
			Marks:         q.EffectiveMarks(),
			CorrectAnswer: q.CorrectAnswer,
		})
		exam.TotalMarks += q.EffectiveMarks()
	}
	require.NoError(t, NewExamRepository(db).Create(context.Background(), exam))
	return exam
}
