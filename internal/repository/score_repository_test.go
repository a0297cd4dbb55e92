package repository

import (
	"context"
	"testing"

	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreRow(studentID, subject string, ca, exam float64) model.ScoreRow {
	return model.ScoreRow{
		StudentID:   studentID,
		Subject:     subject,
		Term:        "first",
		Session:     "2024/2025",
		CAScore:     ca,
		ExamScore:   exam,
		TotalScore:  ca + exam,
		Grade:       "C6",
		Remark:      "Pass",
		ClassAtTime: "JSS1A",
		TeacherID:   "teacher-1",
	}
}

func TestScoreRepository_UpsertOverwritesByCompositeKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBatch(ctx, []model.ScoreRow{scoreRow("stu-1", "maths", 20, 30)}))

	updated := scoreRow("stu-1", "maths", 35, 58)
	updated.Grade = "A1"
	updated.TeacherID = "teacher-2"
	require.NoError(t, repo.UpsertBatch(ctx, []model.ScoreRow{updated}))

	rows, err := repo.FindByClassTermSession(ctx, "JSS1A", "first", "2024/2025")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 35.0, rows[0].CAScore)
	assert.Equal(t, 93.0, rows[0].TotalScore)
	assert.Equal(t, "A1", rows[0].Grade)
	assert.Equal(t, "teacher-2", rows[0].TeacherID)
}

func TestScoreRepository_BatchRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepository(db)
	ctx := context.Background()

	// sqlite ignores varchar lengths, so a trigger makes the third insert fail.
	bad := scoreRow("stu-3", "maths", 10, 10)
	require.NoError(t, db.Exec("CREATE TRIGGER reject_stu3 BEFORE INSERT ON score_rows WHEN NEW.student_id = 'stu-3' BEGIN SELECT RAISE(ABORT, 'rejected'); END").Error)

	err := repo.UpsertBatch(ctx, []model.ScoreRow{
		scoreRow("stu-1", "maths", 10, 10),
		scoreRow("stu-2", "maths", 10, 10),
		bad,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.ScoreRow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScoreRepository_UpdateRankingTouchesAllSubjects(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.UpsertBatch(ctx, []model.ScoreRow{
		scoreRow("stu-1", "maths", 30, 50),
		scoreRow("stu-1", "english", 30, 40),
		scoreRow("stu-2", "maths", 10, 20),
	}))
	require.NoError(t, repo.UpdateRanking(ctx, RankingUpdate{
		StudentID:       "stu-1",
		Term:            "first",
		Session:         "2024/2025",
		PositionInClass: "1st",
		StudentAverage:  75,
		ClassAverage:    52.5,
	}))

	rows, err := repo.FindByClassTermSession(ctx, "JSS1A", "first", "2024/2025")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		if row.StudentID == "stu-1" {
			assert.Equal(t, "1st", row.PositionInClass)
			assert.Equal(t, 52.5, row.ClassAverage)
		} else {
			assert.Empty(t, row.PositionInClass)
		}
	}
}
