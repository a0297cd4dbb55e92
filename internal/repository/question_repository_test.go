package repository

import (
	"context"
	"testing"

	"github.com/lshigami/cbtengine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_FindByIDsDropsUnknown(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()
	q1 := seedQuestion(t, repo, "maths", 2, "A")
	q2 := seedQuestion(t, repo, "english", 4, "B")

	found, err := repo.FindByIDs(ctx, []string{q1.ID, "ghost", q2.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	maths, err := repo.FindAll(ctx, "maths", "")
	require.NoError(t, err)
	require.Len(t, maths, 1)
	assert.Equal(t, q1.ID, maths[0].ID)

	hard, err := repo.FindAll(ctx, "", model.DifficultyHard)
	require.NoError(t, err)
	assert.Empty(t, hard)

	_, err = repo.FindByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
