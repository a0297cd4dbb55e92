package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonOf(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", New(AlreadySubmitted, "exam already submitted"))
	assert.Equal(t, AlreadySubmitted, ReasonOf(wrapped))

	assert.Equal(t, Internal, ReasonOf(errors.New("connection refused")))
	assert.Equal(t, Internal, ReasonOf(nil))
}

func TestStatus_DistinctPerFailureClass(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, Status(NotClearedForExams))
	assert.Equal(t, http.StatusForbidden, Status(ExamAlreadyClosed))
	assert.Equal(t, http.StatusGone, Status(TimeExpired))
	assert.Equal(t, http.StatusConflict, Status(AlreadySubmitted))
	assert.Equal(t, http.StatusNotFound, Status(ExamNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, Status(StudentsNotInClass))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthenticated))
	assert.Equal(t, http.StatusInternalServerError, Status(ExamHasNoMarks))
	assert.Equal(t, http.StatusInternalServerError, Status(IngestionFailed))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := Wrap(IngestionFailed, "score batch was not saved", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INGESTION_FAILED: score batch was not saved: deadlock detected", err.Error())

	batch := InvalidEntries(StudentsNotInClass, 3, "")
	assert.Equal(t, 3, batch.Invalid)
	assert.Equal(t, "STUDENTS_NOT_IN_CLASS", batch.Error())
}
