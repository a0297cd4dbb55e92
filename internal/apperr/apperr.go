// Package apperr holds the closed set of named failures the exam engine reports.
// Services return *Error; controllers translate Reason to a transport status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Reason string

const (
	// eligibility
	NotClearedForExams Reason = "NOT_CLEARED_FOR_EXAMS"
	SEBRequired        Reason = "SEB_REQUIRED"

	// temporal
	ExamNotYetOpen    Reason = "EXAM_NOT_YET_OPEN"
	ExamAlreadyClosed Reason = "EXAM_ALREADY_CLOSED"
	TimeExpired       Reason = "TIME_EXPIRED"

	// conflict
	AlreadySubmitted Reason = "ALREADY_SUBMITTED"

	// not found
	ExamNotFound         Reason = "EXAM_NOT_FOUND"
	QuestionNotFound     Reason = "QUESTION_NOT_FOUND"
	ResultNotFound       Reason = "RESULT_NOT_FOUND"
	NoResultsForCriteria Reason = "NO_RESULTS_FOR_CRITERIA"

	// validation
	NoValidQuestionsProvided Reason = "NO_VALID_QUESTIONS_PROVIDED"
	StudentsNotInClass       Reason = "STUDENTS_NOT_IN_CLASS"
	InvalidInput             Reason = "INVALID_INPUT"
	InvalidStatusTransition  Reason = "INVALID_STATUS_TRANSITION"

	// configuration
	ExamHasNoMarks Reason = "EXAM_HAS_NO_MARKS"

	// caller identity
	Unauthenticated Reason = "UNAUTHENTICATED"
	Forbidden       Reason = "FORBIDDEN"

	// generic
	IngestionFailed Reason = "INGESTION_FAILED"
	Internal        Reason = "INTERNAL"
)

type Error struct {
	Reason  Reason
	Detail  string
	Invalid int // number of offending entries, for batch validation failures
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Detail, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return string(e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func New(reason Reason, detail string) *Error {
	return &Error{Reason: reason, Detail: detail}
}

func Wrap(reason Reason, detail string, err error) *Error {
	return &Error{Reason: reason, Detail: detail, Err: err}
}

// InvalidEntries reports a batch rejected because count entries failed validation.
func InvalidEntries(reason Reason, count int, detail string) *Error {
	return &Error{Reason: reason, Detail: detail, Invalid: count}
}

// ReasonOf returns the named reason carried by err, or Internal for any other error.
func ReasonOf(err error) Reason {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return Internal
}

// Status maps a reason to its HTTP status.
func Status(reason Reason) int {
	switch reason {
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotClearedForExams, SEBRequired, ExamNotYetOpen, ExamAlreadyClosed, Forbidden:
		return http.StatusForbidden
	case TimeExpired:
		return http.StatusGone
	case AlreadySubmitted, InvalidStatusTransition:
		return http.StatusConflict
	case ExamNotFound, QuestionNotFound, ResultNotFound, NoResultsForCriteria:
		return http.StatusNotFound
	case NoValidQuestionsProvided, StudentsNotInClass:
		return http.StatusUnprocessableEntity
	case InvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
