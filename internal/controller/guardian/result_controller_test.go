package guardian

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/stretchr/testify/assert"
)

type stubGuardianService struct {
	gotGuardian string
	err         error
}

func (s *stubGuardianService) GetChildResult(ctx context.Context, guardianID, studentID, examID string) (*dto.ExamResultResponse, error) {
	s.gotGuardian = guardianID
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ExamResultResponse{StudentID: studentID, ExamID: examID, Score: 3, TotalPossible: 4}, nil
}

func newTestRouter(svc *stubGuardianService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1/guardian", func(ctx *gin.Context) { ctx.Set("userID", "par-1") })
	NewResultController(svc).RegisterRoutes(group)
	return r
}

func TestGetChildResult(t *testing.T) {
	svc := &stubGuardianService{}
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guardian/students/stu-1/exams/exam-1/result", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "par-1", svc.gotGuardian)
	assert.Contains(t, w.Body.String(), `"student_id":"stu-1"`)
}

func TestGetChildResult_NotLinked(t *testing.T) {
	svc := &stubGuardianService{err: apperr.New(apperr.Forbidden, "not a guardian of this student")}
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guardian/students/stu-9/exams/exam-1/result", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}
