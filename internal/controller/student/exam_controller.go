package student

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/service"
)

type ExamController struct {
	sessionService service.ExamSessionService
	paperService   service.ExamPaperService
	now            func() time.Time
}

func NewExamController(sessionService service.ExamSessionService, paperService service.ExamPaperService) *ExamController {
	return &ExamController{sessionService: sessionService, paperService: paperService, now: time.Now}
}

// ListExams godoc
// @Summary (Student) List published exams for my class
// @Description The class comes from the caller's enrollment, never from the request.
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamSummary
// @Failure 401 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.paperService.ListForStudent(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// StartExam godoc
// @Summary (Student) Start an exam sitting
// @Description Checks clearance, the exam window, previous submission and the locked browser, in that order, then returns the question paper without answer keys.
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} dto.ExamStartResponse
// @Failure 403 {object} dto.ErrorResponse "NOT_CLEARED_FOR_EXAMS, EXAM_NOT_YET_OPEN, EXAM_ALREADY_CLOSED or SEB_REQUIRED"
// @Failure 404 {object} dto.ErrorResponse "EXAM_NOT_FOUND"
// @Failure 409 {object} dto.ErrorResponse "ALREADY_SUBMITTED"
// @Router /exams/{exam_id}/start [post]
func (c *ExamController) StartExam(ctx *gin.Context) {
	payload, err := c.sessionService.StartExam(
		ctx.Request.Context(),
		middleware.UserID(ctx),
		ctx.Param("exam_id"),
		ctx.Request.UserAgent(),
		c.now(),
	)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// SubmitExam godoc
// @Summary (Student) Submit answers for grading
// @Description Grades the sitting and stores the result. Accepted until two minutes after the exam closes; a second submission is rejected.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Param answers body dto.SubmitExamRequest true "Selected options"
// @Success 201 {object} dto.SubmitExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "EXAM_NOT_FOUND"
// @Failure 409 {object} dto.ErrorResponse "ALREADY_SUBMITTED"
// @Failure 410 {object} dto.ErrorResponse "TIME_EXPIRED"
// @Failure 500 {object} dto.ErrorResponse "EXAM_HAS_NO_MARKS"
// @Router /exams/{exam_id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.sessionService.SubmitExam(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("exam_id"), req.Answers, c.now())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetResult godoc
// @Summary (Student) Get my result for an exam
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse "RESULT_NOT_FOUND"
// @Router /exams/{exam_id}/result [get]
func (c *ExamController) GetResult(ctx *gin.Context) {
	result, err := c.sessionService.GetResult(ctx.Request.Context(), middleware.UserID(ctx), ctx.Param("exam_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ExamController) RegisterRoutes(rg *gin.RouterGroup) {
	exams := rg.Group("/exams")
	exams.GET("", c.ListExams)
	exams.POST("/:exam_id/start", c.StartExam)
	exams.POST("/:exam_id/submit", c.SubmitExam)
	exams.GET("/:exam_id/result", c.GetResult)
}
