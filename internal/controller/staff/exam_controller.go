package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/model"
	"github.com/lshigami/cbtengine/internal/service"
)

type ExamController struct {
	paperService   service.ExamPaperService
	sessionService service.ExamSessionService
}

func NewExamController(paperService service.ExamPaperService, sessionService service.ExamSessionService) *ExamController {
	return &ExamController{paperService: paperService, sessionService: sessionService}
}

// CreateExam godoc
// @Summary (Staff) Create an exam paper
// @Description Links the listed bank questions that exist and freezes their marks and answer keys on the exam.
// @Tags Staff - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.CreateExamRequest true "Exam definition"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "NO_VALID_QUESTIONS_PROVIDED"
// @Router /staff/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	exam, err := c.paperService.CreateExamPaper(ctx.Request.Context(), req, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// ListExams godoc
// @Summary (Staff) List published exams for a class
// @Tags Staff - Exams
// @Produce json
// @Security BearerAuth
// @Param class query string true "Class name"
// @Success 200 {array} dto.ExamSummary
// @Router /staff/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	className := ctx.Query("class")
	if className == "" {
		controller.RespondError(ctx, errMissingQuery("class"))
		return
	}
	exams, err := c.paperService.ListForClass(ctx.Request.Context(), className)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary (Staff) Get an exam with its answer keys
// @Tags Staff - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse "EXAM_NOT_FOUND"
// @Router /staff/exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	exam, err := c.paperService.GetExam(ctx.Request.Context(), ctx.Param("exam_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// UpdateStatus godoc
// @Summary (Staff) Move an exam to draft, published or closed
// @Tags Staff - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Param status body dto.UpdateExamStatusRequest true "New status"
// @Success 200 {object} dto.ExamResponse
// @Failure 409 {object} dto.ErrorResponse "INVALID_STATUS_TRANSITION"
// @Router /staff/exams/{exam_id}/status [patch]
func (c *ExamController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateExamStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	exam, err := c.paperService.UpdateStatus(ctx.Request.Context(), ctx.Param("exam_id"), model.ExamStatus(req.Status))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// ListResults godoc
// @Summary (Staff) List all results for an exam
// @Tags Staff - Exams
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Success 200 {array} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse "EXAM_NOT_FOUND"
// @Router /staff/exams/{exam_id}/results [get]
func (c *ExamController) ListResults(ctx *gin.Context) {
	results, err := c.sessionService.ListResults(ctx.Request.Context(), ctx.Param("exam_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func (c *ExamController) RegisterRoutes(rg *gin.RouterGroup) {
	exams := rg.Group("/exams")
	exams.POST("", c.CreateExam)
	exams.GET("", c.ListExams)
	exams.GET("/:exam_id", c.GetExam)
	exams.PATCH("/:exam_id/status", c.UpdateStatus)
	exams.GET("/:exam_id/results", c.ListResults)
}
