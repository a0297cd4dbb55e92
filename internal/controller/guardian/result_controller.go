package guardian

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/service"
)

type ResultController struct {
	guardianService service.GuardianService
}

func NewResultController(guardianService service.GuardianService) *ResultController {
	return &ResultController{guardianService: guardianService}
}

// GetChildResult godoc
// @Summary (Guardian) Get a linked student's exam result
// @Tags Guardian - Results
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Param exam_id path string true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 403 {object} dto.ErrorResponse "FORBIDDEN"
// @Failure 404 {object} dto.ErrorResponse "RESULT_NOT_FOUND"
// @Router /guardian/students/{student_id}/exams/{exam_id}/result [get]
func (c *ResultController) GetChildResult(ctx *gin.Context) {
	result, err := c.guardianService.GetChildResult(
		ctx.Request.Context(),
		middleware.UserID(ctx),
		ctx.Param("student_id"),
		ctx.Param("exam_id"),
	)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ResultController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/students/:student_id/exams/:exam_id/result", c.GetChildResult)
}
