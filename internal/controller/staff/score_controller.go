package staff

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/apperr"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/service"
)

type ScoreController struct {
	ingestionService  service.ScoreIngestionService
	broadsheetService service.BroadsheetService
}

func NewScoreController(ingestionService service.ScoreIngestionService, broadsheetService service.BroadsheetService) *ScoreController {
	return &ScoreController{ingestionService: ingestionService, broadsheetService: broadsheetService}
}

// BulkIngest godoc
// @Summary (Staff) Upload CA and exam scores for a class
// @Description Every student in the batch must be enrolled in the class and no (student, subject, term, session) may repeat, otherwise nothing is written.
// @Tags Staff - Gradebook
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body dto.BulkScoreRequest true "Score batch"
// @Success 200 {object} dto.BulkScoreResponse
// @Failure 400 {object} dto.ErrorResponse "INVALID_INPUT, with details.invalid_count for repeated keys"
// @Failure 422 {object} dto.ErrorResponse "STUDENTS_NOT_IN_CLASS, with details.invalid_count"
// @Failure 500 {object} dto.ErrorResponse "INGESTION_FAILED"
// @Router /staff/scores/bulk [post]
func (c *ScoreController) BulkIngest(ctx *gin.Context) {
	var req dto.BulkScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.ingestionService.BulkIngestScores(ctx.Request.Context(), middleware.UserID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListScores godoc
// @Summary (Staff) List gradebook rows for a class and term
// @Tags Staff - Gradebook
// @Produce json
// @Security BearerAuth
// @Param class query string true "Class name"
// @Param term query string true "Term"
// @Param session query string true "Session, e.g. 2024/2025"
// @Success 200 {array} dto.ScoreRowResponse
// @Router /staff/scores [get]
func (c *ScoreController) ListScores(ctx *gin.Context) {
	className, term, session := ctx.Query("class"), ctx.Query("term"), ctx.Query("session")
	for _, q := range [][2]string{{"class", className}, {"term", term}, {"session", session}} {
		if q[1] == "" {
			controller.RespondError(ctx, errMissingQuery(q[0]))
			return
		}
	}
	rows, err := c.ingestionService.ListScores(ctx.Request.Context(), className, term, session)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// CompileBroadsheet godoc
// @Summary (Staff) Rank a class for a term
// @Description Averages each student's subject totals, assigns positions and writes them back to the gradebook.
// @Tags Staff - Gradebook
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param criteria body dto.CompileBroadsheetRequest true "Class, term and session"
// @Success 200 {object} dto.BroadsheetResponse
// @Failure 404 {object} dto.ErrorResponse "NO_RESULTS_FOR_CRITERIA"
// @Router /staff/broadsheets [post]
func (c *ScoreController) CompileBroadsheet(ctx *gin.Context) {
	var req dto.CompileBroadsheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	sheet, err := c.broadsheetService.CompileBroadsheet(ctx.Request.Context(), req.ClassName, req.Term, req.Session)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sheet)
}

func (c *ScoreController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scores/bulk", c.BulkIngest)
	rg.GET("/scores", c.ListScores)
	rg.POST("/broadsheets", c.CompileBroadsheet)
}

func errMissingQuery(name string) error {
	return apperr.New(apperr.InvalidInput, fmt.Sprintf("query parameter %q is required", name))
}
