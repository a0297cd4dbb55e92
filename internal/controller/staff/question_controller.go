package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/middleware"
	"github.com/lshigami/cbtengine/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Staff) Add a question to the bank
// @Tags Staff - Question Bank
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /staff/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.questionService.CreateQuestion(ctx.Request.Context(), req, middleware.UserID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Str("questionID", resp.ID).Str("subject", resp.Subject).Msg("Question created")
	ctx.JSON(http.StatusCreated, resp)
}

// ListQuestions godoc
// @Summary (Staff) List bank questions
// @Tags Staff - Question Bank
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Subject filter"
// @Param difficulty query string false "easy, medium or hard"
// @Success 200 {array} dto.QuestionResponse
// @Router /staff/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions(ctx.Request.Context(), ctx.Query("subject"), ctx.Query("difficulty"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Staff) Get a bank question
// @Tags Staff - Question Bank
// @Produce json
// @Security BearerAuth
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /staff/questions/{question_id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), ctx.Param("question_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

func (c *QuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.POST("", c.CreateQuestion)
	questions.GET("", c.ListQuestions)
	questions.GET("/:question_id", c.GetQuestion)
}
