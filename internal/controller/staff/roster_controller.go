package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cbtengine/internal/controller"
	"github.com/lshigami/cbtengine/internal/dto"
	"github.com/lshigami/cbtengine/internal/service"
)

// RosterController is mounted for admins only.
type RosterController struct {
	rosterService service.RosterService
}

func NewRosterController(rosterService service.RosterService) *RosterController {
	return &RosterController{rosterService: rosterService}
}

// Enroll godoc
// @Summary (Admin) Enroll a student in a class
// @Tags Admin - Roster
// @Accept json
// @Security BearerAuth
// @Param enrollment body dto.EnrollRequest true "Student and class"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "INVALID_INPUT"
// @Router /staff/enrollments [post]
func (c *RosterController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	if err := c.rosterService.Enroll(ctx.Request.Context(), req.StudentID, req.ClassName); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SetClearance godoc
// @Summary (Admin) Record a student's exam clearance
// @Tags Admin - Roster
// @Accept json
// @Security BearerAuth
// @Param student_id path string true "Student ID"
// @Param clearance body dto.SetClearanceRequest true "Clearance flag"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "INVALID_INPUT"
// @Router /staff/clearances/{student_id} [put]
func (c *RosterController) SetClearance(ctx *gin.Context) {
	var req dto.SetClearanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	if err := c.rosterService.SetClearance(ctx.Request.Context(), ctx.Param("student_id"), *req.Cleared); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// LinkGuardian godoc
// @Summary (Admin) Link a guardian to a student
// @Tags Admin - Roster
// @Accept json
// @Security BearerAuth
// @Param link body dto.LinkGuardianRequest true "Guardian and student"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "INVALID_INPUT"
// @Router /staff/guardians [post]
func (c *RosterController) LinkGuardian(ctx *gin.Context) {
	var req dto.LinkGuardianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	if err := c.rosterService.LinkGuardian(ctx.Request.Context(), req.GuardianID, req.StudentID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *RosterController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/enrollments", c.Enroll)
	rg.PUT("/clearances/:student_id", c.SetClearance)
	rg.POST("/guardians", c.LinkGuardian)
}
