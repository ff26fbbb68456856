package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/selfcheck/internal/controller"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/service"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
	questionService  service.QuestionService
}

func NewAdminTestController(adminTestService service.AdminTestService, questionService service.QuestionService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService, questionService: questionService}
}

// ListTests godoc
// @Summary (Admin) List all tests
// @Description Includes inactive tests.
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/tests [get]
func (c *AdminTestController) ListTests(ctx *gin.Context) {
	tests, err := c.adminTestService.ListTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Admin ListTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTest godoc
// @Summary (Admin) Get a test with scores and bands
// @Tags Admin - Tests
// @Produce json
// @Param id path int true "Test ID"
// @Security BearerAuth
// @Success 200 {object} dto.AdminTestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	test, err := c.adminTestService.GetTest(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Admin GetTest", err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Creates a test with its questions and score bands. The bands must cover every score from 0 to the maximum.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test with questions and score bands"
// @Security BearerAuth
// @Success 201 {object} dto.AdminTestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateTest", err)
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTest", err)
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// UpdateTest godoc
// @Summary (Admin) Update a test
// @Description Replaces the test metadata. When score_bands is sent the whole band table is replaced.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Test metadata"
// @Security BearerAuth
// @Success 200 {object} dto.AdminTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin UpdateTest", err)
		return
	}

	testResp, err := c.adminTestService.UpdateTest(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Admin UpdateTest", err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// SetActive godoc
// @Summary (Admin) Publish or hide a test
// @Tags Admin - Tests
// @Accept json
// @Param id path int true "Test ID"
// @Param body body dto.SetActiveDTO true "New state"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/active [patch]
func (c *AdminTestController) SetActive(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SetActiveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin SetActive", err)
		return
	}
	if err := c.adminTestService.SetActive(ctx.Request.Context(), id, *req.IsActive); err != nil {
		controller.RespondError(ctx, "Admin SetActive", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Soft delete. Stored results keep their test reference.
// @Tags Admin - Tests
// @Param id path int true "Test ID"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Admin DeleteTest", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
