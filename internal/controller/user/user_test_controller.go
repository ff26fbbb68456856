package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/internal/controller"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/middleware"
	"github.com/lshigami/selfcheck/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get the active self-assessment tests with their question counts.
// @Tags User - Tests & Results
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "User GetAllTests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get a test with its ordered questions and answer options. Option scores are not included.
// @Tags User - Tests & Results
// @Produce json
// @Param test_ref path string true "Test ID or slug"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_ref} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), ctx.Param("test_ref"))
	if err != nil {
		controller.RespondError(ctx, "User GetTestDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitTestResult godoc
// @Summary (User) Submit answers for a test
// @Description Scores the answers, classifies the total with the test's score bands and stores the result.
// @Description The result belongs to the authenticated user, or is anonymous when no token is sent.
// @Description A token that is sent must be valid: an expired one is rejected with 401, not treated as anonymous.
// @Tags User - Tests & Results
// @Accept json
// @Produce json
// @Param test_ref path string true "Test ID or slug"
// @Param submission body dto.SubmitResultRequest true "Answers"
// @Security BearerAuth
// @Success 201 {object} dto.SubmitResultResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answers"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired bearer token"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Error processing submission"
// @Router /tests/{test_ref}/results [post]
func (c *UserTestController) SubmitTestResult(ctx *gin.Context) {
	var req dto.SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "User SubmitTestResult", err)
		return
	}

	testRef := ctx.Param("test_ref")
	owner := middleware.Owner(ctx)
	log.Info().Str("testRef", testRef).Bool("anonymous", owner.IsAnonymous()).Int("answerCount", len(req.Answers)).Msg("Received request to submit test result")

	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), testRef, owner, req)
	if err != nil {
		controller.RespondError(ctx, "User SubmitTestResult", err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetResult godoc
// @Summary (User) Get a stored result
// @Description Anonymous results are readable with their id. Owned results are readable by the owner, admins and professionals.
// @Tags User - Tests & Results
// @Produce json
// @Param result_id path string true "Result ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} dto.TestResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired bearer token"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{result_id} [get]
func (c *UserTestController) GetResult(ctx *gin.Context) {
	resultID, err := uuid.Parse(ctx.Param("result_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid result_id format"})
		return
	}

	viewer := service.Viewer{Owner: middleware.Owner(ctx), Role: middleware.Role(ctx)}
	result, err := c.testSubmissionService.GetResult(ctx.Request.Context(), resultID, viewer)
	if err != nil {
		controller.RespondError(ctx, "User GetResult", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyResults godoc
// @Summary (User) List my results
// @Description The authenticated user's results, newest first.
// @Tags User - Tests & Results
// @Produce json
// @Param test_id query int false "Only results of this test"
// @Security BearerAuth
// @Success 200 {array} dto.TestResultSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid test_id"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/results [get]
func (c *UserTestController) GetMyResults(ctx *gin.Context) {
	userID, ok := middleware.Owner(ctx).UserID()
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var testID *uint
	if raw := ctx.Query("test_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test_id format in query"})
			return
		}
		id := uint(val)
		testID = &id
	}

	results, err := c.testSubmissionService.GetUserResults(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.RespondError(ctx, "User GetMyResults", err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
