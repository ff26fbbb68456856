package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/selfcheck/internal/controller"
	"github.com/lshigami/selfcheck/internal/dto"
)

// ListQuestions godoc
// @Summary (Admin) List the questions of a test
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Test ID"
// @Security BearerAuth
// @Success 200 {array} dto.AdminQuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/questions [get]
func (c *AdminTestController) ListQuestions(ctx *gin.Context) {
	testID, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	questions, err := c.questionService.GetQuestionsForTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "Admin ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a test
// @Description Rejected when the test's score bands would no longer cover the new maximum score.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Security BearerAuth
// @Success 201 {object} dto.AdminQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{id}/questions [post]
func (c *AdminTestController) AddQuestion(ctx *gin.Context) {
	testID, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin AddQuestion", err)
		return
	}
	question, err := c.questionService.AddQuestion(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, "Admin AddQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Replace a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Security BearerAuth
// @Success 200 {object} dto.AdminQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *AdminTestController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin UpdateQuestion", err)
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Admin UpdateQuestion", err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Param id path int true "Question ID"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *AdminTestController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Admin DeleteQuestion", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
