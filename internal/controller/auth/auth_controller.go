package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/selfcheck/internal/controller"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Auth Login", err)
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Auth Login", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
