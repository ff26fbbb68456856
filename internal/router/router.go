package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/selfcheck/config"
	adminctrl "github.com/lshigami/selfcheck/internal/controller/admin"
	authctrl "github.com/lshigami/selfcheck/internal/controller/auth"
	userctrl "github.com/lshigami/selfcheck/internal/controller/user"
	"github.com/lshigami/selfcheck/internal/auth"
	"github.com/lshigami/selfcheck/internal/middleware"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// containsWildcard guards the cors config: credentials cannot be combined with "*".
func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func RegisterRoutes(
	router *gin.Engine,
	tokens *auth.TokenManager,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	authCtrl *authctrl.AuthController,
) {
	// Login is reachable with a stale token still attached.
	router.POST("/api/v1/auth/login", authCtrl.Login)

	api := router.Group("/api/v1", middleware.OptionalAuth(tokens))

	api.GET("/tests", userTestCtrl.GetAllTests)
	api.GET("/tests/:test_ref", userTestCtrl.GetTestDetails)
	api.POST("/tests/:test_ref/results", userTestCtrl.SubmitTestResult)
	api.GET("/results/:result_id", userTestCtrl.GetResult)
	api.GET("/me/results", middleware.RequireAuth(), userTestCtrl.GetMyResults)

	admin := api.Group("/admin", middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/tests", adminTestCtrl.ListTests)
		admin.POST("/tests", adminTestCtrl.CreateTest)
		admin.GET("/tests/:id", adminTestCtrl.GetTest)
		admin.PUT("/tests/:id", adminTestCtrl.UpdateTest)
		admin.PATCH("/tests/:id/active", adminTestCtrl.SetActive)
		admin.DELETE("/tests/:id", adminTestCtrl.DeleteTest)
		admin.GET("/tests/:id/questions", adminTestCtrl.ListQuestions)
		admin.POST("/tests/:id/questions", adminTestCtrl.AddQuestion)
		admin.PUT("/questions/:id", adminTestCtrl.UpdateQuestion)
		admin.DELETE("/questions/:id", adminTestCtrl.DeleteQuestion)
	}
}
