package v1

import (
	"net/http"

	"ai-match-connect/config"
	"ai-match-connect/internal/delivery/http/middleware"
	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	RecruiterUC   domain.RecruiterUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	MatchUC       domain.MatchUsecase
	UserRepo      domain.UserRepository
	Tokens        *auth.TokenService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.UserRepo))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewRecruiterHandler(protected, deps.RecruiterUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewAdminHandler(protected, deps.AdminUC)
		NewMatchHandler(protected, deps.MatchUC)
	}

	return r
}
