package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/devnow-platform/onboarding-backend/internal/activity"
	adminhttp "github.com/devnow-platform/onboarding-backend/internal/admin/http"
	adminmw "github.com/devnow-platform/onboarding-backend/internal/admin/middleware"
	adminrepo "github.com/devnow-platform/onboarding-backend/internal/admin/repository"
	adminservice "github.com/devnow-platform/onboarding-backend/internal/admin/service"
	httpapi "github.com/devnow-platform/onboarding-backend/internal/api/http"
	"github.com/devnow-platform/onboarding-backend/internal/assistant"
	"github.com/devnow-platform/onboarding-backend/internal/auth"
	chathttp "github.com/devnow-platform/onboarding-backend/internal/chat/http"
	chatrepo "github.com/devnow-platform/onboarding-backend/internal/chat/repository"
	chatservice "github.com/devnow-platform/onboarding-backend/internal/chat/service"
	projhttp "github.com/devnow-platform/onboarding-backend/internal/projects/http"
	projrepo "github.com/devnow-platform/onboarding-backend/internal/projects/repository"
	projservice "github.com/devnow-platform/onboarding-backend/internal/projects/service"
	"github.com/devnow-platform/onboarding-backend/internal/uploads"
	"github.com/devnow-platform/onboarding-backend/internal/users"
	wizhttp "github.com/devnow-platform/onboarding-backend/internal/wizard/http"
	wizrepo "github.com/devnow-platform/onboarding-backend/internal/wizard/repository"
	wizservice "github.com/devnow-platform/onboarding-backend/internal/wizard/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	DB           *pgxpool.Pool
	SQLDB        *sql.DB
	RDB          *redis.Client
	AuthClient   *fbauth.Client
	Engine       assistant.Engine
	Uploads      *uploads.Store
}

// BuildRouter wires repositories, services and handlers into the Gin engine.
// Returns the engine and the admin service so the scheduler can reuse it.
func BuildRouter(dep RouterDeps) (*gin.Engine, *adminservice.AdminService) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders,
		"Authorization", "X-User-Id", "X-User-Email", "X-User-Name", "X-User-Company", "X-User-Phone")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.RDB)
	healthHandler.RegisterRoutes(r)

	recorder := activity.NewRecorder(dep.RDB)

	userRepo := users.NewRepo(dep.DB)
	projectRepo := projrepo.NewProjectRepository(dep.DB)
	stepRepo := wizrepo.NewStepRepository(dep.DB)
	outputRepo := wizrepo.NewOutputRepository(dep.DB)
	messageRepo := chatrepo.NewMessageRepository(dep.DB)
	agentRepo := chatrepo.NewAgentRepository(dep.DB)

	projectService := projservice.NewProjectService(projectRepo, stepRepo, recorder)
	flowService := wizservice.NewFlowService(stepRepo, recorder)
	prdService := wizservice.NewPRDService(stepRepo, outputRepo, recorder)
	chatService := chatservice.NewChatService(messageRepo, agentRepo, dep.Engine)

	adminReadRepo := adminrepo.NewReadRepository(dep.SQLDB)
	adminService := adminservice.NewAdminService(adminReadRepo, agentRepo, recorder, dep.RDB)

	api := r.Group("/api/v1")
	api.Use(auth.WithUser(dep.AuthClient, userRepo))

	projhttp.New(projectService).Register(api.Group("/projects"))
	wizhttp.New(flowService, prdService).Register(api.Group("/wizard"))
	chathttp.New(chatService).Register(api.Group("/chat"), api.Group("/agents"))

	if dep.Uploads != nil {
		fileRepo := uploads.NewFileRepository(dep.DB)
		uploads.NewHandler(dep.Uploads, fileRepo).Register(api)
	}

	admin := api.Group("/admin")
	admin.Use(adminmw.RequireRole(users.RoleAdmin, users.RoleSuperAdmin))
	adminhttp.New(adminService).Register(admin)

	return r, adminService
}
