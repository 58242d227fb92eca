package router

import (
	"time"

	"github.com/jpstorm21/graphql-api/internal/config"
	"github.com/jpstorm21/graphql-api/internal/handler"
	"github.com/jpstorm21/graphql-api/internal/hash"
	"github.com/jpstorm21/graphql-api/internal/middleware"
	"github.com/jpstorm21/graphql-api/internal/repository"
	"github.com/jpstorm21/graphql-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	hasher := hash.NewBcryptHasher(cfg.BcryptCost)
	roleSvc := service.NewRoleService(roleRepo)
	userSvc := service.NewUserService(userRepo, roleRepo, hasher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	rolesH := handler.NewRolesHandler(roleSvc)
	usersH := handler.NewUsersHandler(userSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		// Queries
		v1.GET("/roles", rolesH.GetRoles)
		v1.GET("/users", usersH.GetUsers)

		// Mutations
		v1.POST("/roles", rolesH.CreateRole)
		v1.PUT("/roles/:id", rolesH.EditRole)
		v1.DELETE("/roles/:id", rolesH.DeleteRole)
		v1.POST("/users", usersH.CreateUser)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
