package app

import (
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/repo"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. db may be nil when
// STORE=memory; tasks then live in process and caching is off.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	metricsMW, metricsHandler := httpMetrics()
	r.Use(requestID(), metricsMW)

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metricsHandler)
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	var (
		userRepo  repo.UserRepo
		taskRepo  repo.TaskRepo
		listRepo  repo.ListRepo
		taskCache *cache.TaskCache
	)
	if db != nil {
		userRepo = repo.NewPGUserRepo(db)
		taskRepo = repo.NewPGTaskRepo(db)
		listRepo = repo.NewPGListRepo(db)
		taskCache = cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	} else {
		memTasks := repo.NewMemTaskRepo()
		userRepo = repo.NewMemUserRepo()
		taskRepo = memTasks
		listRepo = repo.NewMemListRepo(memTasks)
	}

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userSvc := service.NewUserService(userRepo)
	protected := api.Group("", auth.RequireSession(sessionStore))
	registerAuthRoutes(api, protected, handlers.NewAuthHandler(sessionStore, userSvc))

	taskSvc := service.NewTaskService(taskRepo, listRepo, taskCache)
	listSvc := service.NewListService(listRepo, taskCache)
	registerListRoutes(protected, handlers.NewListHandler(listSvc))
	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc))
	registerAnalyticsRoutes(protected, handlers.NewAnalyticsHandler(taskSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Taskboard API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"metrics": "/metrics",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env, "store": cfg.Store.Backend})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api, protected *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	protected.GET("/auth/me", h.Me)
}

func registerListRoutes(api *gin.RouterGroup, h *handlers.ListHandler) {
	api.POST("/lists", h.Create)
	api.GET("/lists", h.List)
	api.GET("/lists/:id", h.GetByID)
	api.PATCH("/lists/:id", h.Update)
	api.DELETE("/lists/:id", h.Delete)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/search", h.Search)
	api.GET("/tasks/overdue", h.Overdue)
	api.GET("/tasks/due-soon", h.DueSoon)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)
	api.POST("/tasks/:id/reopen", h.Reopen)
}

func registerAnalyticsRoutes(api *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	api.GET("/analytics/stats", h.Stats)
	api.GET("/analytics/deadlines", h.Deadlines)
	api.GET("/analytics/productivity", h.Productivity)
}
