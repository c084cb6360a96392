package handler

import (
	"valvetrace/internal/adapter/http/middleware"
	redisStore "valvetrace/internal/adapter/storage/redis"
	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RegistryService
	TransferSvc    ports.TransferService
	ReturnSvc      ports.ReturnService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminOnly := middleware.RequireClass(domain.ActorClassAdmin)

	assetHandler := NewAssetHandler(deps.RegistrySvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)
	returnHandler := NewReturnHandler(deps.ReturnSvc)

	assets := v1.Group("/assets", jwtAuth)
	{
		// Only manufacturers mint; the caller becomes the initial owner.
		assets.POST("", rl("tokenize"), middleware.RequireClass(domain.ActorClassManufacturer), assetHandler.Tokenize)
		assets.GET("/:serial", rl("reads"), assetHandler.GetAsset)
		assets.GET("/:serial/history", rl("reads"), assetHandler.History)
		assets.GET("/:serial/returns", rl("reads"), returnHandler.ListReturns)
		assets.POST("/:serial/transfers", rl("transfers"), transferHandler.AttemptTransfer)
		assets.POST("/:serial/burn", rl("admin"), adminOnly, returnHandler.Burn)
		assets.POST("/:serial/restore", rl("admin"), adminOnly, returnHandler.Restore)
	}

	returns := v1.Group("/returns", jwtAuth)
	{
		returns.POST("", rl("returns"), returnHandler.CreateReturn)
		returns.POST("/:id/approve", rl("admin"), adminOnly, returnHandler.ApproveReturn)
	}

	return r
}
