package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lokavera/catalog-admin/internal/config"
	"github.com/lokavera/catalog-admin/internal/handler"
	"github.com/lokavera/catalog-admin/internal/middleware"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/internal/service"
	"github.com/lokavera/catalog-admin/pkg/cache"
	"github.com/lokavera/catalog-admin/pkg/token"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

// catalogRoutes mounts the shared route shape for one catalog entity:
// reads for any authenticated user, writes behind the admin guard.
func catalogRoutes[T model.CatalogEntity](protected *gin.RouterGroup, auth *middleware.AuthMiddleware, path string, h *handler.CatalogHandler[T]) {
	group := protected.Group("/" + path)
	group.GET("", h.List)
	group.GET("/:id", h.Show)

	admin := group.Group("")
	admin.Use(auth.RequireRoles(model.RoleAdmin))
	{
		admin.GET("/:id/deleted", h.ShowDeleted)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id/status", h.ToggleStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	accessIssuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	listCache := cache.New(redisClient, cfg.ListCacheTTL)

	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, accessIssuer)
	authHandler := handler.NewAuthHandler(authSvc)

	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	categoryRepo := repository.NewCatalog(db, func() *model.Category { return &model.Category{} }, true).
		WithShowPreload("SubCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("position asc")
		})
	categoryHandler := handler.NewCatalogHandler(service.NewCatalogService("category", categoryRepo, listCache))

	subCategoryRepo := repository.NewCatalog(db, func() *model.SubCategory { return &model.SubCategory{} }, true)
	subCategoryHandler := handler.NewCatalogHandler(service.NewCatalogService("sub-category", subCategoryRepo, listCache))

	productRepo := repository.NewCatalog(db, func() *model.Product { return &model.Product{} }, true).
		WithShowPreload("Category", nil).
		WithShowPreload("SubCategory", nil).
		WithShowPreload("Brand", nil).
		WithShowPreload("Supplier", nil)
	productHandler := handler.NewCatalogHandler(service.NewCatalogService("product", productRepo, listCache))

	attributeRepo := repository.NewCatalog(db, func() *model.Attribute { return &model.Attribute{} }, false).
		WithShowPreload("Variants", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("position asc")
		})
	attributeHandler := handler.NewCatalogHandler(service.NewCatalogService("attribute", attributeRepo, listCache))

	variantRepo := repository.NewCatalog(db, func() *model.Variant { return &model.Variant{} }, false)
	variantHandler := handler.NewCatalogHandler(service.NewCatalogService("variant", variantRepo, listCache))

	brandRepo := repository.NewCatalog(db, func() *model.Brand { return &model.Brand{} }, true)
	brandHandler := handler.NewCatalogHandler(service.NewCatalogService("brand", brandRepo, listCache))

	supplierRepo := repository.NewCatalog(db, func() *model.Supplier { return &model.Supplier{} }, false)
	supplierHandler := handler.NewCatalogHandler(service.NewCatalogService("supplier", supplierRepo, listCache))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, accessIssuer)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		catalogRoutes(protected, authMiddleware, "categories", categoryHandler)
		catalogRoutes(protected, authMiddleware, "sub-categories", subCategoryHandler)
		catalogRoutes(protected, authMiddleware, "products", productHandler)
		catalogRoutes(protected, authMiddleware, "attributes", attributeHandler)
		catalogRoutes(protected, authMiddleware, "variants", variantHandler)
		catalogRoutes(protected, authMiddleware, "brands", brandHandler)
		catalogRoutes(protected, authMiddleware, "suppliers", supplierHandler)

		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.Me)
			users.PUT("/:id", userHandler.Update)

			admin := users.Group("")
			admin.Use(authMiddleware.RequireRoles(model.RoleAdmin))
			{
				admin.GET("", userHandler.FindAll)
				admin.GET("/:id", userHandler.FindOne)
				admin.DELETE("/:id", userHandler.Delete)
			}
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
