package router

import (
	"time"

	"shipledger/internal/config"
	"shipledger/internal/handler"
	"shipledger/internal/middleware"
	"shipledger/internal/repository"
	"shipledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	farmerRepo := repository.NewFarmerRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo, farmerRepo)
	shipmentSvc := service.NewShipmentService(shipmentRepo, purchaseRepo, productRepo, farmerRepo, rdb)
	ledgerSvc := service.NewLedgerService(purchaseRepo, returnRepo, transferRepo, productRepo, farmerRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	shipmentsH := handler.NewShipmentsHandler(shipmentSvc)
	stockH := handler.NewStockHandler(catalogSvc, ledgerSvc, rdb)
	receiptsH := handler.NewReceiptsHandler(shipmentRepo, purchaseRepo, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/products", catalogH.CreateProduct)
		v1.GET("/products", catalogH.ListProducts)

		v1.POST("/farmers", catalogH.CreateFarmer)
		v1.GET("/farmers", catalogH.ListFarmers)

		v1.POST("/shipments", shipmentsH.Create)
		v1.GET("/shipments", shipmentsH.List)
		v1.GET("/shipments/:id", shipmentsH.Detail)
		v1.GET("/shipments/:id/receipt", receiptsH.Get)

		v1.GET("/stock", stockH.GetStock)
		v1.POST("/sales", stockH.DirectSale)
		v1.POST("/returns", stockH.Return)
		v1.POST("/transfers", stockH.Transfer)
	}

	return r
}
