package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/configs"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/controllers"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/middlewares"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.TableHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	tableRepo := repository.NewTableRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	couponSvc := services.NewCouponService(couponRepo)
	discountSvc := services.NewDiscountService(couponRepo, loyaltyRepo)
	loyaltySvc := services.NewLoyaltyService(loyaltyRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	tableSvc := services.NewTableService(db, tableRepo, catalogRepo, settingsRepo, hub)
	checkoutSvc := services.NewCheckoutService(db, tableRepo, catalogRepo, settingsRepo, discountSvc, hub)
	backupSvc := services.NewBackupService(catalogRepo, couponRepo, loyaltyRepo, settingsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	frontCtrl := controllers.NewStorefrontController(catalogSvc, discountSvc, checkoutSvc, settingsSvc, tableSvc)
	tableCtrl := controllers.NewTableController(tableSvc, settingsSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	loyaltyCtrl := controllers.NewLoyaltyController(loyaltySvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	backupCtrl := controllers.NewBackupController(backupSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public storefront (?view=menu) and customer status panel (?view=tv)
	r.GET("/menu", frontCtrl.Menu)
	r.GET("/store-config", settingsCtrl.Get)
	r.GET("/loyalty/config", loyaltyCtrl.Config)
	r.POST("/coupons/validate", frontCtrl.ValidateCoupon)
	r.POST("/checkout", frontCtrl.PlaceOrder)
	r.GET("/status-panel", frontCtrl.StatusPanel)

	// Waiter board (?view=waiter) — open like the tablet view, with the
	// sensitive actions gated by store settings inside the handlers.
	waiter := r.Group("/waiter")
	{
		waiter.GET("/tables", tableCtrl.List)
		waiter.POST("/tables/:id/items", tableCtrl.AddItem)
		waiter.DELETE("/tables/:id/items/:index", tableCtrl.WaiterRemoveItem)
		waiter.DELETE("/tables/:id", tableCtrl.WaiterFree)
	}

	// Admin back office
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/tables", tableCtrl.List)
		admin.POST("/orders", tableCtrl.Open)
		admin.POST("/tables/:id/items", tableCtrl.AddItem)
		admin.DELETE("/tables/:id/items/:index", tableCtrl.RemoveItem)
		admin.PATCH("/tables/:id/status", tableCtrl.SetStatus)
		admin.DELETE("/tables/:id", tableCtrl.Free)

		admin.GET("/products", catalogCtrl.Products)
		admin.POST("/products", catalogCtrl.SaveProduct)
		admin.DELETE("/products/:id", catalogCtrl.DeleteProduct)
		admin.POST("/categories", catalogCtrl.CreateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)
		admin.PUT("/specials/:day", catalogCtrl.UpsertSpecial)
		admin.DELETE("/specials/:day", catalogCtrl.DeleteSpecial)

		admin.GET("/coupons", couponCtrl.List)
		admin.POST("/coupons", couponCtrl.Create)
		admin.PATCH("/coupons/:id/active", couponCtrl.SetActive)
		admin.DELETE("/coupons/:id", couponCtrl.Delete)

		admin.PUT("/loyalty/config", loyaltyCtrl.SaveConfig)
		admin.GET("/loyalty/users", loyaltyCtrl.Users)

		admin.PUT("/store-config", settingsCtrl.Save)

		admin.GET("/backup", backupCtrl.Export)
		admin.POST("/backup", backupCtrl.Import)
	}

	// Realtime table events: public stream for storefront/TV, token stream
	// for the back-office boards.
	r.GET("/ws/tables", hub.HandleWebSocket)
	r.GET("/ws/board", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
