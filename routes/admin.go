package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/saurav9895/giftopia-api/controllers/cart"
	productcontroller "github.com/saurav9895/giftopia-api/controllers/product"
	settingsControllers "github.com/saurav9895/giftopia-api/controllers/settings"
	userControllers "github.com/saurav9895/giftopia-api/controllers/user"
	"github.com/saurav9895/giftopia-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// User management
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// Product management
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// Category management
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("/:id/duplicate", productcontroller.DuplicateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// Store settings & promo codes
		settingsAdmin := adminGroup.Group("/settings")
		{
			settingsAdmin.PUT("", settingsControllers.UpdateStoreSettings(db))
			settingsAdmin.POST("/promos", settingsControllers.CreatePromoCode(db))
			settingsAdmin.DELETE("/promos/:id", settingsControllers.DeletePromoCode(db))
		}

		// Homepage curation
		homepageAdmin := adminGroup.Group("/homepage")
		{
			homepageAdmin.POST("/products", settingsControllers.AddFeaturedProduct(db))
			homepageAdmin.DELETE("/products/:product_id", settingsControllers.RemoveFeaturedProduct(db))
			homepageAdmin.PUT("/products/:product_id/move", settingsControllers.MoveFeaturedProduct(db))
			homepageAdmin.POST("/categories", settingsControllers.AddFeaturedCategory(db))
			homepageAdmin.DELETE("/categories/:category_id", settingsControllers.RemoveFeaturedCategory(db))
		}

		// Inspect a user's cart
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}
}
