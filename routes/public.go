package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/saurav9895/giftopia-api/controllers/cart"
	productcontroller "github.com/saurav9895/giftopia-api/controllers/product"
	reviewControllers "github.com/saurav9895/giftopia-api/controllers/review"
	settingsControllers "github.com/saurav9895/giftopia-api/controllers/settings"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the endpoints shoppers can hit before
// logging in: browsing, the homepage, reviews and guest carts.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(db))

	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:id", productcontroller.GetCategoryProducts(db))

	r.GET("/homepage", settingsControllers.GetHomepage(db))
	r.GET("/settings", settingsControllers.GetStoreSettings(db))

	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db))
		guestCart.POST("", cartControllers.AddToGuestCart(db))
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db))
	}
}
