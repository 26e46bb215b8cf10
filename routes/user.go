package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/saurav9895/giftopia-api/controllers/address"
	cartControllers "github.com/saurav9895/giftopia-api/controllers/cart"
	recommendControllers "github.com/saurav9895/giftopia-api/controllers/recommend"
	reviewControllers "github.com/saurav9895/giftopia-api/controllers/review"
	settingsControllers "github.com/saurav9895/giftopia-api/controllers/settings"
	userControllers "github.com/saurav9895/giftopia-api/controllers/user"
	wishlistControllers "github.com/saurav9895/giftopia-api/controllers/wishlist"
	"github.com/saurav9895/giftopia-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// User profile
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItemQuantity(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
		}

		// Wishlist
		userGroup.GET("/wishlist", wishlistControllers.GetWishlist(db))
		userGroup.POST("/wishlist/:product_id", wishlistControllers.ToggleWishlist(db))

		// Address book
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.GetAddresses(db))
			addressGroup.POST("", addressControllers.CreateAddress(db))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}

		// Reviews
		userGroup.POST("/products/:id/reviews", reviewControllers.AddReview(db))

		// Promo dry-run for the cart page
		userGroup.POST("/promos/validate", settingsControllers.ValidatePromoCode(db))

		// Gift recommendations
		userGroup.POST("/recommendations", recommendControllers.GetRecommendationsHandler())
	}
}
