package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// POST /user/wishlist/:product_id
// Toggles membership: a second toggle for the same product restores the
// original state.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var entry models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&entry).Error
		if err == gorm.ErrRecordNotFound {
			entry = models.WishlistItem{UserID: userID, ProductID: product.ID, AddedAt: time.Now()}
			if err := db.Create(&entry).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"in_wishlist": true})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		if err := db.Delete(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": false})
	}
}

// GET /user/wishlist
// Returns the liked products resolved against the live catalog; entries
// whose product has since been deleted are skipped.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var entries []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		products := make([]models.Product, 0, len(entries))
		for _, entry := range entries {
			var product models.Product
			if err := db.Preload("Images").First(&product, entry.ProductID).Error; err != nil {
				continue
			}
			products = append(products, product)
		}

		c.JSON(http.StatusOK, products)
	}
}
