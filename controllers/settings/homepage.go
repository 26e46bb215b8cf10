package settingsControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// Homepage curation: admin-ordered featured product and category lists.
// Stale ids (deleted records) are filtered out at render time instead
// of erroring.

// GET /homepage
func GetHomepage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var featuredProducts []models.FeaturedProduct
		if err := db.Order("position ASC").Find(&featuredProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}

		products := make([]models.Product, 0, len(featuredProducts))
		for _, entry := range featuredProducts {
			var product models.Product
			if err := db.Preload("Images").First(&product, entry.ProductID).Error; err != nil {
				continue // deleted product, skip
			}
			products = append(products, product)
		}

		var featuredCategories []models.FeaturedCategory
		if err := db.Order("position ASC").Find(&featuredCategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured categories"})
			return
		}

		categories := make([]models.Category, 0, len(featuredCategories))
		for _, entry := range featuredCategories {
			var category models.Category
			if err := db.First(&category, entry.CategoryID).Error; err != nil {
				continue
			}
			categories = append(categories, category)
		}

		c.JSON(http.StatusOK, gin.H{
			"featured_products":   products,
			"featured_categories": categories,
		})
	}
}

type FeatureInput struct {
	ID uint `json:"id" binding:"required"`
}

// POST /admin/homepage/products
func AddFeaturedProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FeatureInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var count int64
		if err := db.Model(&models.FeaturedProduct{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured list"})
			return
		}
		if count >= models.MaxFeaturedProducts {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Featured product list is full"})
			return
		}

		entry := models.FeaturedProduct{ProductID: input.ID, Position: int(count)}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to feature product"})
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /admin/homepage/products/:product_id
func RemoveFeaturedProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")

		result := db.Where("product_id = ?", productID).Delete(&models.FeaturedProduct{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured list"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not featured"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from featured list"})
	}
}

// PUT /admin/homepage/products/:product_id/move?direction=up|down
// Swaps the entry with its neighbour, the classic reorder control.
func MoveFeaturedProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		direction := c.Query("direction")
		if direction != "up" && direction != "down" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be up or down"})
			return
		}

		var entries []models.FeaturedProduct
		if err := db.Order("position ASC").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured list"})
			return
		}

		idx := -1
		for i, entry := range entries {
			if entry.ProductID == uint(productID) {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not featured"})
			return
		}

		swap := idx - 1
		if direction == "down" {
			swap = idx + 1
		}
		if swap < 0 || swap >= len(entries) {
			// Already at the edge, nothing to do
			c.JSON(http.StatusOK, gin.H{"message": "No change"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			a, b := entries[idx], entries[swap]
			if err := tx.Model(&models.FeaturedProduct{}).Where("id = ?", a.ID).Update("position", b.Position).Error; err != nil {
				return err
			}
			return tx.Model(&models.FeaturedProduct{}).Where("id = ?", b.ID).Update("position", a.Position).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder featured list"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Featured list reordered"})
	}
}

// POST /admin/homepage/categories
func AddFeaturedCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FeatureInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var count int64
		if err := db.Model(&models.FeaturedCategory{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured list"})
			return
		}
		if count >= models.MaxFeaturedCategories {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Featured category list is full"})
			return
		}

		entry := models.FeaturedCategory{CategoryID: input.ID, Position: int(count)}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to feature category"})
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /admin/homepage/categories/:category_id
func RemoveFeaturedCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("category_id")

		result := db.Where("category_id = ?", categoryID).Delete(&models.FeaturedCategory{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update featured list"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category is not featured"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category removed from featured list"})
	}
}
