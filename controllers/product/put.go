package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// UpdateProduct edits an existing product. Only supplied form fields
// change; new images replace the old set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Images").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("short_description"); v != "" {
			product.ShortDescription = v
		}
		if v := c.PostForm("long_description"); v != "" {
			product.LongDescription = v
		}
		if v := c.PostForm("category_name"); v != "" {
			product.CategoryName = v
		}
		if v := c.PostForm("delivery_estimate"); v != "" {
			product.DeliveryEstimate = v
		}
		if v := c.PostForm("original_price"); v != "" {
			op, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			product.OriginalPrice = op
		}
		if v := c.PostForm("discounted_price"); v != "" {
			dp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discounted_price"})
				return
			}
			product.DiscountedPrice = dp
		}
		if v := c.PostForm("stock"); v != "" {
			s, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = s
		}
		product.Normalize()

		// Replace images only when new ones were uploaded
		var newImages []models.ProductImage
		if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
			for i, file := range form.File["images"] {
				url, saveErr := saveProductImage(c, file)
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", saveErr)})
					return
				}
				newImages = append(newImages, models.ProductImage{ProductID: product.ID, URL: url, Position: i})
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(newImages) > 0 {
				for _, old := range product.Images {
					_ = os.Remove(filepath.Join(productUploadDir, filepath.Base(old.URL)))
				}
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				product.Images = newImages
			}
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
