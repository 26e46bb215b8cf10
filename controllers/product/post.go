package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

const productUploadDir = "uploads/products"
const productPublicPath = "/uploads/products"

// CreateProduct creates a new product with one or more images.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		originalPriceStr := c.PostForm("original_price")
		if name == "" || originalPriceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and original_price are required"})
			return
		}

		// Optional fields
		shortDescription := c.PostForm("short_description")
		longDescription := c.PostForm("long_description")
		discountedPriceStr := c.PostForm("discounted_price")
		stockStr := c.PostForm("stock")
		categoryName := c.PostForm("category_name")
		deliveryEstimate := c.PostForm("delivery_estimate")

		originalPrice, err := strconv.ParseFloat(originalPriceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
			return
		}

		var discountedPrice float64
		if discountedPriceStr != "" {
			if dp, parseErr := strconv.ParseFloat(discountedPriceStr, 64); parseErr == nil {
				discountedPrice = dp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discounted_price"})
				return
			}
		}

		var stock int
		if stockStr != "" {
			if s, parseErr := strconv.Atoi(stockStr); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Image uploads (at least one required)
		form, err := c.MultipartForm()
		if err != nil || len(form.File["images"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}

		var images []models.ProductImage
		for i, file := range form.File["images"] {
			url, saveErr := saveProductImage(c, file)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", saveErr)})
				return
			}
			images = append(images, models.ProductImage{URL: url, Position: i})
		}

		newProduct := models.Product{
			Name:             name,
			ShortDescription: shortDescription,
			LongDescription:  longDescription,
			OriginalPrice:    originalPrice,
			DiscountedPrice:  discountedPrice,
			Stock:            stock,
			Images:           images,
			CategoryName:     categoryName,
			DeliveryEstimate: deliveryEstimate,
		}
		newProduct.Normalize()

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}

// saveProductImage writes an uploaded file under the product upload
// directory and returns its public URL.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(productUploadDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(productUploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}
