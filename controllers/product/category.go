package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

const categoryUploadDir = "uploads/categories"
const categoryPublicPath = "/uploads/categories"

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		// Names are unique ignoring case
		var existing models.Category
		if err := db.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name already exists"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			url, saveErr := saveCategoryImage(c, file)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			imageURL = url
		}

		category := models.Category{Name: name, Image: imageURL}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryProducts returns a category and the products filed under
// its name (matched case-insensitively).
func GetCategoryProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var products []models.Product
		if err := db.Preload("Images").
			Where("LOWER(category_name) = LOWER(?)", category.Name).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"category": category, "products": products})
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			var clash models.Category
			if err := db.Where("LOWER(name) = LOWER(?) AND id <> ?", v, category.ID).First(&clash).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category name already exists"})
				return
			}
			category.Name = v
		}

		if file, err := c.FormFile("image"); err == nil {
			if category.Image != "" {
				_ = os.Remove(filepath.Join(categoryUploadDir, filepath.Base(category.Image)))
			}
			url, saveErr := saveCategoryImage(c, file)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			category.Image = url
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DuplicateCategory copies every field except the identifier. The copy
// gets a "Copy of" name when the original name would collide, and its
// own image file so deleting the original cannot orphan it.
func DuplicateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		name := category.Name
		for {
			var clash models.Category
			if err := db.Where("LOWER(name) = LOWER(?)", name).First(&clash).Error; err != nil {
				break
			}
			name = "Copy of " + name
		}

		copied := models.Category{Name: name}
		if category.Image != "" {
			if url, err := duplicateCategoryImage(category.Image); err == nil {
				copied.Image = url
			}
		}
		if err := db.Create(&copied).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to duplicate category"})
			return
		}

		c.JSON(http.StatusCreated, copied)
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if category.Image != "" {
			_ = os.Remove(filepath.Join(categoryUploadDir, filepath.Base(category.Image)))
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

// duplicateCategoryImage copies the referenced image file under a new
// name. Each category row owns its file: delete and update remove the
// file they point at, so duplicates must not share one.
func duplicateCategoryImage(imageURL string) (string, error) {
	src := filepath.Join(categoryUploadDir, filepath.Base(imageURL))
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(src)
	base := strings.TrimSuffix(filepath.Base(src), ext)
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	if err := os.WriteFile(filepath.Join(categoryUploadDir, filename), data, 0644); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", categoryPublicPath, filename), nil
}

func saveCategoryImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(categoryUploadDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(categoryUploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", categoryPublicPath, filename), nil
}
