package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// Guest carts let shoppers collect items before logging in. They are
// merged into the user cart at login.

// POST /guest/cart?guest_id=...
func AddToGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		qty := input.Quantity
		if qty < 1 {
			qty = 1
		}

		var product models.Product
		if err := db.Preload("Images").First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var cart models.GuestCart
		err := db.Where("guest_id = ?", guestID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			cart = models.GuestCart{GuestID: guestID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest cart"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		var item models.GuestCartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
		if err == gorm.ErrRecordNotFound {
			item = models.GuestCartItem{
				CartID:               cart.CartID,
				ProductID:            product.ID,
				ProductName:          product.Name,
				ProductImage:         product.MainImage(),
				ProductPrice:         product.Price,
				ProductOriginalPrice: product.OriginalPrice,
				ProductStock:         product.Stock,
				Quantity:             qty,
				AddedAt:              time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
				return
			}
			c.JSON(http.StatusCreated, item)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart item"})
			return
		}

		item.Quantity += qty
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// GET /guest/cart?guest_id=...
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.GuestCart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, []models.GuestCartItem{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, cart.Items)
	}
}

// DELETE /guest/cart/:product_id?guest_id=...
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}
		productID := c.Param("product_id")

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.GuestCartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
	}
}

// MergeGuestCartIntoUserCart moves guest items into the user cart,
// adding quantities for products present in both, then deletes the
// guest cart. Returns false when there was nothing to merge.
func MergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	var guestCart models.GuestCart
	err := db.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(guestCart.Items) == 0 {
		return false, nil
	}

	var userCart models.Cart
	err = db.Where("user_id = ?", userID).First(&userCart).Error
	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{UserID: userID}
		if err := db.Create(&userCart).Error; err != nil {
			return false, err
		}
	} else if err != nil {
		return false, err
	}

	mergeErr := db.Transaction(func(tx *gorm.DB) error {
		for _, guestItem := range guestCart.Items {
			var item models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, guestItem.ProductID).First(&item).Error
			if err == gorm.ErrRecordNotFound {
				item = models.CartItem{
					CartID:               userCart.CartID,
					ProductID:            guestItem.ProductID,
					ProductName:          guestItem.ProductName,
					ProductImage:         guestItem.ProductImage,
					ProductPrice:         guestItem.ProductPrice,
					ProductOriginalPrice: guestItem.ProductOriginalPrice,
					ProductStock:         guestItem.ProductStock,
					Quantity:             guestItem.Quantity,
					AddedAt:              time.Now(),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			item.Quantity += guestItem.Quantity
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&guestCart).Error
	})
	if mergeErr != nil {
		return false, mergeErr
	}
	return true, nil
}
