package settingsControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// LoadStoreSettings returns the singleton row, creating it with zero
// values on first access.
func LoadStoreSettings(db *gorm.DB) (models.StoreSettings, error) {
	settings := models.StoreSettings{Key: models.SettingsKey}
	err := db.Where("key = ?", models.SettingsKey).FirstOrCreate(&settings).Error
	return settings, err
}

// GET /settings
func GetStoreSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := LoadStoreSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		var promos []models.PromoCode
		if err := db.Order("position ASC").Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"settings": settings, "promo_codes": promos})
	}
}

type UpdateSettingsInput struct {
	DeliveryFee           *float64 `json:"delivery_fee"`
	FreeDeliveryThreshold *float64 `json:"free_delivery_threshold"`
}

// PUT /admin/settings
func UpdateStoreSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateSettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		settings, err := LoadStoreSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		if input.DeliveryFee != nil {
			if *input.DeliveryFee < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_fee must be >= 0"})
				return
			}
			settings.DeliveryFee = *input.DeliveryFee
		}
		if input.FreeDeliveryThreshold != nil {
			if *input.FreeDeliveryThreshold < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "free_delivery_threshold must be >= 0"})
				return
			}
			settings.FreeDeliveryThreshold = *input.FreeDeliveryThreshold
		}

		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

type PromoCodeInput struct {
	Code  string  `json:"code" binding:"required"`
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
}

func parsePromoType(s string) (models.PromoType, bool) {
	switch models.PromoType(strings.ToLower(strings.TrimSpace(s))) {
	case models.PromoPercentage:
		return models.PromoPercentage, true
	case models.PromoFixed:
		return models.PromoFixed, true
	case models.PromoFreeDelivery:
		return models.PromoFreeDelivery, true
	default:
		return "", false
	}
}

// POST /admin/settings/promos
func CreatePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoCodeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promoType, ok := parsePromoType(input.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be percentage, fixed or free_delivery"})
			return
		}
		if promoType == models.PromoPercentage && (input.Value <= 0 || input.Value > 100) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentage value must be in (0,100]"})
			return
		}
		if promoType == models.PromoFixed && input.Value <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fixed value must be > 0"})
			return
		}

		var count int64
		if err := db.Model(&models.PromoCode{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
			return
		}

		promo := models.PromoCode{
			Code:     input.Code,
			Type:     promoType,
			Value:    input.Value,
			Position: int(count),
		}
		if err := db.Create(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
			return
		}

		c.JSON(http.StatusCreated, promo)
	}
}

// DELETE /admin/settings/promos/:id
func DeletePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.PromoCode{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
	}
}

type ValidatePromoInput struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal"`
}

// POST /user/promos/validate
// Dry-run of a promo code against a subtotal, used by the cart page
// before checkout.
func ValidatePromoCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidatePromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var codes []models.PromoCode
		if err := db.Find(&codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
			return
		}

		promo, err := models.FindPromo(codes, input.Code)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
			return
		}

		settings, err := LoadStoreSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		fee := settings.DeliveryFeeFor(input.Subtotal)
		subtotal, fee := promo.Apply(input.Subtotal, fee)

		c.JSON(http.StatusOK, gin.H{
			"promo":        promo,
			"subtotal":     subtotal,
			"delivery_fee": fee,
			"total":        subtotal + fee,
		})
	}
}
