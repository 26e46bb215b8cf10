package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

// guestSessionTTL bounds how long an anonymous shopper can keep a cart
// before logging in.
const guestSessionTTL = 24 * time.Hour

// POST /auth/guest
// Issues an anonymous identity so a shopper can fill a cart before
// logging in. The session row and its token expire together; stale
// rows are swept by PurgeExpiredGuests.
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guest := models.GuestUser{
			ID:        "guest_" + uuid.NewString(),
			ExpiresAt: time.Now().Add(guestSessionTTL),
		}

		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}

		token, err := guestToken(guest)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guest.ID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

// guestToken signs a token whose expiry matches the guest row, so the
// credential cannot outlive the session.
func guestToken(guest models.GuestUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id": guest.ID,
		"role":    "guest",
		"exp":     guest.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// PurgeExpiredGuests deletes guest sessions past their expiry together
// with any carts they left behind. Returns the number of sessions
// removed. Guests who logged in are unaffected: the login merge already
// deleted their guest cart.
func PurgeExpiredGuests(db *gorm.DB, now time.Time) (int64, error) {
	var expired []models.GuestUser
	if err := db.Where("expires_at < ?", now).Find(&expired).Error; err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(expired))
	for _, guest := range expired {
		ids = append(ids, guest.ID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var carts []models.GuestCart
		if err := tx.Where("guest_id IN ?", ids).Find(&carts).Error; err != nil {
			return err
		}
		for _, cart := range carts {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("guest_id IN ?", ids).Delete(&models.GuestCart{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.GuestUser{}).Error
	})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
