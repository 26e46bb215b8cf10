package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	cartControllers "github.com/saurav9895/giftopia-api/controllers/cart"
	"github.com/saurav9895/giftopia-api/models"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	GuestID string `json:"guest_id"`
}

// POST /auth/login
// Upserts the user profile, merges any guest cart into the user cart
// and issues a JWT. Checkout is mocked, so there is no password step;
// identity is the email.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		// Fetch or create the user
		var user models.User
		err := db.Preload("Cart.Items").Where("email = ?", req.Email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:    uuid.NewString(),
				Email: req.Email,
				Name:  req.Name,
				Role:  "customer",
				Cart:  models.Cart{},
			}
			user.Cart.UserID = user.ID
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err == nil {
			if err := db.Model(&user).Update("name", req.Name).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
			user.Name = req.Name
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// Merge guest cart into user cart
		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			merged, err := cartControllers.MergeGuestCartIntoUserCart(db, req.GuestID, user.ID)
			if err != nil {
				mergeStatus = "merge-failed"
			} else if merged {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		token, err := issueToken(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"user":         user,
			"merge_status": mergeStatus,
		})
	}
}

func issueToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
