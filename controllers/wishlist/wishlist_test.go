package wishlistControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/saurav9895/giftopia-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductImage{}, &models.WishlistItem{}))
	return db
}

func toggleRequest(t *testing.T, db *gorm.DB, userID, productID string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/user/wishlist/"+productID, nil)
	c.Params = gin.Params{{Key: "product_id", Value: productID}}
	c.Set("user_id", userID)

	ToggleWishlist(db)(c)
	return w
}

func TestToggleWishlistDoubleToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Mug", Price: 10, OriginalPrice: 10}).Error)

	// First toggle likes the product
	w := toggleRequest(t, db, "u1", "1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_wishlist":true`)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(1), count)

	// Second toggle restores the original state
	w = toggleRequest(t, db, "u1", "1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in_wishlist":false`)

	db.Model(&models.WishlistItem{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestToggleWishlistPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Mug", Price: 10, OriginalPrice: 10}).Error)

	toggleRequest(t, db, "u1", "1")
	toggleRequest(t, db, "u2", "1")

	// u2 toggling off leaves u1's entry alone
	w := toggleRequest(t, db, "u2", "1")
	assert.Contains(t, w.Body.String(), `"in_wishlist":false`)

	var count int64
	db.Model(&models.WishlistItem{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleWishlistUnknownProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	w := toggleRequest(t, db, "u1", "99")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
