package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/saurav9895/giftopia-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Cart{},
		&models.CartItem{},
		&models.GuestCart{},
		&models.GuestCartItem{},
	))
	return db
}

func loginRequest(t *testing.T, db *gorm.DB, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	LoginHandler(db)(c)
	return w
}

func TestLoginRenamesExistingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupAuthTestDB(t)

	w := loginRequest(t, db, `{"email":"asha@example.com","name":"Asha"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Logging in again with a new name renames the existing profile
	w = loginRequest(t, db, `{"email":"asha@example.com","name":"Asha Rao"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Asha Rao"`)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "asha@example.com").Error)
	assert.Equal(t, "Asha Rao", user.Name)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginMergesGuestCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupAuthTestDB(t)

	cart := models.GuestCart{GuestID: "guest_1"}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.GuestCartItem{
		CartID:       cart.CartID,
		ProductID:    1,
		ProductName:  "Mug",
		ProductPrice: 10,
		Quantity:     2,
	}).Error)

	w := loginRequest(t, db, `{"email":"bea@example.com","name":"Bea","guest_id":"guest_1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"merge_status":"merged-success"`)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// The guest cart is gone after the merge
	var guestCarts int64
	db.Model(&models.GuestCart{}).Count(&guestCarts)
	assert.Equal(t, int64(0), guestCarts)
}
