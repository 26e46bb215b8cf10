package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saurav9895/giftopia-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestTokenMatchesSessionExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	guest := models.GuestUser{
		ID:        "guest_abc",
		ExpiresAt: time.Now().Add(guestSessionTTL).Truncate(time.Second),
	}
	signed, err := guestToken(guest)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, "guest_abc", claims["user_id"])
	assert.Equal(t, "guest", claims["role"])
	assert.Equal(t, float64(guest.ExpiresAt.Unix()), claims["exp"])
}

func TestCreateGuestUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupAuthTestDB(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/guest", nil)

	CreateGuestUser(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var guests []models.GuestUser
	require.NoError(t, db.Find(&guests).Error)
	require.Len(t, guests, 1)
	assert.True(t, strings.HasPrefix(guests[0].ID, "guest_"))
	assert.True(t, guests[0].ExpiresAt.After(time.Now()))
}

func TestPurgeExpiredGuests(t *testing.T) {
	db := setupAuthTestDB(t)

	expired := models.GuestUser{ID: "guest_old", ExpiresAt: time.Now().Add(-time.Hour)}
	live := models.GuestUser{ID: "guest_new", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&live).Error)

	oldCart := models.GuestCart{GuestID: expired.ID}
	require.NoError(t, db.Create(&oldCart).Error)
	require.NoError(t, db.Create(&models.GuestCartItem{CartID: oldCart.CartID, ProductID: 1, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.GuestCart{GuestID: live.ID}).Error)

	removed, err := PurgeExpiredGuests(db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Only the live session and its cart survive
	var guests []models.GuestUser
	require.NoError(t, db.Find(&guests).Error)
	require.Len(t, guests, 1)
	assert.Equal(t, live.ID, guests[0].ID)

	var carts int64
	db.Model(&models.GuestCart{}).Where("guest_id = ?", expired.ID).Count(&carts)
	assert.Equal(t, int64(0), carts)

	var items int64
	db.Model(&models.GuestCartItem{}).Count(&items)
	assert.Equal(t, int64(0), items)
}

func TestPurgeExpiredGuestsNothingToDo(t *testing.T) {
	db := setupAuthTestDB(t)

	require.NoError(t, db.Create(&models.GuestUser{ID: "guest_live", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	removed, err := PurgeExpiredGuests(db, time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
