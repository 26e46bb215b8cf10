package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/saurav9895/giftopia-api/controllers/order"
	"github.com/saurav9895/giftopia-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// WebSocket endpoint for live order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	// Shopper order endpoints (JWT-protected)
	userOrders := r.Group("/user/orders")
	userOrders.Use(middleware.ValidateToken)
	{
		userOrders.POST("", orderControllers.PlaceOrderHandler(db))
		userOrders.GET("", orderControllers.GetUserOrdersHandler(db))
		userOrders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	// Back-office order endpoints (API-key-protected)
	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.ValidateAPIKey)
	{
		adminOrders.GET("", orderControllers.GetAllOrdersHandler(db))
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
