package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDeliveryOrderRouter(secured *echo.Group, deliveryOrderCtrl *controllers.DeliveryOrderController, authMW *middleware.AuthMiddleware) {
	group := secured.Group("/delivery-orders", authMW.AdminOnly)
	group.GET("", deliveryOrderCtrl.GetDeliveryOrders)
	group.GET("/:id", deliveryOrderCtrl.FindDeliveryOrder)
	group.POST("", deliveryOrderCtrl.CreateDeliveryOrder)
	group.PUT("/:id", deliveryOrderCtrl.UpdateDeliveryOrder)
	group.DELETE("/:id", deliveryOrderCtrl.DeleteDeliveryOrder)
}
