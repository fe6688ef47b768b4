package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runPurchaseOrderRouter(secured *echo.Group, purchaseOrderCtrl *controllers.PurchaseOrderController, authMW *middleware.AuthMiddleware) {
	group := secured.Group("/purchase-orders", authMW.AdminOnly)
	group.GET("", purchaseOrderCtrl.GetPurchaseOrders)
	group.GET("/:id", purchaseOrderCtrl.FindPurchaseOrder)
	group.POST("", purchaseOrderCtrl.CreatePurchaseOrder)
	group.PUT("/:id", purchaseOrderCtrl.UpdatePurchaseOrder)
	group.DELETE("/:id", purchaseOrderCtrl.DeletePurchaseOrder)
}
