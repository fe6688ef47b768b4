package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

// La gestion des fournisseurs est réservée à l'admin, la consultation
// reste ouverte à tout utilisateur connecté.
func runSupplierRouter(secured *echo.Group, supplierCtrl *controllers.SupplierController, authMW *middleware.AuthMiddleware) {
	secured.GET("/suppliers", supplierCtrl.GetSuppliers)
	secured.GET("/suppliers/:id", supplierCtrl.FindSupplier)
	secured.POST("/suppliers", supplierCtrl.CreateSupplier, authMW.AdminOnly)
	secured.PUT("/suppliers/:id", supplierCtrl.UpdateSupplier, authMW.AdminOnly)
	secured.DELETE("/suppliers/:id", supplierCtrl.DeleteSupplier, authMW.AdminOnly)
}
