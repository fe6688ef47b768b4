package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runBesoinRouter(secured *echo.Group, besoinCtrl *controllers.BesoinController, authMW *middleware.AuthMiddleware) {
	secured.GET("/besoins", besoinCtrl.GetBesoins)
	secured.GET("/besoins/department/:id", besoinCtrl.GetDepartmentBesoins, authMW.DepartmentOnly)
	secured.GET("/besoins/:id", besoinCtrl.FindBesoin)
	secured.POST("/besoins", besoinCtrl.CreateBesoin)
	secured.PUT("/besoins/:id", besoinCtrl.UpdateBesoin)
	secured.DELETE("/besoins/:id", besoinCtrl.DeleteBesoin)
}
