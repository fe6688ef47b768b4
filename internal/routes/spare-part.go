package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runSparePartRouter(secured *echo.Group, sparePartCtrl *controllers.SparePartController) {
	secured.GET("/spare-parts", sparePartCtrl.GetSpareParts)
	secured.GET("/spare-parts/:id", sparePartCtrl.FindSparePart)
	secured.POST("/spare-parts", sparePartCtrl.CreateSparePart)
	secured.PUT("/spare-parts/:id", sparePartCtrl.UpdateSparePart)
	secured.DELETE("/spare-parts/:id", sparePartCtrl.DeleteSparePart)
}
