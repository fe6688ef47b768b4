package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runInternalRepairRouter(secured *echo.Group, internalRepairCtrl *controllers.InternalRepairController) {
	secured.GET("/internal-repairs", internalRepairCtrl.GetInternalRepairs)
	secured.GET("/internal-repairs/:id", internalRepairCtrl.FindInternalRepair)
	secured.POST("/internal-repairs", internalRepairCtrl.CreateInternalRepair)
	secured.PUT("/internal-repairs/:id", internalRepairCtrl.UpdateInternalRepair)
	secured.DELETE("/internal-repairs/:id", internalRepairCtrl.DeleteInternalRepair)
}
