package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secured *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	secured.GET("/equipments", equipmentCtrl.GetEquipments)
	secured.GET("/equipments/:id", equipmentCtrl.FindEquipment)
	secured.POST("/equipments", equipmentCtrl.CreateEquipment)
	secured.PUT("/equipments/:id", equipmentCtrl.UpdateEquipment)
	secured.DELETE("/equipments/:id", equipmentCtrl.DeleteEquipment)
}
