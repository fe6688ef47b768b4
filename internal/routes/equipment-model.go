package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentModelRouter(secured *echo.Group, modelCtrl *controllers.EquipmentModelController) {
	secured.GET("/equipment-models", modelCtrl.GetEquipmentModels)
	secured.GET("/equipment-models/:id", modelCtrl.FindEquipmentModel)
	secured.POST("/equipment-models", modelCtrl.CreateEquipmentModel)
	secured.PUT("/equipment-models/:id", modelCtrl.UpdateEquipmentModel)
	secured.DELETE("/equipment-models/:id", modelCtrl.DeleteEquipmentModel)
}
