package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runExitFormRouter(secured *echo.Group, exitFormCtrl *controllers.ExitFormController) {
	secured.GET("/exit-forms", exitFormCtrl.GetExitForms)
	secured.GET("/exit-forms/:id", exitFormCtrl.FindExitForm)
	secured.POST("/exit-forms", exitFormCtrl.CreateExitForm)
	secured.PUT("/exit-forms/:id", exitFormCtrl.UpdateExitForm)
	secured.DELETE("/exit-forms/:id", exitFormCtrl.DeleteExitForm)
}
