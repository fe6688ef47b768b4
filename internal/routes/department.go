package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDepartmentRouter(secured *echo.Group, departmentCtrl *controllers.DepartmentController) {
	secured.GET("/departments", departmentCtrl.GetDepartments)
	secured.GET("/departments/:id", departmentCtrl.FindDepartment)
	secured.POST("/departments", departmentCtrl.CreateDepartment)
	secured.PUT("/departments/:id", departmentCtrl.UpdateDepartment)
	secured.DELETE("/departments/:id", departmentCtrl.DeleteDepartment)
}
