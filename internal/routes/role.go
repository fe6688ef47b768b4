package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runRoleRouter(secured *echo.Group, roleCtrl *controllers.RoleController, authMW *middleware.AuthMiddleware) {
	group := secured.Group("/roles", authMW.AdminOnly)
	group.GET("", roleCtrl.GetRoles)
	group.GET("/:id", roleCtrl.FindRole)
	group.POST("", roleCtrl.CreateRole)
	group.PUT("/:id", roleCtrl.UpdateRole)
	group.DELETE("/:id", roleCtrl.DeleteRole)
}
