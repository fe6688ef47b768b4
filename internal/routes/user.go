package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runUserRouter(secured *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	group := secured.Group("/users", authMW.AdminOnly)
	group.GET("", userCtrl.GetUsers)
	group.GET("/:id", userCtrl.FindUser)
	group.POST("", userCtrl.CreateUser)
	group.PUT("/:id", userCtrl.UpdateUser)
	group.POST("/:id/photo", userCtrl.UploadPhoto)
	group.DELETE("/:id", userCtrl.DeleteUser)
}
