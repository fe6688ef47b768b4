package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

// Login et refresh restent publics, /auth/me exige un jeton valide.
func runAuthRouter(api *echo.Group, secured *echo.Group, authCtrl *controllers.AuthController) {
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/refresh", authCtrl.RefreshToken)
	secured.GET("/auth/me", authCtrl.Me)
}
