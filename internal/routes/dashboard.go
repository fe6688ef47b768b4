package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secured *echo.Group, dashboardCtrl *controllers.DashboardController, authMW *middleware.AuthMiddleware) {
	secured.GET("/dashboard/stats", dashboardCtrl.GetStats, authMW.AdminOnly)
}
