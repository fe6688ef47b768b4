package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secured *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secured.GET("/reports/equipments", reportCtrl.ExportEquipments, authMW.AdminOnly)
}
