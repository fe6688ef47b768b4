package routes

import (
	"hospital-system/internal/controllers"
	"hospital-system/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runReclamationRouter(secured *echo.Group, reclamationCtrl *controllers.ReclamationController, authMW *middleware.AuthMiddleware) {
	secured.GET("/reclamations", reclamationCtrl.GetReclamations)
	secured.GET("/reclamations/department/:id", reclamationCtrl.GetDepartmentReclamations, authMW.DepartmentOnly)
	secured.GET("/reclamations/:id", reclamationCtrl.FindReclamation)
	secured.POST("/reclamations", reclamationCtrl.CreateReclamation)
	secured.PUT("/reclamations/:id", reclamationCtrl.UpdateReclamation)
	secured.DELETE("/reclamations/:id", reclamationCtrl.DeleteReclamation)

	secured.GET("/reclamations/:id/comments", reclamationCtrl.GetComments)
	secured.POST("/reclamations/:id/comments", reclamationCtrl.AddComment)
	secured.GET("/reclamations/:id/history", reclamationCtrl.GetHistory)
	secured.GET("/reclamations/:id/attachments", reclamationCtrl.GetAttachments)
	secured.POST("/reclamations/:id/attachments", reclamationCtrl.AddAttachment)
	secured.DELETE("/reclamations/:id/attachments/:attachmentId", reclamationCtrl.DeleteAttachment)
}
