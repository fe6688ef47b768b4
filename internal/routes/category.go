package routes

import (
	"hospital-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCategoryRouter(secured *echo.Group, categoryCtrl *controllers.CategoryController) {
	secured.GET("/categories", categoryCtrl.GetCategories)
	secured.GET("/categories/:id", categoryCtrl.FindCategory)
	secured.POST("/categories", categoryCtrl.CreateCategory)
	secured.PUT("/categories/:id", categoryCtrl.UpdateCategory)
	secured.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
}
