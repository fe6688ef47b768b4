package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hospital-system/internal/controllers"
	"hospital-system/internal/repositories"
	"hospital-system/internal/services"
	"hospital-system/pkg/config"
	"hospital-system/pkg/filestorage"
	"hospital-system/pkg/middleware"
	"hospital-system/pkg/service"
)

// InitRouter construit toute la chaîne repositories -> services ->
// controllers et enregistre les routes sous /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Upload.BasePath)
	if err != nil {
		logger.Fatal("impossible de créer le stockage de fichiers", zap.Error(err))
	}

	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn, logger)
	modelRepo := repositories.NewEquipmentModelRepository(dbConn, logger)
	supplierRepo := repositories.NewSupplierRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	sparePartRepo := repositories.NewSparePartRepository(dbConn, logger)
	purchaseOrderRepo := repositories.NewPurchaseOrderRepository(dbConn, logger)
	deliveryOrderRepo := repositories.NewDeliveryOrderRepository(dbConn, logger)
	internalRepairRepo := repositories.NewInternalRepairRepository(dbConn, logger)
	reclamationRepo := repositories.NewReclamationRepository(dbConn, logger)
	besoinRepo := repositories.NewBesoinRepository(dbConn, logger)
	exitFormRepo := repositories.NewExitFormRepository(dbConn, logger)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	cacheRepo := repositories.NewCacheRepository(redisClient, logger)

	departmentService := services.NewDepartmentService(departmentRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	modelService := services.NewEquipmentModelService(modelRepo, categoryRepo, logger)
	supplierService := services.NewSupplierService(supplierRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	sparePartService := services.NewSparePartService(sparePartRepo, logger)
	purchaseOrderService := services.NewPurchaseOrderService(purchaseOrderRepo, fileStorage, logger)
	deliveryOrderService := services.NewDeliveryOrderService(deliveryOrderRepo, logger)
	internalRepairService := services.NewInternalRepairService(internalRepairRepo, logger)
	reclamationService := services.NewReclamationService(reclamationRepo, fileStorage, logger)
	besoinService := services.NewBesoinService(besoinRepo, logger)
	exitFormService := services.NewExitFormService(exitFormRepo, fileStorage, logger)
	userService := services.NewUserService(userRepo, fileStorage, logger)
	roleService := services.NewRoleService(roleRepo, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, &cfg.Auth, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.CacheTTL, logger)
	reportService := services.NewReportService(equipmentRepo, logger)

	maxFileSize := cfg.Upload.MaxFileSize

	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	modelCtrl := controllers.NewEquipmentModelController(modelService, logger)
	supplierCtrl := controllers.NewSupplierController(supplierService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	sparePartCtrl := controllers.NewSparePartController(sparePartService, logger)
	purchaseOrderCtrl := controllers.NewPurchaseOrderController(purchaseOrderService, maxFileSize, logger)
	deliveryOrderCtrl := controllers.NewDeliveryOrderController(deliveryOrderService, logger)
	internalRepairCtrl := controllers.NewInternalRepairController(internalRepairService, logger)
	reclamationCtrl := controllers.NewReclamationController(reclamationService, maxFileSize, logger)
	besoinCtrl := controllers.NewBesoinController(besoinService, logger)
	exitFormCtrl := controllers.NewExitFormController(exitFormService, maxFileSize, logger)
	userCtrl := controllers.NewUserController(userService, maxFileSize, logger)
	roleCtrl := controllers.NewRoleController(roleService, logger)
	authCtrl := controllers.NewAuthController(authService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secured := api.Group("", authMW.Auth)

	runAuthRouter(api, secured, authCtrl)
	runDepartmentRouter(secured, departmentCtrl)
	runCategoryRouter(secured, categoryCtrl)
	runEquipmentModelRouter(secured, modelCtrl)
	runSupplierRouter(secured, supplierCtrl, authMW)
	runEquipmentRouter(secured, equipmentCtrl)
	runSparePartRouter(secured, sparePartCtrl)
	runPurchaseOrderRouter(secured, purchaseOrderCtrl, authMW)
	runDeliveryOrderRouter(secured, deliveryOrderCtrl, authMW)
	runInternalRepairRouter(secured, internalRepairCtrl)
	runReclamationRouter(secured, reclamationCtrl, authMW)
	runBesoinRouter(secured, besoinCtrl, authMW)
	runExitFormRouter(secured, exitFormCtrl)
	runUserRouter(secured, userCtrl, authMW)
	runRoleRouter(secured, roleCtrl, authMW)
	runDashboardRouter(secured, dashboardCtrl, authMW)
	runReportRouter(secured, reportCtrl, authMW)

	logger.Info("InitRouter: routes enregistrées")
}
