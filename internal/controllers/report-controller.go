package controllers

import (
	"fmt"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/services"
	"hospital-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const equipmentReportSheet = "Équipements"

type ReportController struct {
	reportService *services.ReportService
	logger        *zap.Logger
}

func NewReportController(service *services.ReportService, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: service, logger: logger}
}

// ExportEquipments renvoie l'inventaire des équipements en classeur xlsx,
// filtré par les mêmes paramètres de requête que la liste.
func (c *ReportController) ExportEquipments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	equipments, err := c.reportService.GetEquipmentReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", equipmentReportSheet)

	headers := []string{
		"ID", "Nom", "Catégorie", "Modèle", "Numéro de série", "Statut",
		"Garantie", "Date d'achat", "Prix", "Service", "Fournisseur",
	}
	if err := f.SetSheetRow(equipmentReportSheet, "A1", &headers); err != nil {
		return utils.ErrorResponse(ctx, fmt.Errorf("écriture de l'en-tête du rapport: %w", err), c.logger)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastHeaderCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(equipmentReportSheet, "A1", lastHeaderCell, headerStyle)
	}

	for i, equipment := range equipments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return utils.ErrorResponse(ctx, fmt.Errorf("calcul de cellule du rapport: %w", err), c.logger)
		}
		row := equipmentReportRow(equipment)
		if err := f.SetSheetRow(equipmentReportSheet, cell, &row); err != nil {
			return utils.ErrorResponse(ctx, fmt.Errorf("écriture d'une ligne du rapport: %w", err), c.logger)
		}
	}

	f.SetColWidth(equipmentReportSheet, "B", "C", 28)
	f.SetColWidth(equipmentReportSheet, "D", "F", 20)
	f.SetColWidth(equipmentReportSheet, "G", "K", 18)

	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="rapport-equipements.xlsx"`)
	ctx.Response().WriteHeader(http.StatusOK)
	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("ReportController.ExportEquipments: échec de l'envoi du classeur", zap.Error(err))
		return err
	}
	return nil
}

func equipmentReportRow(equipment dto.EquipmentDTO) []interface{} {
	modelName := ""
	if equipment.Model != nil {
		modelName = equipment.Model.Name
	}
	departmentName := ""
	if equipment.Department != nil {
		departmentName = equipment.Department.Name
	}
	supplierName := ""
	if equipment.Supplier != nil {
		supplierName = equipment.Supplier.Name
	}
	return []interface{}{
		equipment.ID,
		equipment.Name,
		equipment.Category.Name,
		modelName,
		equipment.SerialNumber,
		equipment.Status,
		equipment.WarrantyStatus,
		equipment.PurchaseDate,
		equipment.Price,
		departmentName,
		supplierName,
	}
}
