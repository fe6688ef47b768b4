package services

import (
	"context"
	"io"
	"net/http"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/filestorage"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

var errPurchaseOrderReferenced = apperrors.NewHttpError(http.StatusConflict,
	"impossible de supprimer: des bons de livraison référencent encore ce bon de commande", nil, nil)

type PurchaseOrderService struct {
	orderRepository repositories.PurchaseOrderRepositoryInterface
	fileStorage     filestorage.FileStorageInterface
	logger          *zap.Logger
}

func NewPurchaseOrderService(
	orderRepository repositories.PurchaseOrderRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepository: orderRepository,
		fileStorage:     fileStorage,
		logger:          logger,
	}
}

func mapPurchaseOrderToDTO(order *entities.PurchaseOrder) dto.PurchaseOrderDTO {
	orderDate := order.OrderDate
	result := dto.PurchaseOrderDTO{
		ID:           order.ID,
		Reference:    order.Reference,
		OrderDate:    dto.FormatDate(&orderDate),
		Details:      order.Details,
		DocumentPath: order.DocumentPath,
		Status:       order.Status,
		CreatedAt:    dto.FormatTime(order.CreatedAt),
		UpdatedAt:    dto.FormatTime(order.UpdatedAt),
	}
	if order.Supplier != nil {
		result.Supplier = dto.ShortSupplierDTO{ID: order.Supplier.ID, Name: order.Supplier.Name}
	}
	return result
}

func (s *PurchaseOrderService) GetPurchaseOrders(ctx context.Context, filter types.Filter) ([]dto.PurchaseOrderDTO, uint64, error) {
	orders, total, err := s.orderRepository.GetPurchaseOrders(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des bons de commande", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.PurchaseOrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, mapPurchaseOrderToDTO(&orders[i]))
	}
	return result, total, nil
}

func (s *PurchaseOrderService) FindPurchaseOrder(ctx context.Context, id uint64) (*dto.PurchaseOrderDTO, error) {
	order, err := s.orderRepository.FindPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapPurchaseOrderToDTO(order)
	return &result, nil
}

// CreatePurchaseOrder accepte un document scanné optionnel envoyé dans la
// même requête multipart.
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, payload dto.CreatePurchaseOrderDTO, document io.Reader, documentName string) (*dto.PurchaseOrderDTO, error) {
	orderDate, err := parseDate(payload.OrderDate)
	if err != nil {
		return nil, err
	}
	order := entities.PurchaseOrder{
		Reference:  payload.Reference,
		OrderDate:  orderDate,
		SupplierID: payload.SupplierID,
		Details:    payload.Details,
		Status:     entities.PurchaseOrderStatusPending,
	}
	if document != nil {
		path, err := s.fileStorage.Save(document, documentName, "purchase-orders")
		if err != nil {
			s.logger.Error("échec de l'enregistrement du document du bon de commande", zap.Error(err))
			return nil, err
		}
		order.DocumentPath = &path
	}
	created, err := s.orderRepository.CreatePurchaseOrder(ctx, order)
	if err != nil {
		s.logger.Error("échec de la création du bon de commande", zap.Error(err))
		return nil, err
	}
	s.logger.Info("bon de commande créé", zap.Uint64("id", created.ID), zap.String("reference", created.Reference))
	result := mapPurchaseOrderToDTO(created)
	return &result, nil
}

func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, id uint64, payload dto.UpdatePurchaseOrderDTO, document io.Reader, documentName string) (*dto.PurchaseOrderDTO, error) {
	current, err := s.orderRepository.FindPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Status != nil {
		if err := checkTransition(purchaseOrderTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	orderDate, err := parseDatePtr(payload.OrderDate)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepository.UpdatePurchaseOrder(ctx, id, payload, orderDate)
	if err != nil {
		s.logger.Error("échec de la mise à jour du bon de commande", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	if document != nil {
		path, err := s.fileStorage.Save(document, documentName, "purchase-orders")
		if err != nil {
			return nil, err
		}
		if current.DocumentPath != nil {
			if err := s.fileStorage.Delete(*current.DocumentPath); err != nil {
				s.logger.Warn("échec de la suppression de l'ancien document", zap.Error(err))
			}
		}
		if err := s.orderRepository.SetDocumentPath(ctx, id, path); err != nil {
			return nil, err
		}
		order.DocumentPath = &path
	}
	result := mapPurchaseOrderToDTO(order)
	return &result, nil
}

func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uint64) error {
	references, err := s.orderRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return errPurchaseOrderReferenced
	}
	order, err := s.orderRepository.FindPurchaseOrder(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orderRepository.DeletePurchaseOrder(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du bon de commande", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if order.DocumentPath != nil {
		if err := s.fileStorage.Delete(*order.DocumentPath); err != nil {
			s.logger.Warn("document orphelin non supprimé", zap.String("path", *order.DocumentPath), zap.Error(err))
		}
	}
	return nil
}
