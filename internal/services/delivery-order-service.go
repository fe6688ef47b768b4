package services

import (
	"context"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

type DeliveryOrderService struct {
	orderRepository repositories.DeliveryOrderRepositoryInterface
	logger          *zap.Logger
}

func NewDeliveryOrderService(orderRepository repositories.DeliveryOrderRepositoryInterface, logger *zap.Logger) *DeliveryOrderService {
	return &DeliveryOrderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

func mapDeliveryOrderToDTO(order *entities.DeliveryOrder) dto.DeliveryOrderDTO {
	deliveryDate := order.DeliveryDate
	items := make([]dto.DeliveryOrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.DeliveryOrderItemDTO{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return dto.DeliveryOrderDTO{
		ID:              order.ID,
		Reference:       order.Reference,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		DeliveryDate:    dto.FormatDate(&deliveryDate),
		PurchaseOrderID: order.PurchaseOrderID,
		Total:           order.Total,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		DeliveryMethod:  order.DeliveryMethod,
		Items:           items,
		CreatedAt:       dto.FormatTime(order.CreatedAt),
		UpdatedAt:       dto.FormatTime(order.UpdatedAt),
	}
}

// computeTotal recalcule le montant à partir des lignes; le client n'envoie
// jamais de total.
func computeTotal(items []dto.DeliveryOrderItemDTO) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

func deliveryItemsFromDTO(items []dto.DeliveryOrderItemDTO) []entities.DeliveryOrderItem {
	result := make([]entities.DeliveryOrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, entities.DeliveryOrderItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return result
}

func (s *DeliveryOrderService) GetDeliveryOrders(ctx context.Context, filter types.Filter) ([]dto.DeliveryOrderDTO, uint64, error) {
	orders, total, err := s.orderRepository.GetDeliveryOrders(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des bons de livraison", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.DeliveryOrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, mapDeliveryOrderToDTO(&orders[i]))
	}
	return result, total, nil
}

func (s *DeliveryOrderService) FindDeliveryOrder(ctx context.Context, id uint64) (*dto.DeliveryOrderDTO, error) {
	order, err := s.orderRepository.FindDeliveryOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapDeliveryOrderToDTO(order)
	return &result, nil
}

func (s *DeliveryOrderService) CreateDeliveryOrder(ctx context.Context, payload dto.CreateDeliveryOrderDTO) (*dto.DeliveryOrderDTO, error) {
	deliveryDate, err := parseDate(payload.DeliveryDate)
	if err != nil {
		return nil, err
	}
	order := entities.DeliveryOrder{
		Reference:       payload.Reference,
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		DeliveryDate:    deliveryDate,
		PurchaseOrderID: payload.PurchaseOrderID,
		Total:           computeTotal(payload.Items),
		Status:          entities.DeliveryOrderStatusPending,
		PaymentMethod:   payload.PaymentMethod,
		DeliveryMethod:  payload.DeliveryMethod,
		Items:           deliveryItemsFromDTO(payload.Items),
	}
	created, err := s.orderRepository.CreateDeliveryOrder(ctx, order)
	if err != nil {
		s.logger.Error("échec de la création du bon de livraison", zap.Error(err))
		return nil, err
	}
	s.logger.Info("bon de livraison créé", zap.Uint64("id", created.ID), zap.String("reference", created.Reference))
	result := mapDeliveryOrderToDTO(created)
	return &result, nil
}

func (s *DeliveryOrderService) UpdateDeliveryOrder(ctx context.Context, id uint64, payload dto.UpdateDeliveryOrderDTO) (*dto.DeliveryOrderDTO, error) {
	current, err := s.orderRepository.FindDeliveryOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Status != nil {
		if err := checkTransition(deliveryOrderTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	deliveryDate, err := parseDatePtr(payload.DeliveryDate)
	if err != nil {
		return nil, err
	}
	update := repositories.DeliveryOrderUpdate{
		Reference:       payload.Reference,
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		DeliveryDate:    deliveryDate,
		PurchaseOrderID: payload.PurchaseOrderID,
		PaymentMethod:   payload.PaymentMethod,
		DeliveryMethod:  payload.DeliveryMethod,
		Status:          payload.Status,
	}
	if payload.Items != nil {
		update.Items = deliveryItemsFromDTO(payload.Items)
		total := computeTotal(payload.Items)
		update.Total = &total
	}
	order, err := s.orderRepository.UpdateDeliveryOrder(ctx, id, update)
	if err != nil {
		s.logger.Error("échec de la mise à jour du bon de livraison", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	result := mapDeliveryOrderToDTO(order)
	return &result, nil
}

func (s *DeliveryOrderService) DeleteDeliveryOrder(ctx context.Context, id uint64) error {
	if err := s.orderRepository.DeleteDeliveryOrder(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du bon de livraison", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
