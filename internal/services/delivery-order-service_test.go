package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	apperrors "hospital-system/pkg/errors"
	"hospital-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDeliveryOrderRepo struct {
	orders     map[uint64]*entities.DeliveryOrder
	nextID     uint64
	lastUpdate *repositories.DeliveryOrderUpdate
}

func newFakeDeliveryOrderRepo() *fakeDeliveryOrderRepo {
	return &fakeDeliveryOrderRepo{orders: map[uint64]*entities.DeliveryOrder{}, nextID: 1}
}

func (f *fakeDeliveryOrderRepo) GetDeliveryOrders(_ context.Context, _ types.Filter) ([]entities.DeliveryOrder, uint64, error) {
	result := make([]entities.DeliveryOrder, 0, len(f.orders))
	for _, o := range f.orders {
		result = append(result, *o)
	}
	return result, uint64(len(result)), nil
}

func (f *fakeDeliveryOrderRepo) FindDeliveryOrder(_ context.Context, id uint64) (*entities.DeliveryOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeDeliveryOrderRepo) CreateDeliveryOrder(_ context.Context, order entities.DeliveryOrder) (*entities.DeliveryOrder, error) {
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = &order
	copied := order
	return &copied, nil
}

func (f *fakeDeliveryOrderRepo) UpdateDeliveryOrder(_ context.Context, id uint64, update repositories.DeliveryOrderUpdate) (*entities.DeliveryOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	f.lastUpdate = &update
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.Total != nil {
		order.Total = *update.Total
	}
	if update.Items != nil {
		order.Items = update.Items
	}
	copied := *order
	return &copied, nil
}

func (f *fakeDeliveryOrderRepo) DeleteDeliveryOrder(_ context.Context, id uint64) error {
	if _, ok := f.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func validCreateDeliveryOrderDTO() dto.CreateDeliveryOrderDTO {
	return dto.CreateDeliveryOrderDTO{
		Reference:      "BL-2026-001",
		CustomerName:   "Clinique du Nord",
		DeliveryDate:   time.Now().Format("2006-01-02"),
		PaymentMethod:  "transfer",
		DeliveryMethod: "courier",
		Items: []dto.DeliveryOrderItemDTO{
			{Description: "Moniteur patient", Quantity: 2, UnitPrice: 1500},
			{Description: "Câble ECG", Quantity: 5, UnitPrice: 40},
		},
	}
}

func TestCreateDeliveryOrderComputesTotalServerSide(t *testing.T) {
	repo := newFakeDeliveryOrderRepo()
	svc := NewDeliveryOrderService(repo, zap.NewNop())

	created, err := svc.CreateDeliveryOrder(context.Background(), validCreateDeliveryOrderDTO())
	require.NoError(t, err)
	assert.Equal(t, 2*1500.0+5*40.0, created.Total)
	assert.Equal(t, entities.DeliveryOrderStatusPending, created.Status)
	assert.Len(t, created.Items, 2)
}

func TestUpdateDeliveryOrderRecomputesTotalWhenItemsChange(t *testing.T) {
	repo := newFakeDeliveryOrderRepo()
	svc := NewDeliveryOrderService(repo, zap.NewNop())

	created, err := svc.CreateDeliveryOrder(context.Background(), validCreateDeliveryOrderDTO())
	require.NoError(t, err)

	updated, err := svc.UpdateDeliveryOrder(context.Background(), created.ID, dto.UpdateDeliveryOrderDTO{
		Items: []dto.DeliveryOrderItemDTO{{Description: "Pousse-seringue", Quantity: 1, UnitPrice: 900}},
	})
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.Total)
	require.NotNil(t, repo.lastUpdate.Total)
	assert.Equal(t, 900.0, *repo.lastUpdate.Total)
}

func TestUpdateDeliveryOrderKeepsTotalWhenItemsUntouched(t *testing.T) {
	repo := newFakeDeliveryOrderRepo()
	svc := NewDeliveryOrderService(repo, zap.NewNop())

	created, err := svc.CreateDeliveryOrder(context.Background(), validCreateDeliveryOrderDTO())
	require.NoError(t, err)

	name := "Hôpital Central"
	updated, err := svc.UpdateDeliveryOrder(context.Background(), created.ID, dto.UpdateDeliveryOrderDTO{
		CustomerName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Total, updated.Total)
	assert.Nil(t, repo.lastUpdate.Total)
}

func TestUpdateDeliveryOrderRejectsForbiddenTransition(t *testing.T) {
	repo := newFakeDeliveryOrderRepo()
	svc := NewDeliveryOrderService(repo, zap.NewNop())

	created, err := svc.CreateDeliveryOrder(context.Background(), validCreateDeliveryOrderDTO())
	require.NoError(t, err)

	delivered := entities.DeliveryOrderStatusDelivered
	_, err = svc.UpdateDeliveryOrder(context.Background(), created.ID, dto.UpdateDeliveryOrderDTO{Status: &delivered})
	require.NoError(t, err)

	pending := entities.DeliveryOrderStatusPending
	_, err = svc.UpdateDeliveryOrder(context.Background(), created.ID, dto.UpdateDeliveryOrderDTO{Status: &pending})
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
