package services

import (
	"fmt"
	"net/http"

	"hospital-system/internal/entities"
	apperrors "hospital-system/pkg/errors"
)

// Les changements d'état passent tous par ici; chaque table liste les états
// accessibles depuis l'état courant. Tout le reste est refusé en 400.
var (
	purchaseOrderTransitions = map[string][]string{
		entities.PurchaseOrderStatusPending: {entities.PurchaseOrderStatusApproved, entities.PurchaseOrderStatusRejected},
	}
	deliveryOrderTransitions = map[string][]string{
		entities.DeliveryOrderStatusPending: {entities.DeliveryOrderStatusDelivered, entities.DeliveryOrderStatusCancelled},
	}
	internalRepairTransitions = map[string][]string{
		entities.RepairStatusPending: {entities.RepairStatusCompleted},
	}
	reclamationTransitions = map[string][]string{
		entities.ReclamationStatusPending:    {entities.ReclamationStatusInProgress, entities.ReclamationStatusRejected},
		entities.ReclamationStatusInProgress: {entities.ReclamationStatusResolved, entities.ReclamationStatusRejected},
	}
	besoinTransitions = map[string][]string{
		entities.BesoinStatusPending: {entities.BesoinStatusApproved, entities.BesoinStatusRejected},
	}
	exitFormTransitions = map[string][]string{
		entities.ExitFormStatusPending: {entities.ExitFormStatusApproved, entities.ExitFormStatusRejected},
	}
)

func checkTransition(transitions map[string][]string, current, next string) error {
	if current == next {
		return nil
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return apperrors.NewHttpError(http.StatusBadRequest,
		fmt.Sprintf("transition de statut interdite: %s -> %s", current, next), nil, nil)
}
