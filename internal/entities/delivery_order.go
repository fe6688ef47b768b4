package entities

import (
	"time"

	"hospital-system/pkg/types"
)

const (
	DeliveryOrderStatusPending   = "pending"
	DeliveryOrderStatusDelivered = "delivered"
	DeliveryOrderStatusCancelled = "cancelled"
)

// DeliveryOrder représente un bon de livraison avec ses lignes.
type DeliveryOrder struct {
	ID              uint64    `json:"id" db:"id"`
	Reference       string    `json:"reference" db:"reference"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CustomerPhone   *string   `json:"customer_phone,omitempty" db:"customer_phone"`
	CustomerAddress *string   `json:"customer_address,omitempty" db:"customer_address"`
	DeliveryDate    time.Time `json:"delivery_date" db:"delivery_date"`
	PurchaseOrderID *uint64   `json:"purchase_order_id,omitempty" db:"purchase_order_id"`
	Total           float64   `json:"total" db:"total"`
	Status          string    `json:"status" db:"status"`
	PaymentMethod   string    `json:"payment_method" db:"payment_method"`
	DeliveryMethod  string    `json:"delivery_method" db:"delivery_method"`

	types.BaseEntity

	Items []DeliveryOrderItem `json:"items" db:"-"`
}

type DeliveryOrderItem struct {
	ID              uint64  `json:"id" db:"id"`
	DeliveryOrderID uint64  `json:"delivery_order_id" db:"delivery_order_id"`
	Description     string  `json:"description" db:"description"`
	Quantity        int     `json:"quantity" db:"quantity"`
	UnitPrice       float64 `json:"unit_price" db:"unit_price"`
}
