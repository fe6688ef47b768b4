package dto

type DeliveryOrderItemDTO struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

type CreateDeliveryOrderDTO struct {
	Reference       string                 `json:"reference" validate:"required,reference_code"`
	CustomerName    string                 `json:"customer_name" validate:"required,min=2,max=150"`
	CustomerPhone   *string                `json:"customer_phone,omitempty" validate:"omitempty,phone_number"`
	CustomerAddress *string                `json:"customer_address,omitempty" validate:"omitempty,max=255"`
	DeliveryDate    string                 `json:"delivery_date" validate:"required,datetime=2006-01-02"`
	PurchaseOrderID *uint64                `json:"purchase_order_id,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod   string                 `json:"payment_method" validate:"required,oneof=cash cheque transfer"`
	DeliveryMethod  string                 `json:"delivery_method" validate:"required,oneof=pickup courier internal"`
	Items           []DeliveryOrderItemDTO `json:"items" validate:"required,min=1,dive"`
}

type UpdateDeliveryOrderDTO struct {
	Reference       *string                `json:"reference,omitempty" validate:"omitempty,reference_code"`
	CustomerName    *string                `json:"customer_name,omitempty" validate:"omitempty,min=2,max=150"`
	CustomerPhone   *string                `json:"customer_phone,omitempty" validate:"omitempty,phone_number"`
	CustomerAddress *string                `json:"customer_address,omitempty" validate:"omitempty,max=255"`
	DeliveryDate    *string                `json:"delivery_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PurchaseOrderID *uint64                `json:"purchase_order_id,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod   *string                `json:"payment_method,omitempty" validate:"omitempty,oneof=cash cheque transfer"`
	DeliveryMethod  *string                `json:"delivery_method,omitempty" validate:"omitempty,oneof=pickup courier internal"`
	Status          *string                `json:"status,omitempty" validate:"omitempty,oneof=pending delivered cancelled"`
	Items           []DeliveryOrderItemDTO `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

type DeliveryOrderDTO struct {
	ID              uint64                 `json:"id"`
	Reference       string                 `json:"reference"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   *string                `json:"customer_phone,omitempty"`
	CustomerAddress *string                `json:"customer_address,omitempty"`
	DeliveryDate    string                 `json:"delivery_date"`
	PurchaseOrderID *uint64                `json:"purchase_order_id,omitempty"`
	Total           float64                `json:"total"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"payment_method"`
	DeliveryMethod  string                 `json:"delivery_method"`
	Items           []DeliveryOrderItemDTO `json:"items"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}
