package types

// DashboardCountByGroup is one bucket of a group-by aggregation.
type DashboardCountByGroup struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardTotals struct {
	Equipments     int64 `json:"equipments"`
	Departments    int64 `json:"departments"`
	SpareParts     int64 `json:"spare_parts"`
	Suppliers      int64 `json:"suppliers"`
	Reclamations   int64 `json:"reclamations"`
	Besoins        int64 `json:"besoins"`
	PurchaseOrders int64 `json:"purchase_orders"`
	DeliveryOrders int64 `json:"delivery_orders"`
}

type DashboardMoney struct {
	EquipmentValue float64 `json:"equipment_value"`
	SparePartValue float64 `json:"spare_part_value"`
}

// DashboardStats is the single payload consumed by the dashboard and
// analytics views.
type DashboardStats struct {
	Totals                DashboardTotals         `json:"totals"`
	Money                 DashboardMoney          `json:"money"`
	EquipmentByCategory   []DashboardCountByGroup `json:"equipment_by_category"`
	EquipmentByDepartment []DashboardCountByGroup `json:"equipment_by_department"`
	EquipmentByStatus     []DashboardCountByGroup `json:"equipment_by_status"`
	EquipmentByWarranty   []DashboardCountByGroup `json:"equipment_by_warranty"`
	EquipmentByAge        []DashboardCountByGroup `json:"equipment_by_age"`
	ReclamationsByStatus  []DashboardCountByGroup `json:"reclamations_by_status"`
	BesoinsByStatus       []DashboardCountByGroup `json:"besoins_by_status"`
}
