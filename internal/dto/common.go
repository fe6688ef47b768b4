package dto

type ShortDepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortCategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortModelDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortSupplierDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortRoleDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortEquipmentDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

type ShortUserDTO struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
