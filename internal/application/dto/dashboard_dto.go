package dto

// CriticalItemDTO producto activo por debajo de su estoque mínimo.
type CriticalItemDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Quantity int64  `json:"quantity"`
	MinStock int64  `json:"min_stock"`
	Deficit  int64  `json:"deficit"` // min_stock - quantity
}

// DashboardSummaryDTO resumen del inventario activo.
type DashboardSummaryDTO struct {
	TotalUnits      int64              `json:"total_units"`
	ModelCount      int                `json:"model_count"`
	CriticalCount   int                `json:"critical_count"`
	CriticalItems   []CriticalItemDTO  `json:"critical_items"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}
