package dto

import "github.com/shopspring/decimal"

// ShortageReportDTO fila del análisis de faltantes para GET /api/analytics/shortage.
type ShortageReportDTO struct {
	ComponentID             string          `json:"component_id"`
	PartCode                string          `json:"part_code"`
	ComponentName           string          `json:"component_name"`
	CurrentStock            int64           `json:"current_stock"`
	MonthlyRequiredQuantity int64           `json:"monthly_required_quantity"`
	TotalRequired           int64           `json:"total_required"`
	Shortage                int64           `json:"shortage"`
	ShortagePercentage      decimal.Decimal `json:"shortage_percentage"`
	StockStatus             string          `json:"stock_status"` // "LOW STOCK" | "OK"
}
