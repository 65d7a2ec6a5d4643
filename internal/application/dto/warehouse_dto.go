package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para registrar un repuesto en el catálogo.
// MainWarehouse solo aplica a ítems a granel; en serializados se ignora (inicia en 0).
type CreateItemRequest struct {
	ItemName            string          `json:"item_name" validate:"required,min=1,max=200"`
	PartNumber          string          `json:"part_number" validate:"required,min=1,max=100"`
	Value               decimal.Decimal `json:"value"`
	TracksSerialNumbers bool            `json:"tracks_serial_numbers"`
	AutoSn              bool            `json:"auto_sn"`
	SnPrefix            string          `json:"sn_prefix" validate:"omitempty,max=20"`
	MainWarehouse       int             `json:"main_warehouse" validate:"min=0"`
}

// UpdateItemRequest entrada para editar un repuesto. TracksSerialNumbers es inmutable.
type UpdateItemRequest struct {
	ItemName   *string          `json:"item_name" validate:"omitempty,min=1,max=200"`
	PartNumber *string          `json:"part_number" validate:"omitempty,min=1,max=100"`
	Value      *decimal.Decimal `json:"value"`
	AutoSn     *bool            `json:"auto_sn"`
	SnPrefix   *string          `json:"sn_prefix" validate:"omitempty,max=20"`
}

// TechnicianStockDTO stock de un técnico sobre un ítem.
type TechnicianStockDTO struct {
	TechnicianID   string `json:"technician_id"`
	TechnicianName string `json:"technician_name,omitempty"`
	Quantity       int    `json:"quantity"`
}

// ItemResponse salida de un repuesto del catálogo.
// Para serializados MainWarehouse es el conteo derivado de unidades en bodega.
type ItemResponse struct {
	ID                   string               `json:"id"`
	ItemName             string               `json:"item_name"`
	PartNumber           string               `json:"part_number"`
	Value                decimal.Decimal      `json:"value"`
	TracksSerialNumbers  bool                 `json:"tracks_serial_numbers"`
	AutoSn               bool                 `json:"auto_sn"`
	SnPrefix             string               `json:"sn_prefix,omitempty"`
	MainWarehouse        int                  `json:"main_warehouse"`
	TotalTechnicianStock int                  `json:"total_technician_stock"`
	TotalStock           int                  `json:"total_stock"`
	TechnicianStocks     []TechnicianStockDTO `json:"technician_stocks,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// ItemListResponse lista paginada de repuestos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// TechnicianStockItemDTO un ítem en el inventario de un técnico.
type TechnicianStockItemDTO struct {
	ItemID              string          `json:"item_id"`
	ItemName            string          `json:"item_name"`
	PartNumber          string          `json:"part_number"`
	TracksSerialNumbers bool            `json:"tracks_serial_numbers"`
	Quantity            int             `json:"quantity"`
	Value               decimal.Decimal `json:"value"`
	// SerialNumbers unidades disponibles en poder del técnico (solo serializados).
	SerialNumbers []SerialNumberResponse `json:"serial_numbers,omitempty"`
}

// TechnicianSummaryResponse técnico con el total de su stock.
type TechnicianSummaryResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Email      string                   `json:"email"`
	TotalItems int                      `json:"total_items"`
	TotalValue decimal.Decimal          `json:"total_value"`
	StockItems []TechnicianStockItemDTO `json:"stock_items"`
}
