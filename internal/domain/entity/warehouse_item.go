package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseItem representa un repuesto del catálogo de almacén.
// MainWarehouse es autoritativo solo para ítems a granel (TracksSerialNumbers=false);
// para ítems serializados el stock real se deriva del registro de números de serie
// y MainWarehouse se fija en 0 al crear.
type WarehouseItem struct {
	ID                  string
	ItemName            string
	PartNumber          string
	Value               decimal.Decimal // valor unitario, >= 0
	TracksSerialNumbers bool            // inmutable después de crear
	AutoSn              bool            // generación automática de números de serie
	SnPrefix            string          // prefijo requerido si AutoSn
	MainWarehouse       int             // cantidad en bodega central, nunca negativa
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
