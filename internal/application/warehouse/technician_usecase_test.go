package warehouse_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/testutil"
)

func newTechnicianUC(t *testing.T) (*testutil.Store, *warehouse.TechnicianStockUseCase) {
	t.Helper()
	store := testutil.NewStore()
	uc := warehouse.NewTechnicianStockUseCase(
		&testutil.UserRepo{S: store},
		&testutil.TechStockRepo{S: store},
		&testutil.ItemRepo{S: store},
		&testutil.SerialRepo{S: store},
	)
	return store, uc
}

func TestTechnicianList_TotalesYValor(t *testing.T) {
	store, uc := newTechnicianUC(t)
	now := time.Now()
	store.Users[testTechID] = &entity.User{
		ID: testTechID, Name: "Laura", Email: "laura@acme.co",
		Role: entity.RoleTechnician, Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	store.Items["item-1"] = &entity.WarehouseItem{
		ID: "item-1", ItemName: "Cable", PartNumber: "C-1",
		Value: decimal.NewFromInt(12), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, (&testutil.TechStockRepo{S: store}).Upsert("item-1", testTechID, 3))

	out, err := uc.ListWithStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].TotalItems)
	assert.True(t, out[0].TotalValue.Equal(decimal.NewFromInt(36)), "valor = cantidad × valor unitario")
}

func TestTechnicianDetail_IncluyeUnidadesSerializadas(t *testing.T) {
	store, uc := newTechnicianUC(t)
	now := time.Now()
	store.Users[testTechID] = &entity.User{
		ID: testTechID, Name: "Laura", Role: entity.RoleTechnician, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	}
	store.Items["item-s"] = &entity.WarehouseItem{
		ID: "item-s", ItemName: "ONT", PartNumber: "ONT-1",
		Value: decimal.NewFromInt(85), TracksSerialNumbers: true,
		CreatedAt: now, UpdatedAt: now,
	}
	store.Serials["u1"] = &entity.SerialNumberStock{
		ID: "u1", ItemID: "item-s", SerialNumber: "SN-1",
		Location: entity.LocationTechnician, Status: entity.SerialStatusAvailable,
		TechnicianID: testTechID,
	}
	require.NoError(t, (&testutil.TechStockRepo{S: store}).Upsert("item-s", testTechID, 1))

	out, err := uc.GetDetail(testTechID)
	require.NoError(t, err)
	require.Len(t, out.StockItems, 1)
	require.Len(t, out.StockItems[0].SerialNumbers, 1)
	assert.Equal(t, "SN-1", out.StockItems[0].SerialNumbers[0].SerialNumber)
}

func TestTechnicianDetail_NoTecnicoEsNotFound(t *testing.T) {
	store, uc := newTechnicianUC(t)
	now := time.Now()
	store.Users["admin-1"] = &entity.User{
		ID: "admin-1", Name: "Root", Role: entity.RoleAdmin, Status: "active",
		CreatedAt: now, UpdatedAt: now,
	}

	_, err := uc.GetDetail("admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
