package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mantenimiento-api/internal/application/dto"
	"github.com/jhoicas/Mantenimiento-api/internal/application/warehouse"
	"github.com/jhoicas/Mantenimiento-api/internal/domain"
	"github.com/jhoicas/Mantenimiento-api/internal/domain/entity"
	"github.com/jhoicas/Mantenimiento-api/internal/testutil"
)

type catalogFixture struct {
	store *testutil.Store
	uc    *warehouse.ItemUseCase
}

func newCatalog(t *testing.T) *catalogFixture {
	t.Helper()
	store := testutil.NewStore()
	uc := warehouse.NewItemUseCase(
		&testutil.FakeTxRunner{S: store},
		&testutil.ItemRepo{S: store},
		&testutil.SerialRepo{S: store},
		&testutil.TechStockRepo{S: store},
		&testutil.MovementRepo{S: store},
		&testutil.UserRepo{S: store},
	)
	return &catalogFixture{store: store, uc: uc}
}

func TestItemCreate_GranelConStockInicialAudita(t *testing.T) {
	f := newCatalog(t)

	resp, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ItemName: "Conector RJ45", PartNumber: "RJ45-100",
		Value: decimal.NewFromInt(1), MainWarehouse: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.MainWarehouse)

	// El stock inicial queda auditado como ADD_STOCK
	require.Len(t, f.store.Movements, 1)
	assert.Equal(t, entity.MovementTypeAddStock, f.store.Movements[0].MovementType)
	assert.Equal(t, 50, f.store.Movements[0].Quantity)
	assert.Equal(t, "Stock inicial", f.store.Movements[0].Notes)
}

func TestItemCreate_SerializadoIniciaEnCero(t *testing.T) {
	f := newCatalog(t)

	resp, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ItemName: "ONT", PartNumber: "ONT-1", Value: decimal.NewFromInt(85),
		TracksSerialNumbers: true, AutoSn: true, SnPrefix: "ONT",
		MainWarehouse: 99, // se ignora: el stock serializado vive en el registro
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.MainWarehouse)
	assert.Empty(t, f.store.Movements, "sin stock inicial no hay movimiento")
}

func TestItemCreate_AutoSnRequierePrefijoYSerializado(t *testing.T) {
	f := newCatalog(t)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ItemName: "X", PartNumber: "X-1", AutoSn: true, TracksSerialNumbers: true,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "auto_sn sin prefijo")

	_, err = f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ItemName: "X", PartNumber: "X-1", AutoSn: true, SnPrefix: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "auto_sn sobre ítem a granel")
}

func TestItemCreate_ValorNegativo(t *testing.T) {
	f := newCatalog(t)

	_, err := f.uc.Create(context.Background(), testActor, dto.CreateItemRequest{
		ItemName: "X", PartNumber: "X-1", Value: decimal.NewFromInt(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_CamposPuntuales(t *testing.T) {
	f := newCatalog(t)
	now := time.Now()
	f.store.Items["item-1"] = &entity.WarehouseItem{
		ID: "item-1", ItemName: "Viejo", PartNumber: "V-1",
		Value: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}

	newName := "Nuevo"
	resp, err := f.uc.Update("item-1", dto.UpdateItemRequest{ItemName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", resp.ItemName)
	assert.Equal(t, "V-1", resp.PartNumber, "los campos no enviados no cambian")
}

func TestItemResponse_SerializadoDerivaStockDelRegistro(t *testing.T) {
	f := newCatalog(t)
	now := time.Now()
	f.store.Items["item-s"] = &entity.WarehouseItem{
		ID: "item-s", ItemName: "ONT", PartNumber: "ONT-1",
		TracksSerialNumbers: true, MainWarehouse: 0,
		CreatedAt: now, UpdatedAt: now,
	}
	f.store.Serials["u1"] = &entity.SerialNumberStock{
		ID: "u1", ItemID: "item-s", SerialNumber: "SN-1",
		Location: entity.LocationMainWarehouse, Status: entity.SerialStatusAvailable,
	}
	f.store.Serials["u2"] = &entity.SerialNumberStock{
		ID: "u2", ItemID: "item-s", SerialNumber: "SN-2",
		Location: entity.LocationTechnician, Status: entity.SerialStatusAvailable, TechnicianID: testTechID,
	}
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-s", testTechID, 1))

	resp, err := f.uc.GetByID("item-s")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.MainWarehouse, "bodega = conteo de unidades MAIN_WAREHOUSE")
	assert.Equal(t, 1, resp.TotalTechnicianStock)
	assert.Equal(t, 2, resp.TotalStock)
}

func TestItemDelete_ConReferenciasEsConflicto(t *testing.T) {
	f := newCatalog(t)
	now := time.Now()
	f.store.Items["item-1"] = &entity.WarehouseItem{
		ID: "item-1", ItemName: "X", PartNumber: "X-1", CreatedAt: now, UpdatedAt: now,
	}
	f.store.Movements = append(f.store.Movements, &entity.ItemMovement{
		ID: "m1", ItemID: "item-1", MovementType: entity.MovementTypeAddStock, Quantity: 1,
	})

	err := f.uc.Delete("item-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, f.store.Items["item-1"], "el ítem sigue existiendo")
}

func TestItemDelete_SinReferencias(t *testing.T) {
	f := newCatalog(t)
	now := time.Now()
	f.store.Items["item-1"] = &entity.WarehouseItem{
		ID: "item-1", ItemName: "X", PartNumber: "X-1", CreatedAt: now, UpdatedAt: now,
	}

	require.NoError(t, f.uc.Delete("item-1"))
	assert.Nil(t, f.store.Items["item-1"])
}
