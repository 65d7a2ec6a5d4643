package warehouse_test

import (
	"context"
	"errors"
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

const (
	testAdminID = "00000000-0000-0000-0000-0000000000aa"
	testTechID  = "00000000-0000-0000-0000-0000000000t1"
	testTech2ID = "00000000-0000-0000-0000-0000000000t2"
)

var testActor = domain.Actor{UserID: testAdminID, Role: entity.RoleAdmin}

type engineFixture struct {
	store *testutil.Store
	uc    *warehouse.MovementUseCase
}

func newEngine(t *testing.T) *engineFixture {
	t.Helper()
	store := testutil.NewStore()
	uc := warehouse.NewMovementUseCase(
		&testutil.FakeTxRunner{S: store},
		&testutil.ItemRepo{S: store},
		&testutil.MovementRepo{S: store},
	)
	return &engineFixture{store: store, uc: uc}
}

func (f *engineFixture) seedBulkItem(id string, mainWarehouse int) {
	now := time.Now()
	f.store.Items[id] = &entity.WarehouseItem{
		ID: id, ItemName: "Cable UTP", PartNumber: "UTP-305",
		Value: decimal.NewFromInt(12), MainWarehouse: mainWarehouse,
		CreatedAt: now, UpdatedAt: now,
	}
}

func (f *engineFixture) seedSerializedItem(id, prefix string, autoSn bool) {
	now := time.Now()
	f.store.Items[id] = &entity.WarehouseItem{
		ID: id, ItemName: "Router óptico", PartNumber: "ONT-100",
		Value: decimal.NewFromInt(85), TracksSerialNumbers: true,
		AutoSn: autoSn, SnPrefix: prefix,
		CreatedAt: now, UpdatedAt: now,
	}
}

func (f *engineFixture) seedUnit(id, itemID, serial, location, status, techID string) {
	now := time.Now()
	f.store.Serials[id] = &entity.SerialNumberStock{
		ID: id, ItemID: itemID, SerialNumber: serial,
		Location: location, Status: status, TechnicianID: techID,
		CreatedAt: now, UpdatedAt: now,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Granel
// ─────────────────────────────────────────────────────────────────────────────

func TestBulk_AddStock_IncrementaBodegaYAudita(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 10)

	resp, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeAddStock, Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, f.store.Items["item-1"].MainWarehouse)
	assert.Equal(t, 5, resp.Quantity)
	assert.Equal(t, 1, resp.Sign)
	assert.Equal(t, testAdminID, resp.CreatedByID, "el movimiento registra al actor verificado")
	require.Len(t, f.store.Movements, 1)
}

func TestBulk_RemoveStock_InsuficienteNoMutaNada(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 3)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeRemoveStock, Quantity: 10,
	})

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available, "el error reporta el disponible real")
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	// Operación fallida: sin rastro en el historial, contador intacto
	assert.Equal(t, 3, f.store.Items["item-1"].MainWarehouse)
	assert.Empty(t, f.store.Movements)
}

func TestBulk_TransferToTech_MueveYConserva(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 10)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeTransferToTech,
		Quantity: 4, ToUserID: testTechID,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, f.store.Items["item-1"].MainWarehouse)
	ts := f.store.TechStocks["item-1|"+testTechID]
	require.NotNil(t, ts)
	assert.Equal(t, 4, ts.Quantity)

	// Conservación: bodega + técnicos = total original (traslado, signo 0)
	assert.Equal(t, 10, f.store.Items["item-1"].MainWarehouse+ts.Quantity)
}

func TestBulk_TransferToTech_AcumulaSobreStockExistente(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 10)
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-1", testTechID, 2))

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeTransferToTech,
		Quantity: 3, ToUserID: testTechID,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, f.store.TechStocks["item-1|"+testTechID].Quantity)
}

func TestBulk_TransferFromTech_DevuelveYEliminaFilaEnCero(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 6)
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-1", testTechID, 4))

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeTransferFromTech,
		Quantity: 4, FromUserID: testTechID,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, f.store.Items["item-1"].MainWarehouse)
	// La fila llegó a 0: se elimina, no se deja en cero
	assert.Nil(t, f.store.TechStocks["item-1|"+testTechID])
}

func TestBulk_TransferFromTech_SinFilaEsCero(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 6)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeTransferFromTech,
		Quantity: 1, FromUserID: testTechID,
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available, "ausencia de fila se lee como cero")
}

func TestBulk_Use_DescuentaSinDevolverABodega(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 6)
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-1", testTechID, 3))

	resp, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeUse,
		Quantity: 2, FromUserID: testTechID,
	})
	require.NoError(t, err)

	assert.Equal(t, -1, resp.Sign)
	assert.Equal(t, 6, f.store.Items["item-1"].MainWarehouse, "USE no devuelve a bodega")
	assert.Equal(t, 1, f.store.TechStocks["item-1|"+testTechID].Quantity)
}

func TestBulk_CantidadInvalida(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 6)

	for _, qty := range []int{0, -5} {
		_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
			ItemID: "item-1", MovementType: entity.MovementTypeAddStock, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serializados
// ─────────────────────────────────────────────────────────────────────────────

func TestSerialized_AddManual_CreaUnidadesEnBodega(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "", false)

	resp, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock,
		SerialNumbers: []string{"ABC-001", "ABC-002"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Quantity)
	assert.Len(t, resp.SerialNumberIDs, 2)

	units := f.store.SerialsOf("item-s")
	require.Len(t, units, 2)
	for _, u := range units {
		assert.Equal(t, entity.LocationMainWarehouse, u.Location)
		assert.Equal(t, entity.SerialStatusAvailable, u.Status)
	}
	// El contador del ítem no se toca: el stock serializado se deriva del registro
	assert.Equal(t, 0, f.store.Items["item-s"].MainWarehouse)
}

func TestSerialized_AddManual_RechazaDuplicados(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "", false)
	f.seedUnit("u1", "item-s", "ABC-001", entity.LocationMainWarehouse, entity.SerialStatusAvailable, "")

	// Colisión con una serie ya registrada del ítem
	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock,
		SerialNumbers: []string{"ABC-001", "ABC-002"},
	})
	var dup *domain.DuplicateSerialNumberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"ABC-001"}, dup.SerialNumbers)
	assert.Len(t, f.store.SerialsOf("item-s"), 1, "rechazo total, no alta parcial")

	// Repetido dentro de la misma petición
	_, err = f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock,
		SerialNumbers: []string{"XYZ-1", "XYZ-1"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSerialNumber)
}

func TestSerialized_AddAuto_ContinuaSecuencia(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock, AutoCount: 3,
	})
	require.NoError(t, err)

	units := f.store.SerialsOf("item-s")
	require.Len(t, units, 3)
	assert.Equal(t, "SN-1", units[0].SerialNumber)
	assert.Equal(t, "SN-2", units[1].SerialNumber)
	assert.Equal(t, "SN-3", units[2].SerialNumber)

	// Una alta manual posterior con sufijo mayor: la secuencia continúa desde el máximo
	_, err = f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock,
		SerialNumbers: []string{"SN-10"},
	})
	require.NoError(t, err)

	_, err = f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock, AutoCount: 1,
	})
	require.NoError(t, err)

	serials, _ := (&testutil.SerialRepo{S: f.store}).ListSerialsByItem("item-s")
	assert.Contains(t, serials, "SN-11", "el escaneo de sufijo máximo tolera altas manuales")
}

func TestSerialized_AddAuto_SinPrefijoConfigurado(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "", false)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeAddStock, AutoCount: 2,
	})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestSerialized_TransferToTech_TransicionaYDerivaContador(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationMainWarehouse, entity.SerialStatusAvailable, "")
	f.seedUnit("u2", "item-s", "SN-2", entity.LocationMainWarehouse, entity.SerialStatusAvailable, "")

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeTransferToTech,
		SerialNumberIDs: []string{"u1", "u2"}, ToUserID: testTechID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LocationTechnician, f.store.Serials["u1"].Location)
	assert.Equal(t, testTechID, f.store.Serials["u1"].TechnicianID)
	// Contador derivado recalculado desde el conteo real
	assert.Equal(t, 2, f.store.TechStocks["item-s|"+testTechID].Quantity)
}

func TestSerialized_TransferFromTech_TecnicoEquivocado(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationTechnician, entity.SerialStatusAvailable, testTechID)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeTransferFromTech,
		SerialNumberIDs: []string{"u1"}, FromUserID: testTech2ID,
	})
	assert.ErrorIs(t, err, domain.ErrUnitNotAssigned)
	assert.Equal(t, testTechID, f.store.Serials["u1"].TechnicianID, "la unidad no cambió de manos")
}

func TestSerialized_RemoveStock_TerminalLost(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationMainWarehouse, entity.SerialStatusAvailable, "")

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeRemoveStock,
		SerialNumberIDs: []string{"u1"},
	})
	require.NoError(t, err)

	u := f.store.Serials["u1"]
	require.NotNil(t, u, "la unidad nunca se borra, queda para auditoría")
	assert.Equal(t, entity.LocationUsed, u.Location)
	assert.Equal(t, entity.SerialStatusLost, u.Status)
}

func TestSerialized_Use_TerminalYRecalculaTenedores(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationTechnician, entity.SerialStatusAvailable, testTechID)
	f.seedUnit("u2", "item-s", "SN-2", entity.LocationTechnician, entity.SerialStatusAvailable, testTechID)
	f.seedUnit("u3", "item-s", "SN-3", entity.LocationTechnician, entity.SerialStatusAvailable, testTech2ID)
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-s", testTechID, 2))
	require.NoError(t, (&testutil.TechStockRepo{S: f.store}).Upsert("item-s", testTech2ID, 1))

	// USE sobre unidades de dos tenedores distintos
	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeUse,
		SerialNumberIDs: []string{"u1", "u3"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LocationUsed, f.store.Serials["u1"].Location)
	assert.Equal(t, entity.SerialStatusInUse, f.store.Serials["u1"].Status)
	assert.Equal(t, 1, f.store.TechStocks["item-s|"+testTechID].Quantity)
	assert.Nil(t, f.store.TechStocks["item-s|"+testTech2ID], "contador en 0 elimina la fila")
}

func TestSerialized_Use_UnidadTerminalNoReutilizable(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationUsed, entity.SerialStatusInUse, "")

	for _, mt := range []string{
		entity.MovementTypeUse,
		entity.MovementTypeRemoveStock,
		entity.MovementTypeTransferToTech,
	} {
		_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
			ItemID: "item-s", MovementType: mt,
			SerialNumberIDs: []string{"u1"}, ToUserID: testTechID,
		})
		assert.Error(t, err, "estado terminal es definitivo para %s", mt)
	}
}

func TestSerialized_CantidadDebeCoincidirConIDs(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)
	f.seedUnit("u1", "item-s", "SN-1", entity.LocationMainWarehouse, entity.SerialStatusAvailable, "")

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeRemoveStock,
		Quantity: 3, SerialNumberIDs: []string{"u1"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSerialized_UnidadInexistente(t *testing.T) {
	f := newEngine(t)
	f.seedSerializedItem("item-s", "SN", true)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-s", MovementType: entity.MovementTypeRemoveStock,
		SerialNumberIDs: []string{"no-existe"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validaciones generales
// ─────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_TipoInvalido(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 5)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "item-1", MovementType: "TELEPORT", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ItemInexistente(t *testing.T) {
	f := newEngine(t)

	_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
		ItemID: "fantasma", MovementType: entity.MovementTypeAddStock, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyMovement_SinActor(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 5)

	_, err := f.uc.ApplyMovement(context.Background(), domain.Actor{}, warehouse.MovementInput{
		ItemID: "item-1", MovementType: entity.MovementTypeAddStock, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_MasRecientesPrimero(t *testing.T) {
	f := newEngine(t)
	f.seedBulkItem("item-1", 0)

	for _, qty := range []int{1, 2, 3} {
		_, err := f.uc.ApplyMovement(context.Background(), testActor, warehouse.MovementInput{
			ItemID: "item-1", MovementType: entity.MovementTypeAddStock, Quantity: qty,
		})
		require.NoError(t, err)
	}

	resp, err := f.uc.ListMovements("item-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.Items[0].Quantity, "el último movimiento aparece primero")
	assert.Equal(t, 1, resp.Items[2].Quantity)
}
