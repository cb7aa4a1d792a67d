package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medlux/internal/store"
	"github.com/MKhiriev/go-medlux/models"
)

func saveReq(id, modelo string) models.SaveEquipmentRequest {
	return models.SaveEquipmentRequest{Equipment: models.Equipment{ID: id, Modelo: modelo, Tipo: "Horizontal"}}
}

func TestEquipmentService_CreateAndList(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestEquipmentService(gw)
	ctx := asAdmin()

	e, err := svc.Create(ctx, saveReq(" eq-2 ", " LX-30 "))
	require.NoError(t, err)
	assert.Equal(t, "EQ-2", e.ID)
	assert.Equal(t, "LX-30", e.Modelo)
	assert.False(t, e.UpdatedAt.IsZero())

	_, err = svc.Create(ctx, saveReq("EQ-1", ""))
	require.NoError(t, err)

	_, err = svc.Create(ctx, saveReq("eq-2", "other"))
	assert.ErrorIs(t, err, ErrEquipmentExists)

	_, err = svc.Create(ctx, saveReq("   ", ""))
	assert.ErrorIs(t, err, ErrEquipmentIDRequired)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EQ-1", list[0].ID)
	assert.Equal(t, "LX-30", list[1].Modelo)

	got, err := svc.Get(ctx, "eq-1")
	require.NoError(t, err)
	assert.Equal(t, "EQ-1", got.ID)

	_, err = svc.Get(ctx, "EQ-9")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestEquipmentService_UpdateInPlace(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestEquipmentService(gw)
	ctx := asAdmin()

	_, err := svc.Create(ctx, saveReq("EQ-1", "LX-30"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, "EQ-1", saveReq("eq-1", "LX-40"))
	require.NoError(t, err)

	got, err := gw.Equipment.Get(ctx, "EQ-1")
	require.NoError(t, err)
	assert.Equal(t, "LX-40", got.Modelo)

	_, err = svc.Update(ctx, "EQ-9", saveReq("EQ-9", "x"))
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestEquipmentService_Rename(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestEquipmentService(gw)
	ctx := asAdmin()

	_, err := svc.Create(ctx, saveReq("EQ-1", "LX-30"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, saveReq("EQ-2", "LX-50"))
	require.NoError(t, err)

	t.Run("not confirmed", func(t *testing.T) {
		_, err := svc.Update(ctx, "EQ-1", saveReq("EQ-3", "LX-30"))
		assert.ErrorIs(t, err, ErrRenameNotConfirmed)
		_, err = gw.Equipment.Get(ctx, "EQ-3")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("target in use", func(t *testing.T) {
		req := saveReq("EQ-2", "changed")
		req.ConfirmRename = true
		_, err := svc.Update(ctx, "EQ-1", req)
		assert.ErrorIs(t, err, ErrEquipmentIDInUse)

		old, err := gw.Equipment.Get(ctx, "EQ-1")
		require.NoError(t, err)
		assert.Equal(t, "LX-30", old.Modelo)
		taken, err := gw.Equipment.Get(ctx, "EQ-2")
		require.NoError(t, err)
		assert.Equal(t, "LX-50", taken.Modelo)
	})

	t.Run("confirmed", func(t *testing.T) {
		req := saveReq("eq-3", "LX-30")
		req.ConfirmRename = true
		e, err := svc.Update(ctx, "EQ-1", req)
		require.NoError(t, err)
		assert.Equal(t, "EQ-3", e.ID)

		_, err = gw.Equipment.Get(ctx, "EQ-1")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = gw.Equipment.Get(ctx, "EQ-3")
		assert.NoError(t, err)

		n, err := gw.Equipment.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("missing original", func(t *testing.T) {
		req := saveReq("EQ-8", "x")
		req.ConfirmRename = true
		_, err := svc.Update(ctx, "EQ-7", req)
		assert.ErrorIs(t, err, ErrEquipmentNotFound)
		_, err = gw.Equipment.Get(ctx, "EQ-8")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestEquipmentService_Delete(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestEquipmentService(gw)
	ctx := asAdmin()

	_, err := svc.Create(ctx, saveReq("EQ-1", "LX-30"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(as(anaIdentity), "EQ-1"), ErrAdminOnly)
	require.NoError(t, svc.Delete(ctx, "eq-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "EQ-1"), ErrEquipmentNotFound)
}

func TestEquipmentService_AdminOnlyWrites(t *testing.T) {
	svc := newTestEquipmentService(newTestGateway(t))
	ctx := as(anaIdentity)

	_, err := svc.Create(ctx, saveReq("EQ-1", ""))
	assert.ErrorIs(t, err, ErrAdminOnly)
	_, err = svc.Update(ctx, "EQ-1", saveReq("EQ-1", ""))
	assert.ErrorIs(t, err, ErrAdminOnly)

	// reads are open to every signed-in user
	_, err = svc.List(ctx)
	assert.NoError(t, err)
}
