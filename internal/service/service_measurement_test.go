package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medlux/models"
)

func TestMeasurementService_VisibleEquipment(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestMeasurementService(gw)
	assignments := newTestAssignmentService(gw)

	seedEquipment(t, gw,
		models.Equipment{ID: "EQ-1"}, models.Equipment{ID: "EQ-2"}, models.Equipment{ID: "EQ-3"})

	for _, equipID := range []string{"EQ-3", "EQ-1", "EQ-GONE"} {
		_, err := assignments.Create(asAdmin(), models.CreateAssignmentRequest{UserID: "ANA", EquipID: equipID})
		require.NoError(t, err)
	}
	_, err := assignments.End(asAdmin(), "ANA|EQ-1")
	require.NoError(t, err)

	visible, err := svc.VisibleEquipment(as(anaIdentity))
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "EQ-3", visible[0].ID)

	all, err := svc.VisibleEquipment(asAdmin())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.VisibleEquipment(as(models.Identity{}))
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestMeasurementService_Save(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestMeasurementService(gw)

	_, err := svc.Save(as(anaIdentity), models.SaveMeasurementRequest{EquipID: "EQ-1", Local: "BR-101"})
	assert.ErrorIs(t, err, ErrNoVisibleEquipment)

	seedEquipment(t, gw, models.Equipment{ID: "EQ-1"}, models.Equipment{ID: "EQ-2"})
	_, err = newTestAssignmentService(gw).Create(asAdmin(), models.CreateAssignmentRequest{UserID: "ANA", EquipID: "EQ-1"})
	require.NoError(t, err)

	ctx := as(anaIdentity)

	_, err = svc.Save(ctx, models.SaveMeasurementRequest{EquipID: "EQ-1", Local: "  "})
	assert.ErrorIs(t, err, ErrMeasurementFieldsRequired)

	_, err = svc.Save(ctx, models.SaveMeasurementRequest{EquipID: "EQ-2", Local: "BR-101"})
	assert.ErrorIs(t, err, ErrEquipmentNotVisible)

	m, err := svc.Save(ctx, models.SaveMeasurementRequest{EquipID: "eq-1", Local: " BR-101 ", RL: "250,5", Observacao: "seco"})
	require.NoError(t, err)
	assert.Positive(t, m.ID)
	assert.Equal(t, "ANA", m.UserID)
	assert.Equal(t, "EQ-1", m.EquipID)
	assert.Equal(t, models.DefaultMeasurementType, m.TipoMedicao)
	assert.Equal(t, "BR-101", m.Payload.Local)
	assert.Nil(t, m.Aprovado)

	stored, err := gw.Measurements.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Payload, stored.Payload)

	// admins may record against any equipment
	_, err = svc.Save(asAdmin(), models.SaveMeasurementRequest{EquipID: "EQ-2", Local: "SP-330", TipoMedicao: "RV"})
	assert.NoError(t, err)
}

func TestMeasurementService_Recent(t *testing.T) {
	gw := newTestGateway(t)
	svc := newTestMeasurementService(gw)
	ctx := asAdmin()

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		user := "ANA"
		if i%3 == 0 {
			user = "BIA"
		}
		_, err := gw.Measurements.Append(ctx, models.Measurement{
			UserID:      user,
			EquipID:     "EQ-1",
			DataHora:    base.Add(time.Duration(i) * time.Minute),
			TipoMedicao: "RL",
			CreatedAt:   base,
		})
		require.NoError(t, err)
	}

	all, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 10)
	assert.True(t, all[0].DataHora.Equal(base.Add(11*time.Minute)))
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].DataHora.After(all[i-1].DataHora))
	}

	own, err := svc.Recent(as(anaIdentity), 3)
	require.NoError(t, err)
	require.Len(t, own, 3)
	for _, m := range own {
		assert.Equal(t, "ANA", m.UserID)
	}
	assert.True(t, own[0].DataHora.Equal(base.Add(11*time.Minute)))
}
