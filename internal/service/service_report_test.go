package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medlux/internal/logger"
	"github.com/MKhiriev/go-medlux/models"
)

func TestReportService_Build(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewReportService(gw, NewCriteriaService(gw, logger.Nop()), logger.Nop())
	ctx := asAdmin()

	seedEquipment(t, gw, models.Equipment{ID: "EQ-1", Modelo: "LX-30"}, models.Equipment{ID: "EQ-2"})
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i, rl := range []string{"300", "280", "abc"} {
		_, err := gw.Measurements.Append(ctx, models.Measurement{
			UserID:      "ANA",
			EquipID:     "EQ-1",
			DataHora:    base.Add(time.Duration(2-i) * time.Hour),
			TipoMedicao: "RL",
			Payload:     models.MeasurementPayload{Local: "BR-101", RL: rl},
			CreatedAt:   base,
		})
		require.NoError(t, err)
	}

	r, err := svc.Build(ctx, "eq-1")
	require.NoError(t, err)
	assert.Equal(t, "EQ-1", r.Equipment.ID)
	assert.Equal(t, models.SeedAdminID, r.GeneratedBy)
	assert.Len(t, r.Criteria, 4)
	require.Len(t, r.Measurements, 3)
	assert.Equal(t, "abc", r.Measurements[0].Payload.RL)
	assert.Len(t, r.EvolutionPoints(), 2)

	_, err = svc.Build(ctx, "EQ-404")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	_, err = svc.Build(as(anaIdentity), "EQ-2")
	assert.ErrorIs(t, err, ErrEquipmentNotVisible)
}

func TestReportService_Render(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewReportService(gw, NewCriteriaService(gw, logger.Nop()), logger.Nop())
	seedEquipment(t, gw, models.Equipment{ID: "EQ-1"})

	var buf bytes.Buffer
	require.NoError(t, svc.Render(asAdmin(), &buf, "EQ-1"))
	assert.Contains(t, buf.String(), "Equipamento EQ-1")
	assert.Contains(t, buf.String(), "NBR 14723")
}
