// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medlux/models"
)

func TestValidPIN(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"2308", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{" 123", false},
		{"", false},
		{"１２３４", false},
		{"1234\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPIN(tt.pin))
		})
	}
}

func TestRequestValidator_Login(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LoginRequest{UserID: "RANIERI", PIN: "2308"}))
	// user id is checked by the lookup, not by default
	require.NoError(t, v.Validate(ctx, models.LoginRequest{PIN: "2308"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{UserID: "X", PIN: "12"}), ErrInvalidPIN)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{PIN: "abcd"}), ErrInvalidPIN)

	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{PIN: "2308"}, FieldUserID, FieldPIN), ErrEmptyUserID)
}

func TestRequestValidator_CreateUser(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := models.CreateUserRequest{UserID: "ANA", Nome: "Ana", PIN: "1234"}
	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	tests := []struct {
		name    string
		mutate  func(r *models.CreateUserRequest)
		wantErr error
	}{
		{"empty user id", func(r *models.CreateUserRequest) { r.UserID = "  " }, ErrEmptyUserID},
		{"empty nome", func(r *models.CreateUserRequest) { r.Nome = "" }, ErrEmptyNome},
		{"short pin", func(r *models.CreateUserRequest) { r.PIN = "123" }, ErrInvalidPIN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.ErrorIs(t, v.Validate(ctx, req), tt.wantErr)
		})
	}

	t.Run("role checked only when named", func(t *testing.T) {
		req := valid
		req.Role = "root"
		require.NoError(t, v.Validate(ctx, req))
		assert.ErrorIs(t, v.Validate(ctx, req, FieldRole), ErrInvalidRole)

		req.Role = models.RoleAdmin
		assert.NoError(t, v.Validate(ctx, req, FieldRole))
	})
}

func TestRequestValidator_OtherRequests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ResetPINRequest{PIN: "9999"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ResetPINRequest{PIN: "99"}), ErrInvalidPIN)

	assert.NoError(t, v.Validate(ctx, models.SaveEquipmentRequest{Equipment: models.Equipment{ID: "EQ-1"}}))
	assert.ErrorIs(t, v.Validate(ctx, &models.SaveEquipmentRequest{}), ErrEmptyEquipID)

	assert.NoError(t, v.Validate(ctx, models.CreateAssignmentRequest{UserID: "ANA", EquipID: "EQ-1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateAssignmentRequest{EquipID: "EQ-1"}), ErrEmptyUserID)
	assert.ErrorIs(t, v.Validate(ctx, &models.CreateAssignmentRequest{UserID: "ANA"}), ErrEmptyEquipID)

	assert.NoError(t, v.Validate(ctx, models.SaveMeasurementRequest{EquipID: "EQ-1", Local: "BR-101"}))
	assert.ErrorIs(t, v.Validate(ctx, models.SaveMeasurementRequest{Local: "BR-101"}), ErrEmptyEquipID)
	assert.ErrorIs(t, v.Validate(ctx, &models.SaveMeasurementRequest{EquipID: "EQ-1"}), ErrEmptyLocal)
}

func TestRequestValidator_UnknownFieldAndType(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.ResetPINRequest{PIN: "1234"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "nope")

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
}

func TestIsMissingField(t *testing.T) {
	assert.True(t, IsMissingField(ErrEmptyEquipID))
	assert.True(t, IsMissingField(ErrEmptyLocal))
	assert.False(t, IsMissingField(ErrInvalidPIN))
	assert.False(t, IsMissingField(nil))
}
