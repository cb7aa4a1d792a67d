// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing (pt-BR) messages shared by the HTTP
// handlers, the middlewares and the terminal client.
//
// All Msg* constants are written into response bodies or shown in the UI.
package app

// Authentication and session.
const (
	// MsgInvalidPIN is returned when a PIN is not exactly four digits.
	MsgInvalidPIN = "PIN inválido. Use 4 dígitos."

	MsgUserNotFound = "Usuário não encontrado."
	MsgWrongPIN     = "PIN incorreto."

	// MsgLoginRequired is returned to anonymous requests on protected routes.
	MsgLoginRequired = "Sessão expirada ou inexistente. Faça login novamente."

	MsgLoggedOut = "Sessão encerrada."
)

// Equipment.
const (
	MsgEquipmentIDRequired = "Informe o ID do equipamento."
	MsgEquipmentExists     = "Já existe um equipamento com este ID."
	MsgEquipmentIDInUse    = "ID já em uso. Escolha outro."
	MsgRenameCancelled     = "Renomeio cancelado."
	MsgSaved               = "Salvo com sucesso."
	MsgEquipmentDeleted    = "Equipamento excluído."
	MsgEquipmentNotFound   = "Equipamento não encontrado."
)

// Users.
const (
	MsgAdminOnlyUsers  = "Apenas admin pode criar usuários."
	MsgUserExists      = "Usuário já existe."
	MsgPINUpdated      = "PIN atualizado."
	MsgPINResetInvalid = "PIN inválido ou cancelado."
	MsgUserCreated     = "Usuário criado."

	// MsgUserFieldsRequired is returned when user id or name is blank.
	MsgUserFieldsRequired = "Informe ID e nome do usuário."
)

// Assignments.
const (
	MsgAdminOnlyAssignments     = "Apenas admin pode criar vínculos."
	MsgAssignmentFieldsRequired = "Selecione usuário e equipamento."
	MsgAssignmentActive         = "Vínculo já está ativo."
	MsgAssignmentCreated        = "Vínculo criado."
	MsgAssignmentNotFound       = "Vínculo não encontrado."
	MsgAssignmentEnded          = "Vínculo encerrado."
)

// Measurements and reports.
const (
	MsgMeasurementFieldsRequired = "Informe equipamento e local."
	MsgNoVisibleEquipment        = "Nenhum equipamento disponível."
	MsgMeasurementSaved          = "Medição salva."

	// MsgEquipmentNotVisible is returned when an operator targets equipment
	// that is not assigned to them.
	MsgEquipmentNotVisible = "Equipamento não disponível para este usuário."
)

// Generic.
const (
	// MsgAdminOnly is returned for admin-only operations without a more
	// specific message.
	MsgAdminOnly = "Apenas admin pode executar esta ação."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "Dados inválidos."

	// MsgNotFound is returned for unknown routes and records.
	MsgNotFound = "Não encontrado."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Storage details never reach the client.
	MsgInternalServerError = "Erro interno. Tente novamente."

	MsgCriteriaSaved = "Critérios salvos."
)
