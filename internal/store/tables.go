package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-medlux/models"
)

// Index names accepted by [Collection.QueryByIndex].
const (
	IndexRole     = "role"
	IndexTipo     = "tipo"
	IndexModelo   = "modelo"
	IndexUserID   = "user_id"
	IndexEquipID  = "equip_id"
	IndexAtivo    = "ativo"
	IndexDataHora = "data_hora"
	IndexByNorm   = "by_norm"
	IndexVinculo  = "vinculo_id"
)

var usersSpec = tableSpec[models.User]{
	table:   "users",
	key:     "user_id",
	columns: []string{"user_id", "nome", "role", "pin_salt", "pin_hash", "created_at"},
	indexes: map[string]string{IndexRole: "role"},
	scan: func(s rowScanner) (models.User, error) {
		var u models.User
		err := s.Scan(&u.UserID, &u.Nome, &u.Role, &u.PinSalt, &u.PinHash, &u.CreatedAt)
		u.CreatedAt = u.CreatedAt.UTC()
		return u, err
	},
	values: func(u models.User) []any {
		return []any{u.UserID, u.Nome, u.Role, u.PinSalt, u.PinHash, u.CreatedAt.UTC()}
	},
	keyOf: func(u models.User) any { return u.UserID },
}

var equipmentSpec = tableSpec[models.Equipment]{
	table: "equipamentos",
	key:   "id",
	columns: []string{
		"id", "tipo", "modelo", "numero_serie", "fabricante",
		"responsavel_atual", "data_ultima_calibracao", "observacoes", "updated_at",
	},
	indexes: map[string]string{IndexTipo: "tipo", IndexModelo: "modelo"},
	scan: func(s rowScanner) (models.Equipment, error) {
		var e models.Equipment
		err := s.Scan(&e.ID, &e.Tipo, &e.Modelo, &e.NumeroSerie, &e.Fabricante,
			&e.ResponsavelAtual, &e.DataUltimaCalibracao, &e.Observacoes, &e.UpdatedAt)
		e.UpdatedAt = e.UpdatedAt.UTC()
		return e, err
	},
	values: func(e models.Equipment) []any {
		return []any{e.ID, e.Tipo, e.Modelo, e.NumeroSerie, e.Fabricante,
			e.ResponsavelAtual, e.DataUltimaCalibracao, e.Observacoes, e.UpdatedAt.UTC()}
	},
	keyOf: func(e models.Equipment) any { return e.ID },
}

var assignmentsSpec = tableSpec[models.Assignment]{
	table:   "vinculos",
	key:     "id",
	columns: []string{"id", "user_id", "equip_id", "ativo", "data_inicio", "data_fim", "observacao"},
	indexes: map[string]string{IndexUserID: "user_id", IndexEquipID: "equip_id", IndexAtivo: "ativo"},
	scan: func(s rowScanner) (models.Assignment, error) {
		var (
			a   models.Assignment
			fim sql.NullTime
		)
		err := s.Scan(&a.ID, &a.UserID, &a.EquipID, &a.Ativo, &a.DataInicio, &fim, &a.Observacao)
		a.DataInicio = a.DataInicio.UTC()
		if fim.Valid {
			t := fim.Time.UTC()
			a.DataFim = &t
		}
		return a, err
	},
	values: func(a models.Assignment) []any {
		return []any{a.ID, a.UserID, a.EquipID, a.Ativo, a.DataInicio.UTC(), nullTime(a.DataFim), a.Observacao}
	},
	keyOf: func(a models.Assignment) any { return a.ID },
}

var measurementsSpec = tableSpec[models.Measurement]{
	table:   "medicoes",
	key:     "id",
	autoKey: true,
	columns: []string{"id", "user_id", "equip_id", "data_hora", "tipo_medicao", "payload", "aprovado", "created_at"},
	indexes: map[string]string{IndexUserID: "user_id", IndexEquipID: "equip_id", IndexDataHora: "data_hora"},
	scan: func(s rowScanner) (models.Measurement, error) {
		var (
			m        models.Measurement
			aprovado sql.NullBool
		)
		err := s.Scan(&m.ID, &m.UserID, &m.EquipID, &m.DataHora, &m.TipoMedicao, &m.Payload, &aprovado, &m.CreatedAt)
		m.DataHora = m.DataHora.UTC()
		m.CreatedAt = m.CreatedAt.UTC()
		if aprovado.Valid {
			v := aprovado.Bool
			m.Aprovado = &v
		}
		return m, err
	},
	values: func(m models.Measurement) []any {
		var aprovado sql.NullBool
		if m.Aprovado != nil {
			aprovado = sql.NullBool{Bool: *m.Aprovado, Valid: true}
		}
		return []any{m.UserID, m.EquipID, m.DataHora.UTC(), m.TipoMedicao, m.Payload, aprovado, m.CreatedAt.UTC()}
	},
	keyOf: func(m models.Measurement) any { return m.ID },
}

var criteriaSpec = tableSpec[models.Criterion]{
	table:   "criteria",
	key:     "id",
	columns: []string{"id", "norm", "type", "color", "min_value"},
	indexes: map[string]string{IndexByNorm: "norm"},
	scan: func(s rowScanner) (models.Criterion, error) {
		var c models.Criterion
		err := s.Scan(&c.ID, &c.Norm, &c.Type, &c.Color, &c.Min)
		return c, err
	},
	values: func(c models.Criterion) []any {
		return []any{c.ID, c.Norm, c.Type, c.Color, c.Min}
	},
	keyOf: func(c models.Criterion) any { return c.ID },
}

var periodsSpec = tableSpec[models.AssignmentPeriod]{
	table:   "vinculo_periodos",
	key:     "id",
	autoKey: true,
	columns: []string{"id", "vinculo_id", "user_id", "equip_id", "data_inicio", "data_fim", "observacao", "archived_at"},
	indexes: map[string]string{IndexVinculo: "vinculo_id"},
	scan: func(s rowScanner) (models.AssignmentPeriod, error) {
		var p models.AssignmentPeriod
		err := s.Scan(&p.ID, &p.VinculoID, &p.UserID, &p.EquipID, &p.DataInicio, &p.DataFim, &p.Observacao, &p.ArchivedAt)
		p.DataInicio = p.DataInicio.UTC()
		p.DataFim = p.DataFim.UTC()
		p.ArchivedAt = p.ArchivedAt.UTC()
		return p, err
	},
	values: func(p models.AssignmentPeriod) []any {
		return []any{p.VinculoID, p.UserID, p.EquipID, p.DataInicio.UTC(), p.DataFim.UTC(), p.Observacao, p.ArchivedAt.UTC()}
	},
	keyOf: func(p models.AssignmentPeriod) any { return p.ID },
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
