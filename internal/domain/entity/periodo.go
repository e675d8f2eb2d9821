package entity

import "gorm.io/gorm"

// Periodo is the closed set of reporting windows. Query predicates are mapped
// from these constants only; raw request strings are never interpolated.
type Periodo string

const (
	PeriodoHoje   Periodo = "hoje"
	PeriodoSemana Periodo = "semana"
	PeriodoMes    Periodo = "mes"

	// PeriodoTodos applies no time window (sale listings without a filter).
	PeriodoTodos Periodo = ""
)

// ParsePeriodo maps a query-string value to a reporting window, defaulting to
// today for anything unrecognized. Used by the dashboard.
func ParsePeriodo(s string) Periodo {
	switch Periodo(s) {
	case PeriodoSemana:
		return PeriodoSemana
	case PeriodoMes:
		return PeriodoMes
	default:
		return PeriodoHoje
	}
}

// ParsePeriodoFiltro maps a query-string value to an optional filter: anything
// unrecognized (including empty) means "no window". Used by sale listings.
func ParsePeriodoFiltro(s string) Periodo {
	switch Periodo(s) {
	case PeriodoHoje:
		return PeriodoHoje
	case PeriodoSemana:
		return PeriodoSemana
	case PeriodoMes:
		return PeriodoMes
	default:
		return PeriodoTodos
	}
}

// Scope restricts a vendas query to the window. Columns are qualified so the
// scope composes with joined queries.
func (p Periodo) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch p {
		case PeriodoHoje:
			return db.Where("DATE(vendas.data_venda) = CURRENT_DATE")
		case PeriodoSemana:
			return db.Where("vendas.data_venda >= CURRENT_DATE - INTERVAL '7 days'")
		case PeriodoMes:
			return db.Where("vendas.data_venda >= CURRENT_DATE - INTERVAL '30 days'")
		default:
			return db
		}
	}
}
