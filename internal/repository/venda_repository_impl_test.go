package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendaRepositoryVendasPorDia(t *testing.T) {
	db, dbMock := newTestDB(t)
	repo := NewVendaRepository()

	// Seven trailing days land in the window; the limit keeps the series at
	// seven even when the inclusive bound catches part of an eighth date.
	rows := sqlmock.NewRows([]string{"data", "total_vendas", "faturamento"})
	for dia := 0; dia < 7; dia++ {
		rows.AddRow(time.Now().AddDate(0, 0, -dia).Truncate(24*time.Hour), int64(dia+1), "60.00")
	}

	dbMock.ExpectQuery(`SELECT DATE\(vendas\.data_venda\) AS data, COUNT\(\*\) AS total_vendas, COALESCE\(SUM\(valor_total\), 0\) AS faturamento FROM "vendas" WHERE vendas\.data_venda >= CURRENT_DATE - INTERVAL '1 day' \* \$1 GROUP BY DATE\(vendas\.data_venda\) ORDER BY data DESC LIMIT \$2`).
		WithArgs(7, 7).
		WillReturnRows(rows)

	serie, err := repo.VendasPorDia(db, 7)

	require.NoError(t, err)
	assert.Len(t, serie, 7)
	assert.Equal(t, int64(1), serie[0].TotalVendas)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
