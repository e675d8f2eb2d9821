package usecase

import (
	"testing"

	"pdv-estoque-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB opens GORM over a sqlmock connection. Repository calls are mocked
// at the interface level, so only transaction boundaries reach the driver.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	return db, dbMock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)
	return log
}

// MockProdutoRepository mocks repository.ProdutoRepository.
type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) Create(db *gorm.DB, produto *entity.Produto) error {
	args := m.Called(db, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) FindAll(db *gorm.DB, search string, limit, offset int) ([]entity.Produto, int64, error) {
	args := m.Called(db, search, limit, offset)
	return args.Get(0).([]entity.Produto), args.Get(1).(int64), args.Error(2)
}

func (m *MockProdutoRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Produto, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Produto), args.Error(1)
}

func (m *MockProdutoRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Produto, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Produto), args.Error(1)
}

func (m *MockProdutoRepository) Update(db *gorm.DB, produto *entity.Produto) error {
	args := m.Called(db, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

func (m *MockProdutoRepository) ResumoEstoque(db *gorm.DB, limiteCritico int) (*entity.ResumoEstoque, error) {
	args := m.Called(db, limiteCritico)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ResumoEstoque), args.Error(1)
}

func (m *MockProdutoRepository) FindEstoqueBaixo(db *gorm.DB, limiteCritico, limit int) ([]entity.Produto, error) {
	args := m.Called(db, limiteCritico, limit)
	return args.Get(0).([]entity.Produto), args.Error(1)
}

// MockVendaRepository mocks repository.VendaRepository.
type MockVendaRepository struct {
	mock.Mock
}

func (m *MockVendaRepository) Create(db *gorm.DB, venda *entity.Venda) error {
	args := m.Called(db, venda)
	return args.Error(0)
}

func (m *MockVendaRepository) FindAll(db *gorm.DB, periodo entity.Periodo, limit, offset int) ([]entity.VendaDetalhada, int64, error) {
	args := m.Called(db, periodo, limit, offset)
	return args.Get(0).([]entity.VendaDetalhada), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendaRepository) FindUltimas(db *gorm.DB, limit int) ([]entity.VendaDetalhada, error) {
	args := m.Called(db, limit)
	return args.Get(0).([]entity.VendaDetalhada), args.Error(1)
}

func (m *MockVendaRepository) CountByProdutoID(db *gorm.DB, produtoID uuid.UUID) (int64, error) {
	args := m.Called(db, produtoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendaRepository) Resumo(db *gorm.DB, periodo entity.Periodo) (*entity.ResumoVendas, error) {
	args := m.Called(db, periodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ResumoVendas), args.Error(1)
}

func (m *MockVendaRepository) MaisVendidos(db *gorm.DB, periodo entity.Periodo, limit int) ([]entity.ProdutoMaisVendido, error) {
	args := m.Called(db, periodo, limit)
	return args.Get(0).([]entity.ProdutoMaisVendido), args.Error(1)
}

func (m *MockVendaRepository) HorarioPico(db *gorm.DB, periodo entity.Periodo) (*entity.HorarioPico, error) {
	args := m.Called(db, periodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HorarioPico), args.Error(1)
}

func (m *MockVendaRepository) VendasPorDia(db *gorm.DB, dias int) ([]entity.VendaDiaria, error) {
	args := m.Called(db, dias)
	return args.Get(0).([]entity.VendaDiaria), args.Error(1)
}
