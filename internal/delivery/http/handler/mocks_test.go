package handler

import (
	"context"

	"pdv-estoque-api/internal/delivery/dto"
	"pdv-estoque-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProdutoUsecase mocks usecase.ProdutoUsecase.
type MockProdutoUsecase struct {
	mock.Mock
}

func (m *MockProdutoUsecase) List(ctx context.Context, search string, page, limit int) (*dto.ProdutoListResponse, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProdutoListResponse), args.Error(1)
}

func (m *MockProdutoUsecase) Create(ctx context.Context, req *dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProdutoResponse), args.Error(1)
}

func (m *MockProdutoUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProdutoResponse), args.Error(1)
}

func (m *MockProdutoUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVendaUsecase mocks usecase.VendaUsecase.
type MockVendaUsecase struct {
	mock.Mock
}

func (m *MockVendaUsecase) Create(ctx context.Context, req *dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VendaResponse), args.Error(1)
}

func (m *MockVendaUsecase) List(ctx context.Context, periodo entity.Periodo, page, limit int) (*dto.VendaListResponse, error) {
	args := m.Called(ctx, periodo, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VendaListResponse), args.Error(1)
}

// MockDashboardUsecase mocks usecase.DashboardUsecase.
type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, periodo entity.Periodo) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, periodo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}
