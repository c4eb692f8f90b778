package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

// MockDrillService is a mock implementation of service.DrillService.
type MockDrillService struct {
	mock.Mock
}

func (m *MockDrillService) Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error) {
	args := m.Called(ctx, caseText, witnessName, examType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockDrillService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockDrillService) Draw(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockDrillService) Answer(ctx context.Context, id uuid.UUID, ruling domain.Ruling) (*service.DrillAnswer, error) {
	args := m.Called(ctx, id, ruling)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DrillAnswer), args.Error(1)
}

func (m *MockDrillService) End(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
