package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// MockSimulatorService is a mock implementation of service.SimulatorService.
type MockSimulatorService struct {
	mock.Mock
}

func (m *MockSimulatorService) Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error) {
	args := m.Called(ctx, caseText, witnessName, examType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSimulatorService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSimulatorService) Ask(ctx context.Context, id uuid.UUID, question string) (*domain.Exchange, error) {
	args := m.Called(ctx, id, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exchange), args.Error(1)
}

func (m *MockSimulatorService) Feedback(ctx context.Context, id uuid.UUID) (*domain.CoachFeedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoachFeedback), args.Error(1)
}

func (m *MockSimulatorService) End(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
