package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, req *service.AnalysisRequest) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}
