package mocks

import (
	"context"
	"encoding/json"

	"github.com/pageza/recipe-analyzer/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAnalysisService is a mock implementation of the analysis service
type MockAnalysisService struct {
	mock.Mock
}

// Analyze mocks the Analyze method
func (m *MockAnalysisService) Analyze(ctx context.Context, mealID string) (*service.Analysis, error) {
	args := m.Called(ctx, mealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Analysis), args.Error(1)
}

// MockBrowseService is a mock implementation of the browse service
type MockBrowseService struct {
	mock.Mock
}

// Home mocks the Home method
func (m *MockBrowseService) Home(ctx context.Context, q service.BrowseQuery) (*service.HomePage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomePage), args.Error(1)
}

// Detail mocks the Detail method
func (m *MockBrowseService) Detail(ctx context.Context, id string) (*service.MealDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MealDetail), args.Error(1)
}

// Categories mocks the Categories method
func (m *MockBrowseService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Areas mocks the Areas method
func (m *MockBrowseService) Areas(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Search mocks the Search method
func (m *MockBrowseService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// StaticIDs mocks the StaticIDs method
func (m *MockBrowseService) StaticIDs(ctx context.Context, letter string) ([]string, error) {
	args := m.Called(ctx, letter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
