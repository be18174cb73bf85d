package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pageza/recipe-analyzer/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockMealGateway is a mock implementation of the upstream meal client
type MockMealGateway struct {
	mock.Mock
}

// FetchByFirstLetter mocks the FetchByFirstLetter method
func (m *MockMealGateway) FetchByFirstLetter(ctx context.Context, letter string, ttl time.Duration) ([]model.Meal, error) {
	args := m.Called(ctx, letter, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

// FetchByID mocks the FetchByID method
func (m *MockMealGateway) FetchByID(ctx context.Context, id string, ttl time.Duration) (*model.Meal, error) {
	args := m.Called(ctx, id, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

// FetchCategories mocks the FetchCategories method
func (m *MockMealGateway) FetchCategories(ctx context.Context, ttl time.Duration) ([]string, error) {
	args := m.Called(ctx, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// FetchAreas mocks the FetchAreas method
func (m *MockMealGateway) FetchAreas(ctx context.Context, ttl time.Duration) ([]string, error) {
	args := m.Called(ctx, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// FetchByCategory mocks the FetchByCategory method
func (m *MockMealGateway) FetchByCategory(ctx context.Context, category string, ttl time.Duration) ([]model.Meal, error) {
	args := m.Called(ctx, category, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

// FetchByArea mocks the FetchByArea method
func (m *MockMealGateway) FetchByArea(ctx context.Context, area string, ttl time.Duration) ([]model.Meal, error) {
	args := m.Called(ctx, area, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

// SearchByName mocks the SearchByName method
func (m *MockMealGateway) SearchByName(ctx context.Context, query string, ttl time.Duration) ([]model.Meal, error) {
	args := m.Called(ctx, query, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Meal), args.Error(1)
}

// SearchRaw mocks the SearchRaw method
func (m *MockMealGateway) SearchRaw(ctx context.Context, query string, ttl time.Duration) (json.RawMessage, error) {
	args := m.Called(ctx, query, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
