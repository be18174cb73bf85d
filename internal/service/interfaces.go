package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pageza/recipe-analyzer/backend/internal/model"
)

// MealGateway is the subset of the upstream client the services depend on.
// *mealdb.Client satisfies it.
type MealGateway interface {
	FetchByFirstLetter(ctx context.Context, letter string, ttl time.Duration) ([]model.Meal, error)
	FetchByID(ctx context.Context, id string, ttl time.Duration) (*model.Meal, error)
	FetchCategories(ctx context.Context, ttl time.Duration) ([]string, error)
	FetchAreas(ctx context.Context, ttl time.Duration) ([]string, error)
	FetchByCategory(ctx context.Context, category string, ttl time.Duration) ([]model.Meal, error)
	FetchByArea(ctx context.Context, area string, ttl time.Duration) ([]model.Meal, error)
	SearchByName(ctx context.Context, query string, ttl time.Duration) ([]model.Meal, error)
	SearchRaw(ctx context.Context, query string, ttl time.Duration) (json.RawMessage, error)
}

// IAnalysisService defines the interface for recipe analysis
type IAnalysisService interface {
	Analyze(ctx context.Context, mealID string) (*Analysis, error)
}

// IBrowseService defines the interface for listing and displaying recipes
type IBrowseService interface {
	Home(ctx context.Context, q BrowseQuery) (*HomePage, error)
	Detail(ctx context.Context, id string) (*MealDetail, error)
	Categories(ctx context.Context) ([]string, error)
	Areas(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) (json.RawMessage, error)
	StaticIDs(ctx context.Context, letter string) ([]string, error)
}
