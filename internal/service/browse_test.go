package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/pageza/recipe-analyzer/backend/internal/errors"
	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/mealdb"
	"github.com/pageza/recipe-analyzer/backend/internal/mocks"
	"github.com/pageza/recipe-analyzer/backend/internal/model"
	"github.com/pageza/recipe-analyzer/backend/internal/service"
)

func gatewayWithListings() *mocks.MockMealGateway {
	gw := &mocks.MockMealGateway{}
	gw.On("FetchCategories", mock.Anything, mealdb.TTLListings).Return([]string{"Beef", "Dessert"}, nil)
	gw.On("FetchAreas", mock.Anything, mealdb.TTLListings).Return([]string{"British", "Thai"}, nil)
	return gw
}

func TestBrowseHome_Precedence(t *testing.T) {
	meals := []model.Meal{{ID: "1", Name: "Pad Thai"}}

	tests := []struct {
		name   string
		query  service.BrowseQuery
		setup  func(gw *mocks.MockMealGateway)
		title  string
		method string
	}{
		{
			name:  "search wins over everything",
			query: service.BrowseQuery{Search: "pad", Category: "Beef", Area: "Thai", Letter: "b"},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("SearchByName", mock.Anything, "pad", mealdb.TTLMeals).Return(meals, nil)
			},
			title:  `Search results for "pad"`,
			method: "SearchByName",
		},
		{
			name:  "search title keeps quotes verbatim",
			query: service.BrowseQuery{Search: `a"b`},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("SearchByName", mock.Anything, `a"b`, mealdb.TTLMeals).Return(meals, nil)
			},
			title:  `Search results for "a"b"`,
			method: "SearchByName",
		},
		{
			name:  "category wins over area",
			query: service.BrowseQuery{Category: "Beef", Area: "Thai"},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("FetchByCategory", mock.Anything, "Beef", mealdb.TTLMeals).Return(meals, nil)
			},
			title:  "Beef recipes",
			method: "FetchByCategory",
		},
		{
			name:  "area",
			query: service.BrowseQuery{Area: "Thai", Letter: "p"},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("FetchByArea", mock.Anything, "Thai", mealdb.TTLMeals).Return(meals, nil)
			},
			title:  "Thai cuisine",
			method: "FetchByArea",
		},
		{
			name:  "letter",
			query: service.BrowseQuery{Letter: "p"},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("FetchByFirstLetter", mock.Anything, "p", mealdb.TTLMeals).Return(meals, nil)
			},
			title:  "Recipes starting with P",
			method: "FetchByFirstLetter",
		},
		{
			name:  "default letter",
			query: service.BrowseQuery{},
			setup: func(gw *mocks.MockMealGateway) {
				gw.On("FetchByFirstLetter", mock.Anything, "a", mealdb.TTLMeals).Return(meals, nil)
			},
			title:  "Recipes starting with A",
			method: "FetchByFirstLetter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := gatewayWithListings()
			tt.setup(gw)

			page, err := service.NewBrowseService(gw, nil).Home(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.title, page.Title)
			assert.Equal(t, meals, page.Meals)
			assert.Equal(t, []string{"Beef", "Dessert"}, page.Categories)
			assert.Equal(t, []string{"British", "Thai"}, page.Areas)
			gw.AssertNumberOfCalls(t, tt.method, 1)
		})
	}
}

func TestBrowseHome_ListingFailure(t *testing.T) {
	gw := &mocks.MockMealGateway{}
	gw.On("FetchCategories", mock.Anything, mealdb.TTLListings).Return([]string{"Beef"}, nil)
	gw.On("FetchAreas", mock.Anything, mealdb.TTLListings).
		Return(nil, apperrors.New(apperrors.ErrCodeUpstream, "failed to fetch areas"))

	page, err := service.NewBrowseService(gw, nil).Home(context.Background(), service.BrowseQuery{})

	assert.Nil(t, page)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUpstream))
	gw.AssertNotCalled(t, "FetchByFirstLetter", mock.Anything, mock.Anything, mock.Anything)
}

func TestBrowseHome_MealsFailure(t *testing.T) {
	gw := gatewayWithListings()
	gw.On("FetchByCategory", mock.Anything, "Beef", mealdb.TTLMeals).
		Return(nil, apperrors.New(apperrors.ErrCodeUpstream, "failed to fetch meals"))

	_, err := service.NewBrowseService(gw, nil).Home(context.Background(), service.BrowseQuery{Category: "Beef"})

	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUpstream))
}

func TestBrowseHome_SearchFailureIsEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	gw := gatewayWithListings()
	gw.On("SearchByName", mock.Anything, "x", mealdb.TTLMeals).
		Return(nil, apperrors.New(apperrors.ErrCodeUpstream, "failed to fetch meals"))

	page, err := service.NewBrowseService(gw, log).Home(context.Background(), service.BrowseQuery{Search: "x"})

	require.NoError(t, err)
	assert.Equal(t, `Search results for "x"`, page.Title)
	assert.NotNil(t, page.Meals)
	assert.Empty(t, page.Meals)
	assert.Equal(t, []string{"Beef", "Dessert"}, page.Categories)

	warned := logs.FilterMessage("search failed, showing no results").All()
	require.Len(t, warned, 1)
	assert.Equal(t, zapcore.WarnLevel, warned[0].Level)
	assert.Equal(t, "x", warned[0].ContextMap()["query"])
}

func TestBrowseDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		meal := &model.Meal{ID: "52772", Name: "Teriyaki Chicken Casserole", Area: "Japanese", Tags: "Meat, Casserole,"}
		meal.Ingredients[0] = model.IngredientSlot{Ingredient: "soy sauce", Measure: "3/4 cup"}
		meal.Ingredients[2] = model.IngredientSlot{Ingredient: " water ", Measure: " 1/2 cup "}
		gw := &mocks.MockMealGateway{}
		gw.On("FetchByID", mock.Anything, "52772", mealdb.TTLMeals).Return(meal, nil)

		detail, err := service.NewBrowseService(gw, nil).Detail(context.Background(), "52772")

		require.NoError(t, err)
		assert.Equal(t, "Teriyaki Chicken Casserole", detail.Name)
		assert.Equal(t, []string{"Meat", "Casserole"}, detail.Tags)
		assert.Equal(t, []model.IngredientLine{
			{Ingredient: "soy sauce", Measure: "3/4 cup"},
			{Ingredient: "water", Measure: "1/2 cup"},
		}, detail.Ingredients)
	})

	t.Run("missing", func(t *testing.T) {
		gw := &mocks.MockMealGateway{}
		gw.On("FetchByID", mock.Anything, "0", mealdb.TTLMeals).Return(nil, nil)

		_, err := service.NewBrowseService(gw, nil).Detail(context.Background(), "0")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := service.NewBrowseService(&mocks.MockMealGateway{}, nil).Detail(context.Background(), "")

		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
	})
}

func TestBrowseSearch(t *testing.T) {
	raw := json.RawMessage(`{"meals":null}`)
	gw := &mocks.MockMealGateway{}
	gw.On("SearchRaw", mock.Anything, "zzz", time.Duration(0)).Return(raw, nil)
	svc := service.NewBrowseService(gw, nil)

	got, err := svc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meals":null}`, string(got))

	_, err = svc.Search(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidInput))
}

func TestBrowseStaticIDs(t *testing.T) {
	gw := &mocks.MockMealGateway{}
	gw.On("FetchByFirstLetter", mock.Anything, "a", mealdb.TTLMeals).
		Return([]model.Meal{{ID: "53049"}, {ID: "52893"}}, nil)

	ids, err := service.NewBrowseService(gw, nil).StaticIDs(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []string{"53049", "52893"}, ids)
}
