package service

import (
	"context"
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/pageza/recipe-analyzer/backend/internal/errors"
	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/mealdb"
	"github.com/pageza/recipe-analyzer/backend/internal/model"
)

// DefaultLetter is listed when no filter is given.
const DefaultLetter = "a"

// BrowseQuery selects what the home listing shows. The first non-empty of
// Search, Category, Area wins; otherwise meals starting with Letter are
// listed.
type BrowseQuery struct {
	Letter   string `form:"letter" json:"letter,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Area     string `form:"area" json:"area,omitempty"`
	Search   string `form:"search" json:"search,omitempty"`
}

// HomePage is the data behind the recipe listing.
type HomePage struct {
	Title      string       `json:"title"`
	Meals      []model.Meal `json:"meals"`
	Categories []string     `json:"categories"`
	Areas      []string     `json:"areas"`
}

// MealDetail is a meal together with its extracted ingredient lines.
type MealDetail struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Category     string                 `json:"category,omitempty"`
	Area         string                 `json:"area,omitempty"`
	Instructions string                 `json:"instructions,omitempty"`
	Thumbnail    string                 `json:"thumbnail,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	YouTube      string                 `json:"youtube,omitempty"`
	Source       string                 `json:"source,omitempty"`
	Ingredients  []model.IngredientLine `json:"ingredients"`
}

// BrowseService assembles listing and detail views from the upstream API
type BrowseService struct {
	meals MealGateway
	log   *logger.Logger
}

// NewBrowseService creates a new BrowseService instance. A nil log discards.
func NewBrowseService(meals MealGateway, log *logger.Logger) *BrowseService {
	if log == nil {
		log = logger.NewNop()
	}
	return &BrowseService{meals: meals, log: log}
}

// Home loads the filter options and the meals selected by q. Categories
// and areas are fetched concurrently; if either fails the listing fails.
// A failed search shows an empty result list; the other filters fail.
func (s *BrowseService) Home(ctx context.Context, q BrowseQuery) (*HomePage, error) {
	var categories, areas []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.meals.FetchCategories(gctx, mealdb.TTLListings)
		return err
	})
	g.Go(func() error {
		var err error
		areas, err = s.meals.FetchAreas(gctx, mealdb.TTLListings)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &HomePage{Categories: categories, Areas: areas}

	var err error
	switch {
	case q.Search != "":
		page.Title = "Search results for \"" + q.Search + "\""
		page.Meals, err = s.meals.SearchByName(ctx, q.Search, mealdb.TTLMeals)
		if err != nil {
			s.log.Warn("search failed, showing no results", "query", q.Search, "error", err)
			page.Meals, err = []model.Meal{}, nil
		}
	case q.Category != "":
		page.Meals, err = s.meals.FetchByCategory(ctx, q.Category, mealdb.TTLMeals)
		page.Title = q.Category + " recipes"
	case q.Area != "":
		page.Meals, err = s.meals.FetchByArea(ctx, q.Area, mealdb.TTLMeals)
		page.Title = q.Area + " cuisine"
	default:
		letter := q.Letter
		if letter == "" {
			letter = DefaultLetter
		}
		page.Meals, err = s.meals.FetchByFirstLetter(ctx, letter, mealdb.TTLMeals)
		page.Title = "Recipes starting with " + strings.ToUpper(letter)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Detail returns the meal with its ingredient lines.
func (s *BrowseService) Detail(ctx context.Context, id string) (*MealDetail, error) {
	if id == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, MsgMealIDRequired)
	}
	meal, err := s.meals.FetchByID(ctx, id, mealdb.TTLMeals)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, MsgMealNotFound)
	}

	return &MealDetail{
		ID:           meal.ID,
		Name:         meal.Name,
		Category:     meal.Category,
		Area:         meal.Area,
		Instructions: meal.Instructions,
		Thumbnail:    meal.Thumbnail,
		Tags:         splitTags(meal.Tags),
		YouTube:      meal.YouTube,
		Source:       meal.Source,
		Ingredients:  model.ExtractIngredients(meal),
	}, nil
}

// Categories lists the category names.
func (s *BrowseService) Categories(ctx context.Context) ([]string, error) {
	return s.meals.FetchCategories(ctx, mealdb.TTLListings)
}

// Areas lists the area names.
func (s *BrowseService) Areas(ctx context.Context) ([]string, error) {
	return s.meals.FetchAreas(ctx, mealdb.TTLListings)
}

// Search proxies a name search and returns the upstream body as-is. The
// proxy is not cached.
func (s *BrowseService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "Search query is required")
	}
	return s.meals.SearchRaw(ctx, query, 0)
}

// StaticIDs lists the ids of the meals starting with letter, for
// pre-rendering detail pages.
func (s *BrowseService) StaticIDs(ctx context.Context, letter string) ([]string, error) {
	if letter == "" {
		letter = DefaultLetter
	}
	meals, err := s.meals.FetchByFirstLetter(ctx, letter, mealdb.TTLMeals)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
