package service

import (
	"context"

	apperrors "github.com/pageza/recipe-analyzer/backend/internal/errors"
	"github.com/pageza/recipe-analyzer/backend/internal/mealdb"
	"github.com/pageza/recipe-analyzer/backend/internal/model"
)

// Difficulty is the three-level label derived from an ingredient count.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Caller-facing messages.
const (
	MsgMealIDRequired = "mealId is required"
	MsgMealNotFound   = "Meal not found"
)

const (
	suggestionEasy   = "A great recipe for beginners!"
	suggestionMedium = "Requires some experience and time."
	suggestionHard   = "A challenging recipe — recommended for experienced cooks."
)

// Analysis is the result of analyzing one recipe.
type Analysis struct {
	MealID           string     `json:"mealId"`
	Name             string     `json:"name"`
	IngredientsCount int        `json:"ingredientsCount"`
	Difficulty       Difficulty `json:"difficulty"`
	Suggestions      []string   `json:"suggestions"`
}

// Classify maps an ingredient count to a difficulty and its suggestion.
// More than 10 is hard, 6 to 10 is medium, anything else is easy.
func Classify(count int) (Difficulty, string) {
	switch {
	case count > 10:
		return DifficultyHard, suggestionHard
	case count > 5:
		return DifficultyMedium, suggestionMedium
	default:
		return DifficultyEasy, suggestionEasy
	}
}

// AnalysisService analyzes recipes fetched from the upstream API
type AnalysisService struct {
	meals MealGateway
}

// NewAnalysisService creates a new AnalysisService instance
func NewAnalysisService(meals MealGateway) *AnalysisService {
	return &AnalysisService{meals: meals}
}

// Analyze fetches the meal, counts its ingredients and classifies it.
func (s *AnalysisService) Analyze(ctx context.Context, mealID string) (*Analysis, error) {
	if mealID == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, MsgMealIDRequired)
	}

	meal, err := s.meals.FetchByID(ctx, mealID, mealdb.TTLMeals)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeUpstream) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "failed to fetch meal", err)
	}
	if meal == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, MsgMealNotFound)
	}

	count := len(model.ExtractIngredients(meal))
	difficulty, suggestion := Classify(count)

	return &Analysis{
		MealID:           mealID,
		Name:             meal.Name,
		IngredientsCount: count,
		Difficulty:       difficulty,
		Suggestions:      []string{suggestion},
	}, nil
}
