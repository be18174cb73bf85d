package model

import "strings"

// IngredientLine is a non-blank ingredient with its (possibly empty) measure.
type IngredientLine struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// ExtractIngredients returns the meal's non-blank ingredients in slot order.
// Blank slots are skipped wherever they occur; a hole does not end the list.
func ExtractIngredients(m *Meal) []IngredientLine {
	lines := make([]IngredientLine, 0, MaxIngredients)
	if m == nil {
		return lines
	}

	for _, slot := range m.Ingredients {
		ingredient := strings.TrimSpace(slot.Ingredient)
		if ingredient == "" {
			continue
		}
		lines = append(lines, IngredientLine{
			Ingredient: ingredient,
			Measure:    strings.TrimSpace(slot.Measure),
		})
	}
	return lines
}

// ExtractIngredients is a convenience wrapper around the package function.
func (m *Meal) ExtractIngredients() []IngredientLine {
	return ExtractIngredients(m)
}
